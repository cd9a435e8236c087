package main

import (
	"context"
	"os"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/trainingdata/internal/config"
	"github.com/ChizhovVadim/trainingdata/internal/convert"
	"github.com/ChizhovVadim/trainingdata/internal/trainingdata"
)

func main() {
	var settings = config.ParseArgs(os.Args)
	var logger = newLogger(settings.Verbose)
	var err = run(settings, logger)
	if err != nil {
		logger.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	var level = zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var output = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    termenv.EnvColorProfile() == termenv.Ascii,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func run(settings config.Settings, logger zerolog.Logger) error {
	if settings.Verbose {
		logger.Info().Msg("verbose mode on")
	}
	if settings.FishtestMode {
		logger.Info().Msg("fishtest mode on")
	}
	logger.Info().
		Int("games_per_dir", settings.GamesPerDir).
		Int("max_games", settings.MaxGames).
		Str("output", settings.OutputDir).
		Int("files", len(settings.Files)).
		Msg("trainingdata started")

	var start = time.Now()
	var converter = convert.NewConverter(settings, logger, nil)
	var err = converter.Run(context.Background(), settings.Files)

	var stats = converter.Stats()
	logger.Info().
		Int("games_read", stats.GamesRead).
		Int("games_written", stats.GamesWritten).
		Int("games_stopped", stats.GamesFailed).
		Int("records", stats.Records).
		Str("data", bytesize.New(float64(stats.Records*trainingdata.RecordSize)).String()).
		Dur("elapsed", time.Since(start)).
		Msg("trainingdata finished")
	return err
}
