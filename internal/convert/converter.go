package convert

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/trainingdata/internal/config"
	"github.com/ChizhovVadim/trainingdata/internal/pgn"
	"github.com/ChizhovVadim/trainingdata/internal/trainingdata"
)

type ChunkWriter interface {
	WriteChunk(rec *trainingdata.V4TrainingData) error
	Finalize() error
}

type WriterFactory func(shard string, gameID int) (ChunkWriter, error)

// DiskWriters creates gzip chunks under dir.
func DiskWriters(dir string) WriterFactory {
	return func(shard string, gameID int) (ChunkWriter, error) {
		return trainingdata.NewWriter(dir, shard, gameID)
	}
}

type Stats struct {
	GamesRead    int
	GamesWritten int
	GamesFailed  int
	Records      int
}

type Converter struct {
	settings  config.Settings
	logger    zerolog.Logger
	newWriter WriterFactory
	gameID    int
	stats     Stats
}

func NewConverter(settings config.Settings, logger zerolog.Logger, newWriter WriterFactory) *Converter {
	if newWriter == nil {
		newWriter = DiskWriters(settings.OutputDir)
	}
	return &Converter{
		settings:  settings,
		logger:    logger,
		newWriter: newWriter,
	}
}

func (c *Converter) Stats() Stats {
	return c.stats
}

// GameID is the id the next written game receives.
func (c *Converter) GameID() int {
	return c.gameID
}

func (c *Converter) shard(gameID int) string {
	return strconv.Itoa(gameID / c.settings.GamesPerDir)
}

// Run converts all games of the files in order. Unreadable files and bad
// games are logged and skipped. Only output failures stop the run early.
func (c *Converter) Run(ctx context.Context, files []string) error {
	g, ctx := errgroup.WithContext(ctx)

	var games = make(chan pgn.GameRaw)

	g.Go(func() error {
		defer close(games)
		for _, path := range files {
			c.logger.Debug().Str("file", path).Msg("opening")
			var err = pgn.WalkPgnFile(path, func(raw pgn.GameRaw) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case games <- raw:
					return nil
				}
			})
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Error().Err(err).Str("file", path).Msg("read pgn failed")
			}
		}
		return nil
	})

	g.Go(func() error {
		for raw := range games {
			if c.gameID >= c.settings.MaxGames {
				return errConversionLimitHit
			}
			if err := c.convertRaw(raw); err != nil {
				return err
			}
		}
		return nil
	})

	var err = g.Wait()
	if errors.Is(err, errConversionLimitHit) {
		c.logger.Info().Int("max_games", c.settings.MaxGames).Msg("conversion limit reached")
		return nil
	}
	return err
}

func (c *Converter) convertRaw(raw pgn.GameRaw) error {
	c.stats.GamesRead++
	var game = pgn.ParseGame(raw)
	written, err := c.ConvertGame(game, c.gameID)
	if written {
		c.stats.GamesWritten++
		c.gameID++
	}
	if err != nil {
		if errors.Is(err, ErrOutput) {
			return err
		}
		c.stats.GamesFailed++
		var event = c.logger.Warn()
		if errors.Is(err, ErrMissingAnnotation) {
			event = c.logger.Debug()
		} else if errors.Is(err, ErrIllegalMove) || errors.Is(err, ErrBadPosition) {
			event = c.logger.Error()
		}
		event.Err(err).Int("index", c.stats.GamesRead-1).Bool("written", written).Msg("game stopped")
	}
	if c.stats.GamesRead%10000 == 0 {
		c.logger.Info().
			Int("games", c.stats.GamesRead).
			Int("written", c.stats.GamesWritten).
			Int("records", c.stats.Records).
			Msg("progress")
	}
	return nil
}
