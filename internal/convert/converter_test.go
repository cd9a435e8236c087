package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/trainingdata/internal/config"
	"github.com/ChizhovVadim/trainingdata/internal/trainingdata"
)

const runGames = `[Event "1"]
[Result "1-0"]

1. e4 {0.2/10} e5 {0.1/10} 1-0

[Event "2"]
[Result "0-1"]

1. d4 e5 0-1

[Event "3"]
[Result "1/2-1/2"]

1. d4 {0.1/10} d5 {0.0/10} 1/2-1/2

[Event "4"]
[Result "1-0"]

1. c4 {0.1/10} 1-0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	var path = filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	var input = t.TempDir()
	var settings = config.Default()
	settings.OutputDir = t.TempDir()
	settings.FishtestMode = true
	settings.GamesPerDir = 2
	var files = []string{
		writeFile(t, input, "games.pgn", runGames),
		filepath.Join(input, "missing.pgn"),
	}
	var c = NewConverter(settings, zerolog.Nop(), nil)
	if err := c.Run(context.Background(), files); err != nil {
		t.Fatal(err)
	}
	var stats = c.Stats()
	if stats.GamesRead != 4 || stats.GamesWritten != 3 || stats.GamesFailed != 1 || stats.Records != 5 {
		t.Errorf("stats %+v", stats)
	}
	if c.GameID() != 3 {
		t.Errorf("game id %v, want 3", c.GameID())
	}
	var chunks = []struct {
		shard   string
		id      int
		records int
	}{
		{"0", 0, 2},
		{"0", 1, 2},
		{"1", 2, 1},
	}
	for _, chunk := range chunks {
		recs, err := trainingdata.ReadChunk(trainingdata.ChunkPath(settings.OutputDir, chunk.shard, chunk.id))
		if err != nil {
			t.Error(err)
			continue
		}
		if len(recs) != chunk.records {
			t.Errorf("game %v: records %v, want %v", chunk.id, len(recs), chunk.records)
		}
	}
}

func TestRunMaxGames(t *testing.T) {
	var input = t.TempDir()
	var settings = config.Default()
	settings.OutputDir = t.TempDir()
	settings.MaxGames = 1
	var c = NewConverter(settings, zerolog.Nop(), nil)
	var files = []string{
		writeFile(t, input, "a.pgn", runGames),
		writeFile(t, input, "b.pgn", runGames),
	}
	if err := c.Run(context.Background(), files); err != nil {
		t.Fatal(err)
	}
	if c.GameID() != 1 || c.Stats().GamesWritten != 1 {
		t.Errorf("game id %v stats %+v", c.GameID(), c.Stats())
	}
	if _, err := os.Stat(trainingdata.ChunkPath(settings.OutputDir, "0", 1)); !os.IsNotExist(err) {
		t.Errorf("second game written: %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) WriteChunk(*trainingdata.V4TrainingData) error {
	return errors.New("disk full")
}

func (failingWriter) Finalize() error {
	return nil
}

func TestRunOutputFailure(t *testing.T) {
	var input = t.TempDir()
	var settings = config.Default()
	var c = NewConverter(settings, zerolog.Nop(), func(string, int) (ChunkWriter, error) {
		return failingWriter{}, nil
	})
	var err = c.Run(context.Background(), []string{writeFile(t, input, "games.pgn", runGames)})
	if !errors.Is(err, ErrOutput) {
		t.Errorf("err %v, want %v", err, ErrOutput)
	}
	if c.Stats().GamesRead != 1 {
		t.Errorf("games read %v, want 1", c.Stats().GamesRead)
	}
}
