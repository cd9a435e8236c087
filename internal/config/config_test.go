package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	var dir = t.TempDir()
	var games = filepath.Join(dir, "games.pgn")
	var more = filepath.Join(dir, "more.pgn.gz")
	for _, path := range []string{games, more} {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	var missing = filepath.Join(dir, "missing.pgn")

	var tests = []struct {
		args []string
		want Settings
	}{
		{
			[]string{"trainingdata"},
			Default(),
		},
		{
			[]string{"trainingdata", games, "-v", missing, "-fishtest-mode", more},
			Settings{
				Verbose:      true,
				FishtestMode: true,
				GamesPerDir:  DefaultGamesPerDir,
				MaxGames:     DefaultMaxGames,
				OutputDir:    DefaultOutputFolder,
				Files:        []string{games, more},
			},
		},
		{
			[]string{"trainingdata", "-games-per-dir", "500", "-max-games-to-convert", "20", "-output", dir, games, "-unknown"},
			Settings{
				GamesPerDir: 500,
				MaxGames:    20,
				OutputDir:   dir,
				Files:       []string{games},
			},
		},
		{
			[]string{"trainingdata", "-games-per-dir", "x", "-max-games-to-convert"},
			Default(),
		},
		{
			[]string{"trainingdata", "-games-per-dir", "0", dir},
			Default(),
		},
	}
	for _, test := range tests {
		var got = ParseArgs(test.args)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ParseArgs(%v) = %+v, want %+v", test.args, got, test.want)
		}
	}
}
