package config

import (
	"os"
	"strconv"
)

const (
	DefaultGamesPerDir  = 10000
	DefaultMaxGames     = 10000000
	DefaultOutputFolder = "."
)

type Settings struct {
	Verbose      bool
	FishtestMode bool
	GamesPerDir  int
	MaxGames     int
	OutputDir    string
	Files        []string
}

func Default() Settings {
	return Settings{
		GamesPerDir: DefaultGamesPerDir,
		MaxGames:    DefaultMaxGames,
		OutputDir:   DefaultOutputFolder,
	}
}

// ParseArgs scans the process arguments (args[0] is the program name).
// Flags may appear anywhere. Arguments that are neither flags nor existing
// files are ignored.
func ParseArgs(args []string) Settings {
	var settings = Default()
	for i := 1; i < len(args); i++ {
		var arg = args[i]
		switch arg {
		case "-v":
			settings.Verbose = true
		case "-fishtest-mode":
			settings.FishtestMode = true
		case "-games-per-dir":
			if i+1 < len(args) {
				i++
				settings.GamesPerDir = atoi(args[i], settings.GamesPerDir)
			}
		case "-max-games-to-convert":
			if i+1 < len(args) {
				i++
				settings.MaxGames = atoi(args[i], settings.MaxGames)
			}
		case "-output":
			if i+1 < len(args) {
				i++
				settings.OutputDir = args[i]
			}
		default:
			if isFile(arg) {
				settings.Files = append(settings.Files, arg)
			}
		}
	}
	if settings.GamesPerDir <= 0 {
		settings.GamesPerDir = DefaultGamesPerDir
	}
	return settings
}

func atoi(s string, defaultVal int) int {
	var v, err = strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func isFile(path string) bool {
	var info, err = os.Stat(path)
	return err == nil && !info.IsDir()
}
