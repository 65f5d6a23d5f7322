package config

import (
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvDepth    = "MINIMAX_DEPTH"
	EnvSeed     = "MINIMAX_SEED"
	EnvWorkers  = "MINIMAX_WORKERS"
	EnvGames    = "MINIMAX_GAMES"
	EnvLogLevel = "MINIMAX_LOG_LEVEL"
)

// LoadEnv applies MINIMAX_* settings to cfg. Values come from the process
// environment first and then from the given dotenv files; files that do not
// exist are skipped. Every malformed value is reported.
func LoadEnv(cfg *Config, files ...string) error {
	fileVars := make(map[string]string)
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		vars, err := godotenv.Read(f)
		if err != nil {
			return invalidf("reading %s: %v", f, err)
		}
		for k, v := range vars {
			if _, ok := fileVars[k]; !ok {
				fileVars[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	var result *multierror.Error
	setInt := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, invalidf("%s=%q", key, v))
			return
		}
		*dst = n
	}

	setInt(EnvDepth, &cfg.Search.Depth)
	setInt(EnvWorkers, &cfg.Game.Workers)
	setInt(EnvGames, &cfg.Game.Games)
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			result = multierror.Append(result, invalidf("%s=%q", EnvSeed, v))
		} else {
			cfg.Search.Seed = seed
			cfg.Search.SeedSet = true
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return result.ErrorOrNil()
}
