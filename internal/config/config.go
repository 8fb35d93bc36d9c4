package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const defaultLogLevel = "warn"

type Config struct {
	App struct {
		LogLevel zerolog.Level
		// LogFile receives log output when set; otherwise logs go to stderr.
		LogFile string
	}
	Catalog struct {
		// Path to a YAML catalog. Empty means the built-in seed.
		Path string
	}
}

// Load reads the optional .env file at path, then the process environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg := &Config{}

	levelName := strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel))
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", levelName, err)
	}
	cfg.App.LogLevel = level
	cfg.App.LogFile = os.Getenv("LOG_FILE")

	cfg.Catalog.Path = os.Getenv("CATALOG_PATH")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
