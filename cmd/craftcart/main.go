package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
	"github.com/vasiliy-maslov/craftcart/internal/config"
	"github.com/vasiliy-maslov/craftcart/internal/console"
	"github.com/vasiliy-maslov/craftcart/internal/order"
	"github.com/vasiliy-maslov/craftcart/internal/session"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before os.Exit.
func run() int {
	cfg, err := config.Load(".env")
	if err != nil {
		setupLogger(zerolog.InfoLevel, os.Stderr)
		log.Error().Err(err).Msg("Failed to load config")
		return 1
	}

	logOut := io.Writer(os.Stderr)
	if cfg.App.LogFile != "" {
		f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			setupLogger(zerolog.InfoLevel, os.Stderr)
			log.Error().Err(err).Str("path", cfg.App.LogFile).Msg("Failed to open log file")
			return 1
		}
		defer f.Close()
		logOut = f
	}
	setupLogger(cfg.App.LogLevel, logOut)

	log.Info().Msg("CraftCart starting...")
	log.Debug().Interface("config_loaded", cfg).Msg("Configuration loaded")

	seed := catalog.DefaultProducts()
	if cfg.Catalog.Path != "" {
		seed, err = config.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
			return 1
		}
	}

	productRepo, err := catalog.NewRepository(seed)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build catalog")
		return 1
	}

	s, err := session.New(session.Deps{
		Catalog:  catalog.NewService(productRepo),
		Orders:   order.NewService(order.NewRepository(), time.Now),
		Prompter: console.NewPrompter(os.Stdin, os.Stdout),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to start session")
		return 1
	}

	if err := s.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Session ended with error")
		return 1
	}
	log.Info().Msg("CraftCart stopped")
	return 0
}

func setupLogger(level zerolog.Level, out io.Writer) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stderr})
	log.Logger = log.With().Str("app", "craftcart").Logger()
}
