package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BerylCAtieno/network-navigator/internal/assistant"
	"github.com/BerylCAtieno/network-navigator/internal/config"
	"github.com/BerylCAtieno/network-navigator/internal/logging"
	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/BerylCAtieno/network-navigator/internal/store"
	"go.uber.org/zap"
)

// app holds what every command needs: config, logger and the open store.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	gemini *assistant.GeminiClient
}

func loadApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Store.Path = dbPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.Store.Path, store.WithLogger(logger.Named("store")))
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, store: s}, nil
}

// composer builds the message composer. The Gemini writer is attached only
// when an API key is configured; failing to create it is not fatal.
func (a *app) composer(ctx context.Context) (*assistant.Composer, error) {
	gen, err := message.NewGenerator(message.DefaultPhraseBank(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build message generator: %w", err)
	}

	var writer assistant.Writer
	if a.cfg.Generator.GeminiEnabled() && a.gemini == nil {
		client, err := assistant.NewGeminiClient(ctx, a.cfg.Generator.GeminiAPIKey, a.cfg.Generator.GeminiModel, a.cfg.Generator.Temperature)
		if err != nil {
			a.logger.Warn("Gemini unavailable, using templates only", zap.Error(err))
		} else {
			a.gemini = client
		}
	}
	if a.gemini != nil {
		writer = a.gemini
	}

	return assistant.NewComposer(gen, writer, a.logger.Named("composer")), nil
}

func (a *app) Close() {
	if a.gemini != nil {
		a.gemini.Close()
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
