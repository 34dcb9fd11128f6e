package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/netvizgo/internal/config"
	"github.com/vk/netvizgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a fully resolved
// configuration (flags over file over defaults).
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if cfg.ConfigPath != "" {
		model, err := config.Load(ctx, cfg.ConfigPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		cfg.applyModel(model)
		logger.Debug("Configuration file merged under CLI flags.")
	}
	cfg.applyDefaults()
	logger.Debug("Configuration resolved.",
		"networks", cfg.NetworksPath, "out", cfg.OutputDir,
		"undirected", cfg.Undirected, "render", !cfg.NoRender)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
