// Package cli wires configuration, logging and terminal styles for the
// command line entry points.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/gridbrowser/internal/cli/styles"
	"github.com/bnema/gridbrowser/internal/domain/build"
	"github.com/bnema/gridbrowser/internal/infrastructure/config"
	"github.com/bnema/gridbrowser/internal/logging"
)

const logTimeFormat = "15:04:05"

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx     context.Context
	logFile io.Closer
}

// NewApp loads the configuration and builds the logger it describes.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := manager.Get()
	logger, logFile, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:        cfg,
		ConfigManager: manager,
		Theme:         styles.NewTheme(cfg),
		ctx:           logging.WithContext(context.Background(), logger),
		logFile:       logFile,
	}, nil
}

// newLogger builds the logger for cfg. The returned closer is nil when no
// log file is written.
func newLogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging level: %w", err)
	}

	logCfg := logging.Config{
		Level:      level,
		Format:     cfg.Format,
		TimeFormat: logTimeFormat,
	}

	var closer io.Closer
	if cfg.EnableFileLog {
		file, err := config.OpenLogFile(cfg.LogDir)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		logCfg.File = file
		closer = file
	}

	return logging.New(logCfg), closer, nil
}

// Context returns the context carrying the application logger.
func (a *App) Context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// Override pins a config key (e.g. from a command line flag) and refreshes Config.
func (a *App) Override(key string, value any) error {
	if err := a.ConfigManager.Override(key, value); err != nil {
		return fmt.Errorf("override %s: %w", key, err)
	}
	a.Config = a.ConfigManager.Get()
	return nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
