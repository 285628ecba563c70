package wire

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/notegen/internal/app"
	"github.com/sevigo/notegen/internal/config"
	"github.com/sevigo/notegen/internal/gitutil"
	"github.com/sevigo/notegen/internal/logger"
	"github.com/sevigo/notegen/internal/markdown"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	gitutil.NewClient,
	provideConverter,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
)

func provideConverter(cfg *config.Config) *markdown.Converter {
	return markdown.NewConverter(cfg.HighlightStyle)
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) (io.Writer, func(), error) {
	w, closeFn, err := logger.OpenOutput(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}
	return w, closeFn, nil
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	l := logger.NewLogger(loggerConfig, writer)
	slog.SetDefault(l)
	return l
}
