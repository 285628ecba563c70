// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"fmt"

	"github.com/sevigo/notegen/internal/app"
	"github.com/sevigo/notegen/internal/config"
	"github.com/sevigo/notegen/internal/gitutil"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp() (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	writer, cleanup, err := provideLogWriter(loggerConfig)
	if err != nil {
		return nil, nil, err
	}
	slogLogger := provideSlogLogger(loggerConfig, writer)

	client := gitutil.NewClient(slogLogger)
	converter := provideConverter(cfg)
	application := app.NewApp(cfg, client, converter, slogLogger)

	return application, func() {
		cleanup()
	}, nil
}
