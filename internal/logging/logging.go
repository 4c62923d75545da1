// Package logging builds the process logger.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New returns a logger writing to stderr. format selects structured JSON
// output or the human readable console encoder.
func New(level, format string) (*zap.Logger, error) {
	atomic, err := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(orDefault(level, "info"))))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var config zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		config = zap.NewDevelopmentConfig()
		config.Development = false
		config.DisableStacktrace = true
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	config.Level = atomic
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
