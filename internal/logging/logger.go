// Package logging builds the diagnostic logger. Progress output is not
// logged; it is printed by package report.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options describes logger construction parameters
type Options struct {
	// Verbose enables debug output
	Verbose bool

	// Format is "console" or "json"
	Format string

	// OutputPaths defaults to stderr
	OutputPaths []string
}

// New constructs a zap logger. Without Verbose only warnings and errors are shown.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatConsole
	}

	if format != FormatConsole && format != FormatJSON {
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == FormatConsole {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     !opts.Verbose,
		DisableStacktrace: true,
		Encoding:          format,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
