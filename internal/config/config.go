package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Norgate-AV/instant-clean/internal/logging"
	"github.com/Norgate-AV/instant-clean/internal/paths"
)

// Default configuration values
const (
	DefaultLogFormat     = logging.FormatConsole
	DefaultDryRun        = false
	DefaultIncludeErrors = false
	DefaultVerbose       = false
)

// Holds the configuration options for instant-clean
type Config struct {
	// Root of the instant directory (~/.instant)
	InstantDir string

	// Overrides for the default cache and error directories
	CacheDir string
	ErrorDir string

	// Parent directory of session temp directories
	TempDir string

	// Report without removing anything
	DryRun bool

	// Also clear the error directory
	IncludeErrors bool

	// Enable verbose output
	Verbose bool

	// Diagnostic log encoding (console or json)
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{
		InstantDir:    viper.GetString("instant_dir"),
		CacheDir:      viper.GetString("cache_dir"),
		ErrorDir:      viper.GetString("error_dir"),
		TempDir:       viper.GetString("temp_dir"),
		DryRun:        viper.GetBool("dry_run"),
		IncludeErrors: viper.GetBool("errors"),
		Verbose:       viper.GetBool("verbose"),
		LogFormat:     viper.GetString("log_format"),
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	for _, p := range []*string{&c.InstantDir, &c.CacheDir, &c.ErrorDir, &c.TempDir} {
		if *p == "" {
			continue
		}

		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("invalid path %q: %v", *p, err)
		}

		*p = abs
	}

	if !isValidLogFormat(c.LogFormat) {
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}

	return nil
}

// PathOptions returns the options for the path resolver
func (c *Config) PathOptions() paths.Options {
	return paths.Options{
		InstantDir: c.InstantDir,
		CacheDir:   c.CacheDir,
		ErrorDir:   c.ErrorDir,
		TempParent: c.TempDir,
	}
}

// LogOptions returns the options for the diagnostic logger
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Verbose: c.Verbose,
		Format:  c.LogFormat,
	}
}

func isValidLogFormat(format string) bool {
	return format == logging.FormatConsole || format == logging.FormatJSON
}
