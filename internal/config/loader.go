package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "INSTANT"

// Loader handles configuration loading from various sources
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadForClean loads configuration for a clean run.
// Precedence: flags, environment, global config file, defaults.
func (l *Loader) LoadForClean(flags *pflag.FlagSet) (*Config, error) {
	l.setupViperDefaults()
	l.bindEnv()
	l.loadGlobalConfig()
	l.bindCommandFlags(flags)

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("instant_dir", DefaultInstantDir())
	viper.SetDefault("dry_run", DefaultDryRun)
	viper.SetDefault("errors", DefaultIncludeErrors)
	viper.SetDefault("verbose", DefaultVerbose)
	viper.SetDefault("log_format", DefaultLogFormat)
}

// bindEnv maps INSTANT_* variables onto config keys
func (l *Loader) bindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	_ = viper.BindEnv("instant_dir", EnvPrefix+"_DIR")
	_ = viper.BindEnv("cache_dir")
	_ = viper.BindEnv("error_dir")
	_ = viper.BindEnv("temp_dir")
	_ = viper.BindEnv("log_format")
}

// loadGlobalConfig loads <instant_dir>/config.* if present
func (l *Loader) loadGlobalConfig() {
	path := FindConfigFile(viper.GetString("instant_dir"))
	if path == "" {
		return
	}

	viper.SetConfigFile(path)
	_ = viper.ReadInConfig() // a broken config file falls back to env and defaults
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(flags *pflag.FlagSet) {
	if flags == nil {
		return
	}

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("dry_run", flags.Lookup("dry-run"))
	_ = viper.BindPFlag("errors", flags.Lookup("errors"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
}
