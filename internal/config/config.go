// Package config resolves runtime configuration for the conops tool.
// Values come from .conops.yaml, CONOPS_* environment variables, and
// built-in defaults, in that order of precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CONOPS_DB_PATH.
const EnvPrefix = "CONOPS"

// Config holds everything the CLI and server need to find their data.
type Config struct {
	DBPath      string `mapstructure:"db_path"`
	ExportsDir  string `mapstructure:"exports_dir"`
	BaseSpecDir string `mapstructure:"base_spec_dir"`
	BaseSpec    string `mapstructure:"base_spec"`
	ListenAddr  string `mapstructure:"listen_addr"`
	NoColor     bool   `mapstructure:"no_color"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Init points viper at the config sources: an explicit file when given,
// otherwise .conops.yaml in the working directory or the home directory.
// A missing config file is fine; defaults and environment apply.
func Init(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".conops")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Load materializes the configuration, applying defaults for any keys the
// file, environment, and flags left unset.
func Load() Config {
	dataDir := defaultDataDir()
	viper.SetDefault("db_path", filepath.Join(dataDir, "conops.db"))
	viper.SetDefault("exports_dir", filepath.Join(dataDir, "exports"))
	viper.SetDefault("base_spec_dir", filepath.Join(dataDir, "basespecs"))
	viper.SetDefault("base_spec", "base")
	viper.SetDefault("listen_addr", ":8340")
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".conops"
	}
	return filepath.Join(home, ".conops")
}
