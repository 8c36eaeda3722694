package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a kcal session.
// Values are populated from .kcal.yaml, KCAL_* env vars, and CLI flags.
type Config struct {
	// StateDir is the directory holding the state snapshot.
	StateDir string `mapstructure:"state_dir"`
	// Persist controls whether mutations are written to the snapshot.
	Persist bool `mapstructure:"persist"`
	// TrackFiber enables the fiber macro in summaries, budgets, and exports.
	TrackFiber bool `mapstructure:"track_fiber"`
	// ExportDir is where spreadsheet exports are written.
	ExportDir string `mapstructure:"export_dir"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("state_dir", defaultStateDir())
	viper.SetDefault("persist", true)
	viper.SetDefault("track_fiber", true)
	viper.SetDefault("export_dir", ".")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// defaultStateDir is ~/.kcal, or the working directory when the home
// directory cannot be determined.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".kcal")
}
