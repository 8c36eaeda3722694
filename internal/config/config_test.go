package config

import (
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoadDefaults(t *testing.T) {
	resetViper()

	cfg := Load()

	if cfg.StateDir == "" {
		t.Error("StateDir default is empty")
	}
	if !cfg.Persist {
		t.Error("Persist default = false, want true")
	}
	if !cfg.TrackFiber {
		t.Error("TrackFiber default = false, want true")
	}
	if cfg.ExportDir != "." {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, ".")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	resetViper()

	t.Setenv("KCAL_STATE_DIR", "/tmp/kcal-test")
	t.Setenv("KCAL_PERSIST", "false")
	t.Setenv("KCAL_TRACK_FIBER", "false")

	viper.SetEnvPrefix("KCAL")
	viper.AutomaticEnv()

	cfg := Load()

	if cfg.StateDir != "/tmp/kcal-test" {
		t.Errorf("StateDir = %q, want /tmp/kcal-test", cfg.StateDir)
	}
	if cfg.Persist {
		t.Error("Persist = true, want false from env")
	}
	if cfg.TrackFiber {
		t.Error("TrackFiber = true, want false from env")
	}
}

func TestLoadConfigValueOverrides(t *testing.T) {
	resetViper()

	viper.Set("export_dir", "/tmp/exports")

	cfg := Load()
	if cfg.ExportDir != "/tmp/exports" {
		t.Errorf("ExportDir = %q, want /tmp/exports", cfg.ExportDir)
	}
}
