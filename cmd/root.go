package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kberry/kcal/internal/config"
	"github.com/kberry/kcal/internal/tracker"
	"github.com/kberry/kcal/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "kcal",
	Short: "Daily calorie and macro tracker",
	Long: `kcal tracks one day of eating in the terminal: food entries under five
fixed meal slots, calories burned through activity, and budgets for total
calories, per-meal calories, and macros. State is kept in a single snapshot
file and rebuilt from defaults when none exists.`,
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .kcal.yaml)")
	rootCmd.PersistentFlags().String("state-dir", "", "directory holding the state snapshot")
	rootCmd.PersistentFlags().Bool("no-persist", false, "keep state in memory only")

	_ = viper.BindPFlag("state_dir", rootCmd.PersistentFlags().Lookup("state-dir"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".kcal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("KCAL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadStore builds the store from configuration, creating the state
// directory when persistence is on.
func loadStore(cmd *cobra.Command) (*tracker.Store, config.Config, error) {
	cfg := config.Load()
	if noPersist, _ := cmd.Flags().GetBool("no-persist"); noPersist {
		cfg.Persist = false
	}

	path := filepath.Join(cfg.StateDir, tracker.StateFileName)
	if cfg.Persist {
		if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
			return nil, cfg, fmt.Errorf("creating state directory %s: %w", cfg.StateDir, err)
		}
	}

	store := tracker.NewStore(path, tracker.Options{
		Persist:    cfg.Persist,
		TrackFiber: cfg.TrackFiber,
	})
	return store, cfg, nil
}

// runRoot launches the TUI, wiring the snapshot watcher so external
// rewrites of the state file show up live.
func runRoot(cmd *cobra.Command, _ []string) error {
	store, cfg, err := loadStore(cmd)
	if err != nil {
		return err
	}

	p := tui.NewProgram(store, cfg.ExportDir)

	if cfg.Persist {
		path := filepath.Join(cfg.StateDir, tracker.StateFileName)
		w, err := tracker.NewWatcher(path)
		if err == nil && w.Start() == nil {
			defer w.Stop()
			go func() {
				for range w.Changes {
					p.Send(tui.MsgSnapshotChanged{})
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
