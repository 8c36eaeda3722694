package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kberry/kcal/internal/config"
	"github.com/kberry/kcal/internal/tracker"
)

// resetCmd deletes the snapshot so the next launch starts a fresh day.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved state and start a fresh day",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	path := filepath.Join(cfg.StateDir, tracker.StateFileName)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to reset")
			return nil
		}
		return fmt.Errorf("removing state file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "state cleared")
	return nil
}
