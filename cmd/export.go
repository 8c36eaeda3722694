package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kberry/kcal/internal/export"
)

// exportCmd writes the day's log as a spreadsheet without launching the TUI.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the day's log as an .xlsx spreadsheet",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	store, cfg, err := loadStore(cmd)
	if err != nil {
		return err
	}

	dir := cfg.ExportDir
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		dir = out
	}

	path, err := export.Write(store.State(), dir, store.TrackFiber())
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
