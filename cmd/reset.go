package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/azizk/campulse/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local survey data (database, draft and device identity)",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes the local database, the draft in progress and the device identity.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		dataDir, err := store.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		targets := []string{
			dbPath,
			dbPath + "-wal",
			dbPath + "-shm",
			filepath.Join(dataDir, "draft.json"),
			filepath.Join(dataDir, "device_id"),
		}
		for _, t := range targets {
			if err := os.Remove(t); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", t, err)
			}
		}
		fmt.Println("Local data removed.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
