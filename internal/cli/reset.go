package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rlankford/crewboard/internal/persist"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved state file and start over from the seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		file := persist.NewFile(cfg.StatePath, newLogger(cfg))
		if err := file.Remove(); err != nil {
			return fmt.Errorf("reset state: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "removed", cfg.StatePath)
		return nil
	},
}
