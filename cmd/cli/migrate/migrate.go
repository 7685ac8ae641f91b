package migrate

import (
	"fmt"

	"github.com/crucial707/postboard/cmd/cli/output"
	"github.com/crucial707/postboard/internal/db"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func NewCmd(databaseURL func() string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Run(databaseURL()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			if err := db.Down(databaseURL(), steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s).\n", steps)
			return nil
		},
	}
	downCmd.Flags().Int("steps", 1, "number of migrations to roll back")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := db.Version(databaseURL())
			if err != nil {
				return err
			}
			if output.WantJSON(cmd) {
				return output.RenderJSON(cmd.OutOrStdout(), map[string]any{"version": version, "dirty": dirty})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"Version", "Dirty"}, [][]interface{}{{version, dirty}})
			return nil
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd, versionCmd)
	return migrateCmd
}
