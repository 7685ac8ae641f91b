package root

import (
	"github.com/crucial707/postboard/cmd/cli/config"
	"github.com/crucial707/postboard/cmd/cli/migrate"
	"github.com/crucial707/postboard/cmd/cli/output"
	"github.com/crucial707/postboard/cmd/cli/posts"
	"github.com/crucial707/postboard/cmd/cli/users"
	"github.com/spf13/cobra"
)

// New builds the command tree. open and databaseURL point the commands at a
// database; main passes the environment-backed ones from the config package.
func New(open config.Opener, databaseURL func() string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "postboard",
		Short:         "Postboard operator CLI",
		Long:          "Command line interface for inspecting a Postboard database and running its migrations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool(output.JSONFlag, false, "print JSON instead of a table")

	rootCmd.AddCommand(
		migrate.NewCmd(databaseURL),
		users.NewCmd(open),
		posts.NewCmd(open),
	)
	return rootCmd
}
