package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/crucial707/postboard/cmd/cli/config"
	"github.com/crucial707/postboard/cmd/cli/output"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func NewCmd(open config.Opener) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}
	usersCmd.AddCommand(listUsersCmd(open), showUserCmd(open))
	return usersCmd
}

// ==========================
// List Users
// ==========================
func listUsersCmd(open config.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users ordered by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")

			db, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			users := repo.NewUserRepo(db)
			list, err := users.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			total, err := users.Count(cmd.Context())
			if err != nil {
				return err
			}

			if output.WantJSON(cmd) {
				return output.RenderJSON(cmd.OutOrStdout(), list)
			}
			rows := make([][]interface{}, 0, len(list))
			for _, u := range list {
				rows = append(rows, []interface{}{u.ID, u.Username, u.Email, u.CreatedAt.Format(time.DateTime)})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "Username", "Email", "Joined"}, rows, "", "", "Total", total)
			return nil
		},
	}
	cmd.Flags().Int("limit", 50, "maximum number of users")
	cmd.Flags().Int("offset", 0, "number of users to skip")
	return cmd
}

// ==========================
// Show User
// ==========================
func showUserCmd(open config.Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <username>",
		Short: "Show one user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := repo.NewUserRepo(db).GetByUsername(cmd.Context(), args[0])
			if errors.Is(err, repo.ErrNotFound) {
				return fmt.Errorf("user %q not found", args[0])
			}
			if err != nil {
				return err
			}

			if output.WantJSON(cmd) {
				return output.RenderJSON(cmd.OutOrStdout(), user)
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"Field", "Value"}, [][]interface{}{
				{"ID", user.ID},
				{"Username", user.Username},
				{"Email", user.Email},
				{"Image", user.ImageFile},
				{"Joined", user.CreatedAt.Format(time.DateTime)},
			})
			return nil
		},
	}
}
