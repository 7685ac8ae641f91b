package posts

import (
	"errors"
	"fmt"
	"strconv"
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
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Inspect posts",
	}
	postsCmd.AddCommand(listPostsCmd(open), showPostCmd(open))
	return postsCmd
}

// ==========================
// List Posts
// ==========================
func listPostsCmd(open config.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")

			db, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			posts := repo.NewPostRepo(db)
			list, err := posts.ListPage(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			total, err := posts.Count(cmd.Context())
			if err != nil {
				return err
			}

			if output.WantJSON(cmd) {
				return output.RenderJSON(cmd.OutOrStdout(), list)
			}
			rows := make([][]interface{}, 0, len(list))
			for _, p := range list {
				rows = append(rows, []interface{}{p.ID, p.Title, p.Author, p.DatePosted})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "Title", "Author", "Posted"}, rows, "", "", "Total", total)
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum number of posts")
	cmd.Flags().Int("offset", 0, "number of posts to skip")
	return cmd
}

// ==========================
// Show Post
// ==========================
func showPostCmd(open config.Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one post with its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			db, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			post, err := repo.NewPostRepo(db).GetByID(cmd.Context(), id)
			if errors.Is(err, repo.ErrNotFound) {
				return fmt.Errorf("post %d not found", id)
			}
			if err != nil {
				return err
			}

			if output.WantJSON(cmd) {
				return output.RenderJSON(cmd.OutOrStdout(), post)
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"Field", "Value"}, [][]interface{}{
				{"ID", post.ID},
				{"Title", post.Title},
				{"Author", post.Author},
				{"Posted", post.DatePosted},
				{"Created", post.CreatedAt.Format(time.RFC3339)},
			})
			fmt.Fprintln(cmd.OutOrStdout(), post.Content)
			return nil
		},
	}
}
