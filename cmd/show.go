package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/termui"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Render a blog post in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, st, err := a.source()
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
			}
			c, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}
			post, ok := c.PostBySlug(args[0])
			if !ok {
				return fmt.Errorf("post %q not found", args[0])
			}
			out, err := termui.RenderPost(post)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
