package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/termui"
)

type filterFlags struct {
	category   string
	collection string
	tags       []string
	query      string
}

func (f *filterFlags) register(cmd *cobra.Command, categoryFlag string) {
	cmd.Flags().StringVar(&f.category, categoryFlag, filter.All, "only show this "+categoryFlag)
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "require this tag (repeatable; repeating a tag cancels it)")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive text search")
}

func (f *filterFlags) state() filter.State {
	st := filter.NewState().
		WithCategory(f.category).
		WithCollection(f.collection).
		WithQuery(f.query)
	for _, tag := range f.tags {
		st = st.ToggleTag(tag)
	}
	return st
}

func newListCmd(a *app) *cobra.Command {
	var flags filterFlags
	cmd := &cobra.Command{
		Use:       "list <blog|projects|photos>",
		Short:     "List posts, projects or photos",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"blog", "projects", "photos"},
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

			state := flags.state()
			var out string
			switch args[0] {
			case "blog":
				out = termui.RenderPostTable(filter.Apply(c.Posts, state))
			case "projects":
				out = termui.RenderProjectTable(filter.Apply(c.Projects, state))
			case "photos":
				out = termui.RenderPhotoTable(filter.Apply(c.Photos, state))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.register(cmd, "category")
	cmd.Flags().StringVar(&flags.collection, "collection", filter.All, "only show photos in this collection")
	return cmd
}
