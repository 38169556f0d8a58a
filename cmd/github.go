package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/termui"
)

func newGitHubClient(cfg config.GitHub) *github.Client {
	return github.NewClientWithBase(cfg.APIURL, cfg.Username).
		WithPerPage(cfg.PerPage).
		WithTimeout(cfg.Timeout)
}

func newGitHubCmd(a *app) *cobra.Command {
	var flags filterFlags
	var sortBy string
	cmd := &cobra.Command{
		Use:   "github",
		Short: "Fetch the GitHub profile and list repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := filter.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			loader := github.NewLoader(newGitHubClient(a.cfg.GitHub))
			snap, err := loader.Load(cmd.Context())
			if errors.Is(err, github.ErrFetch) {
				fmt.Fprintln(cmd.ErrOrStderr(), termui.RenderError("Failed to fetch GitHub data. Please try again later."))
				return err
			}
			if err != nil {
				return err
			}

			v := filter.NewRankedView(snap.Repositories, key).Replace(flags.state())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, termui.RenderProfile(*snap.Profile))
			fmt.Fprintln(out, termui.RenderRepoTable(v.Items()))
			return nil
		},
	}
	flags.register(cmd, "language")
	cmd.Flags().StringVar(&sortBy, "sort", string(filter.SortUpdated), "order by stars, forks or updated")
	return cmd
}
