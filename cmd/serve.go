package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/site"
)

func newServeCmd(a *app) *cobra.Command {
	var watch bool
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio site",
		Long: `Serve loads the catalog, then serves the pages, the JSON API, the contact
form and the admin area. With --watch and a content directory, edits to the
markdown files reload the catalog without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}

			src, st, err := a.source()
			if err != nil {
				return err
			}
			opts := site.Options{
				Config:  a.cfg,
				Source:  src,
				Fetcher: newGitHubClient(a.cfg.GitHub),
			}
			if st != nil {
				defer st.Close()
				opts.Imports = st
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := site.New(ctx, opts)
			if err != nil {
				return err
			}

			if (watch || a.cfg.Watch) && st == nil && a.cfg.ContentDir != "" {
				w, err := watchContent(a.cfg.ContentDir, func() error {
					return srv.ReloadCatalog(context.WithoutCancel(ctx))
				})
				if err != nil {
					return err
				}
				defer w.Close()
			}

			return srv.Run(ctx)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the catalog when content files change")
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides config)")
	return cmd
}
