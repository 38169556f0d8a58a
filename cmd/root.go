package cmd

import (
	"fmt"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/store"
)

var version = "dev"

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "folio",
		Short:   "Personal portfolio site and catalog tools",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./folio.yaml)")

	rootCmd.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newGitHubCmd(a),
		newShowCmd(a),
		newImportCmd(a),
	)

	mtp.WithDescribe(rootCmd, &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"serve": {
				Examples: []mtp.Example{
					{Description: "Serve the built-in content", Command: "folio serve"},
					{Description: "Serve a content directory and reload on edits", Command: "folio serve --watch"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of the filtered posts, projects or photos, or a 'No ... found.' line",
				},
				Examples: []mtp.Example{
					{Description: "List Web Development posts", Command: "folio list blog --category \"Web Development\""},
					{Description: "Photos tagged both sunset and mountains", Command: "folio list photos --tag sunset --tag mountains"},
				},
			},
			"github": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Profile counters followed by a table of repositories",
				},
				Examples: []mtp.Example{
					{Description: "Most starred Go repositories", Command: "folio github --language Go --sort stars"},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "The post rendered as styled terminal markdown",
				},
				Examples: []mtp.Example{
					{Description: "Read a post", Command: "folio show building-responsive-web-apps"},
				},
			},
			"import": {
				Examples: []mtp.Example{
					{Description: "Copy markdown content into SQLite", Command: "folio import --db folio.db --content ./content"},
				},
			},
		},
	})
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}

// source picks the catalog backend: SQLite when a database is configured,
// otherwise markdown content (embedded defaults when no directory is set).
// The returned store is nil for markdown sources.
func (a *app) source() (catalog.Source, *store.Store, error) {
	if a.cfg.DBPath != "" {
		st, err := store.Open(a.cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return st, st, nil
	}
	dir, err := content.Open(a.cfg.ContentDir)
	if err != nil {
		return nil, nil, err
	}
	return dir, nil, nil
}
