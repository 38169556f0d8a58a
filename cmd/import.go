package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/store"
)

func newImportCmd(a *app) *cobra.Command {
	var dbPath, contentDir string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy markdown content into the SQLite catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = a.cfg.DBPath
			}
			if dbPath == "" {
				return fmt.Errorf("no database: pass --db or set db_path")
			}
			if !cmd.Flags().Changed("content") {
				contentDir = a.cfg.ContentDir
			}

			dir, err := content.Open(contentDir)
			if err != nil {
				return err
			}
			c, err := dir.Load(cmd.Context())
			if err != nil {
				return err
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.SaveCatalog(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d posts, %d projects, %d photos into %s (run %s)\n",
				run.Posts, run.Projects, run.Photos, dbPath, run.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from db_path)")
	cmd.Flags().StringVar(&contentDir, "content", "", "content directory (default from content_dir, else built-in)")
	return cmd
}
