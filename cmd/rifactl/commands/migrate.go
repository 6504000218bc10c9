package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rifaapp/rifa-api/internal/repository/dao"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		if err = dao.NewSchema(e.db).EnsureReady(cmd.Context()); err != nil {
			return fmt.Errorf("failed to migrate -> %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]string{"status": "migrated"})
		}
		fmt.Println("schema is up to date")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
