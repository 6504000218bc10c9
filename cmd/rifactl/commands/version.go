package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rifaapp/rifa-api/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the configured service version",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config -> %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]string{
				"service": conf.API.ServiceName,
				"version": conf.API.Version,
			})
		}
		fmt.Printf("%s %s\n", conf.API.ServiceName, conf.API.Version)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
