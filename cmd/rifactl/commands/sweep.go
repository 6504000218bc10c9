package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Free every expired reservation once",
	Long: `Runs one pass of the reservation expiry sweep that the API server
normally schedules. Expired holds are also reclaimed lazily on reserve,
so this only tidies up raffles nobody touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		freed, err := e.reservations().SweepExpired(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to sweep -> %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]int{"freed": freed})
		}
		fmt.Printf("freed %d expired numbers\n", freed)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
