package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw <raffle-id>",
	Short: "Draw the winning number of a raffle",
	Long: `Draws a winner among the sold numbers of the raffle. Running it again
prints the winner recorded by the first draw.

Examples:
  rifactl draw 2b1c6f4e-8f7a-4a55-b7a3-3b1f0f0f6c11
  rifactl draw 2b1c6f4e-8f7a-4a55-b7a3-3b1f0f0f6c11 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raffleID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid raffle id %q -> %w", args[0], err)
		}

		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		result, err := e.reservations().Draw(cmd.Context(), raffleID)
		if err != nil {
			return fmt.Errorf("failed to draw -> %w", err)
		}

		if jsonOutput {
			return printJSON(result)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "RAFFLE\t%s\n", result.RaffleID)
		fmt.Fprintf(w, "NUMBER\t%d\n", result.WinningNumber)
		fmt.Fprintf(w, "TICKET\t%s\n", result.WinnerTicketID)
		fmt.Fprintf(w, "PARTICIPANT\t%s\n", result.WinnerParticipantID)

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
}
