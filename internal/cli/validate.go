package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-board/internal/config"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var fleetPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a fleet file holds a legal fleet",
		Long: `Load the placements of a fleet file and check that they form
exactly ten ships: four 1-deck, three 2-deck, two 3-deck and one 4-deck.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			placements, err := config.LoadPlacements(fleetPath)
			if err != nil {
				return err
			}

			board := mb.NewBoard(placements)
			counts := board.DeckCounts()

			out := cmd.OutOrStdout()
			decks := make([]int, 0, len(counts))
			for d := range counts {
				decks = append(decks, d)
			}
			sort.Ints(decks)
			for _, d := range decks {
				fmt.Fprintf(out, "  %d-deck ships: %d\n", d, counts[d])
			}

			if err := board.ValidateField(); err != nil {
				return err
			}

			fmt.Fprintln(out, "✓ Fleet is valid")
			return board.Render(out)
		},
	}

	cmd.Flags().StringVar(&fleetPath, "fleet", "", "Path to the fleet file (yaml or json)")
	cmd.MarkFlagRequired("fleet")

	return cmd
}
