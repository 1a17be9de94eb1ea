package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-board/internal/config"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// NewFireCommand creates the fire command
func NewFireCommand() *cobra.Command {
	var (
		fleetPath string
		shots     []string
	)

	cmd := &cobra.Command{
		Use:   "fire",
		Short: "Fire a sequence of shots at a fleet",
		Long: `Place the fleet of a fleet file, fire every --shot in order and
print each outcome followed by the final board.

Shots are given as row,column with both values in [0, 9]. Shots that
land outside the grid are misses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			locations := make([]mb.Coordinates, 0, len(shots))
			for _, raw := range shots {
				location, err := parseShot(raw)
				if err != nil {
					return err
				}
				locations = append(locations, location)
			}

			placements, err := config.LoadPlacements(fleetPath)
			if err != nil {
				return err
			}

			game, err := mb.NewBattleshipGameManager().CreateGame(placements)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, location := range locations {
				result, err := game.Fire(location)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%d,%d: %s\n", location.Row, location.Column, result.Outcome)
				if result.IsGameOver {
					fmt.Fprintln(out, "All ships are sunk!")
					break
				}
			}

			stats := game.Stats()
			fmt.Fprintf(out, "Shots: %d  Hits: %d  Misses: %d  Sunk: %d  Left: %d\n",
				stats.Shots, stats.Hits, stats.Misses, stats.ShipsSunk, stats.ShipsLeft)

			return game.Render(out)
		},
	}

	cmd.Flags().StringVar(&fleetPath, "fleet", "", "Path to the fleet file (yaml or json)")
	cmd.Flags().StringArrayVar(&shots, "shot", nil, "Shot as row,column (repeatable)")
	cmd.MarkFlagRequired("fleet")

	return cmd
}

func parseShot(raw string) (mb.Coordinates, error) {
	rowStr, columnStr, found := strings.Cut(raw, ",")
	if !found {
		return mb.Coordinates{}, cerr.ErrInvalidShot(raw)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInvalidShot(raw)
	}
	column, err := strconv.Atoi(strings.TrimSpace(columnStr))
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInvalidShot(raw)
	}

	return mb.NewCoordinates(row, column), nil
}
