package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-board/api"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// NewEngineCommand creates the engine command
func NewEngineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Drive games with JSON messages over stdin/stdout",
		Long: `Read one JSON message per line from stdin and write one JSON
response per line to stdout. Runs until stdin is closed or the
process is interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rp := api.NewRequestProcessor(mb.NewBattleshipGameManager(), cmd.InOrStdin(), cmd.OutOrStdout())

			log.Println("engine started")
			err := rp.Run(ctx)
			if errors.Is(err, context.Canceled) {
				log.Println("engine interrupted")
				return nil
			}
			return err
		},
	}

	return cmd
}
