package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-board/internal/config"
	"github.com/saeidalz13/battleship-board/internal/metrics"
)

var (
	// Global flags
	configPath string

	// Loaded by the root command before any subcommand runs
	cfg *config.Config

	metricsServer *http.Server
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "Battleship board - place a fleet and fire at it",
		Long: `Battleship board validates a fleet of ten ships on a 10x10 grid
and reports the outcome of every shot fired at it.

Examples:
  battleship validate --fleet configs/fleet.yaml
  battleship fire --fleet configs/fleet.yaml --shot 0,0 --shot 4,7
  battleship engine < moves.jsonl`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			cfg.SetupLogger()

			if cfg.Metrics.Enabled {
				return startMetricsServer(cfg.Metrics.Addr)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			stopMetricsServer()
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./battleship.yaml or ./configs/battleship.yaml)")

	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewFireCommand())
	rootCmd.AddCommand(NewEngineCommand())

	return rootCmd
}

func startMetricsServer(addr string) error {
	metrics.InitRegistry()

	collector := metrics.NewBoardMetricsCollector()
	if err := collector.Register(); err != nil {
		return fmt.Errorf("failed to register board metrics: %w", err)
	}
	metrics.SetGlobalCollector(collector)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	metricsServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("serving metrics on %s\n", addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("metrics server stopped:", err)
		}
	}()
	return nil
}

func stopMetricsServer() {
	if metricsServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Println("failed to shut down metrics server:", err)
	}
	metricsServer = nil
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
