package main

import (
	"github.com/maxaizer/fit-core/internal/metrics"
	"github.com/maxaizer/fit-core/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os/signal"
	"syscall"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run store housekeeping and expose metrics until interrupted",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	metrics.StartMetricsServer(a.cfg.Comparison.MetricsAddress)

	cleaner, err := services.NewComparisonsCleaner(a.comparisons, a.cfg.Comparison.SavedExpirationDays)
	if err != nil {
		return err
	}
	cleaner.Start()

	<-ctx.Done()

	log.Info("Shutting down services...")
	cleaner.Stop()
	log.Info("Services stopped.")
	return nil
}
