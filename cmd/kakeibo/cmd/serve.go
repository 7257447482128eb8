package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	apphttp "kakeibo/internal/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, cfg, cleanup, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		srv := apphttp.NewServer(":"+cfg.Port, st)

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			slog.Info("Starting kakeibo server", "port", cfg.Port, "backend", cfg.SlotBackend)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			slog.Info("Shutdown signal received")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}

		slog.Info("Server stopped gracefully")
		return nil
	},
}
