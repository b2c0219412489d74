package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sylcal/src-server/route"
	"sylcal/src-server/utils"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCommand(newAppState func() *utils.AppState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the parsers over HTTP",
		Long: `Serve the parsers over HTTP on PORT.

  POST /parse            {"line": "..."}
  POST /parse/delimited  {"event": "...", "timezone": "..."}
  POST /ical             {"line": "..."}
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), newAppState())
		},
	}
}

func serve(ctx context.Context, as *utils.AppState) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	server := &http.Server{
		Addr:              ":" + as.Config.GetPort(),
		Handler:           route.Handler(as, promhttp.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("app is now running, press Ctrl+C to exit", "port", as.Config.GetPort())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Gracefully shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
