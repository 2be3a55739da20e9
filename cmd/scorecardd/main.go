// Command scorecardd serves scorecard builds over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/pipeline"
	"github.com/joseph-ayodele/om-scorecard/internal/server"
)

func main() {
	var configPath, addr string
	cmd := &cobra.Command{
		Use:           "scorecardd",
		Short:         "Serve scorecard builds over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.HTTPAddr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file (env and .env still apply)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(common.ExitCode(common.Code(err)))
	}
}

func serve(ctx context.Context, cfg *common.Config) error {
	logger := common.NewLogger(os.Stdout, cfg.Log.Level)
	slog.SetDefault(logger)

	proc, err := pipeline.FromConfig(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if common.ParseLevel(cfg.Log.Level) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           server.Router(server.NewHandler(proc, cfg.LLM.Model, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.listening", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return common.Unavailable("listen "+cfg.Server.HTTPAddr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return common.Internal("shutdown", err)
	}
	logger.Info("server.stopped")
	return nil
}
