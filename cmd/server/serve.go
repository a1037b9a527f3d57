package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/youruser/cardgen/internal/api"
	"github.com/youruser/cardgen/internal/logging"
)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the card generator web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			gin.SetMode(cfg.Server.Mode)

			// compose reads the template per request; warn now so a bad path shows up at startup
			if _, err := os.Stat(cfg.Card.TemplatePath); err != nil {
				logging.Warn("default template not readable", "path", cfg.Card.TemplatePath, "error", err)
			}

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           api.NewRouter(api.NewHandler(newComposer(cfg), cfg.MaxUploadBytes())),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logging.Info("starting server", "addr", "http://localhost"+srv.Addr, "version", version)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			logging.Warn("shutdown signal received, closing server")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logging.Error("server forced to shutdown", "error", err)
				return err
			}
			logging.Info("server stopped cleanly")
			return nil
		},
	}
}
