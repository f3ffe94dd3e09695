package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Nacorpio/Narser/internal/handler"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides SERVER_PORT)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the grammar endpoints over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			appCfg.Server.Port = servePort
		}

		srv := &http.Server{
			Addr:              ":" + appCfg.Server.Port,
			Handler:           handler.NewRouter(appCfg, logger),
			ReadTimeout:       appCfg.Server.ReadTimeout,
			WriteTimeout:      appCfg.Server.WriteTimeout,
			IdleTimeout:       120 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Server error channel
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("server starting", "port", appCfg.Server.Port)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("shutdown started")

			// Give outstanding requests a deadline for completion
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				srv.Close()
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}

		return nil
	},
}
