package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/brogergvhs/mangaread/internal/api"
	"github.com/brogergvhs/mangaread/internal/providers"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the listings over HTTP under /api/v1",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := loadOptions()
		opts.Listen = flagListen

		s, err := newSession(opts)
		if err != nil {
			return err
		}

		if !s.cfg.Debug {
			gin.SetMode(gin.ReleaseMode)
		}

		srv, err := api.NewServer(api.Options{
			Registry: providers.Default(),
			Provider: s.provider.Name,
			Fetcher:  s.fetcher,
			Logger:   s.log,
		})
		if err != nil {
			return err
		}

		httpSrv := &http.Server{
			Addr:              s.cfg.Listen,
			Handler:           srv.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			s.log.Infof("HTTP API listening on %s (provider %s)", s.cfg.Listen, s.provider.Name)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case <-cmd.Context().Done():
			s.log.Infof("shutdown signal received")
		case err, ok := <-errCh:
			if ok {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown error: %v", err)
			return err
		}

		s.log.Infof("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default :8000)")
	rootCmd.AddCommand(serveCmd)
}
