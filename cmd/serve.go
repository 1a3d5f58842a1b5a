package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortsim/sortsim/api"
)

const shutdownTimeout = 5 * time.Second

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve algorithm listing, traced sorts, shuffle plans and metrics over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewHandler(prometheus.NewRegistry()),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logrus.Warnf("Shutdown: %v", err)
			}
		}()

		logrus.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server failed: %v", err)
		}
		logrus.Info("Server stopped")
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
