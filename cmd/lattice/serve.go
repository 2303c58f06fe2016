package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/config"
	"github.com/aretw0/lattice/internal/logging"
	httpAdapter "github.com/aretw0/lattice/pkg/adapters/http"
	"github.com/aretw0/lattice/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/lattice/pkg/adapters/redis"
	"github.com/aretw0/lattice/pkg/gamedata"
	"github.com/aretw0/lattice/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planner HTTP server",
	Long:  `Starts the Lattice planner in server mode, exposing the timeline operations as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		logLevel, _ := cmd.Flags().GetString("log-level")
		listen, _ := cmd.Flags().GetString("listen")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if listen != "" {
			cfg.Listen = listen
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		var store ports.ScenarioStore
		if cfg.Redis.Addr != "" {
			redisStore := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(time.Duration(cfg.Redis.ScenarioTTLSeconds)*time.Second))
			defer redisStore.Close()
			store = redisStore
			logger.Info("using redis scenario store", "addr", cfg.Redis.Addr)
		} else {
			store = memory.NewStore()
		}

		planner := lattice.New(
			lattice.WithSource(gamedata.NewClient(cfg.GamedataURL)),
			lattice.WithScenarioStore(store),
			lattice.WithTrackCount(cfg.TrackCount),
			lattice.WithLogger(logger),
		)

		loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
		if err := planner.LoadRoster(loadCtx); err != nil {
			// The server still starts: a roster load can be retried over
			// the API once the data source is reachable.
			logger.Warn("initial roster load failed", "error", err)
		}
		cancelLoad()

		handler := httpAdapter.NewHandler(planner, httpAdapter.WithLogger(logger))

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting lattice server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("lattice server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Listen address (overrides config)")
}
