package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/api"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var (
	flagHTTPAddr      string
	flagSessionTTL    time.Duration
	flagPruneInterval time.Duration
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP session API",
	Long: `Start an HTTP server that hosts independent 2048 games.

Routes (all under /api/v1):
  POST   /sessions             - Start a game
  GET    /sessions/{id}        - Current board
  POST   /sessions/{id}/moves  - Apply {"action": "left"}
  DELETE /sessions/{id}        - End a game
  GET    /scores/{mode}        - Top scores
  GET    /health               - Liveness

Sessions idle for longer than the TTL are dropped.
Finished games are recorded under "` + session.GameID + `".

Examples:
  t2048 api
  t2048 api --http :9090 --session-ttl 15m
  curl -X POST localhost:8080/api/v1/sessions`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (default: http.address from config)")
	apiCmd.Flags().DurationVar(&flagSessionTTL, "session-ttl", 0, "Idle session lifetime (default: http.session_ttl from config)")
	apiCmd.Flags().DurationVar(&flagPruneInterval, "prune-interval", time.Minute, "How often idle sessions are dropped")
}

func runAPI(_ *cobra.Command, _ []string) error {
	httpLogger := logger.WithPrefix("t2048-http")

	policy, err := t2048.ParseSpawnPolicy(appConfig.Engine.SpawnPolicy)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithSpawnPolicy(policy),
		session.WithLogger(logger.WithPrefix("session")),
	}

	store := openStore()
	defer closeStore(store)
	if store != nil {
		opts = append(opts, session.WithScoreSaver(store))
	}
	manager := session.NewManager(opts...)

	routerCfg := api.RouterConfig{Logger: httpLogger, Sessions: manager}
	if store != nil {
		routerCfg.Scores = store
	}

	serverCfg := api.DefaultServerConfig()
	serverCfg.Address = cmp.Or(flagHTTPAddr, appConfig.HTTP.Address)
	server := api.NewServer(api.NewRouter(routerCfg), serverCfg, httpLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ttl := cmp.Or(flagSessionTTL, appConfig.HTTP.SessionTTL)
	go manager.Run(ctx, flagPruneInterval, ttl)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	return nil
}
