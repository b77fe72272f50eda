package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/zerohexer/cspnet/internal/analytics"
	"github.com/zerohexer/cspnet/internal/config"
	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/internal/pubsub"
	"github.com/zerohexer/cspnet/internal/server"
	"github.com/zerohexer/cspnet/internal/site"
)

// Run starts the background services and the HTTP server, and blocks until
// ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config) error {
	injector := NewInjector(cfg)
	defer injector.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus, err := do.Invoke[*pubsub.WatermillBridge](injector)
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			slog.Warn("Closing event bus", "error", err)
		}
	}()

	if err := do.MustInvoke[*analytics.Counter](injector).Start(ctx, bus); err != nil {
		return fmt.Errorf("starting visit counter: %w", err)
	}

	store, err := do.Invoke[*content.Store](injector)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	if cfg.ContentWatch {
		if err := store.Watch(ctx); err != nil {
			return err
		}
		slog.Info("Watching site content", "path", store.Path())
	}

	sessions := do.MustInvoke[*site.Sessions](injector)
	sweeper, err := sessions.StartSweeper(cfg.SessionSweepSchedule, cfg.SessionIdleTimeout)
	if err != nil {
		return err
	}
	defer func() { <-sweeper.Stop().Done() }()

	srv, err := do.Invoke[*server.Server](injector)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Addr)
}
