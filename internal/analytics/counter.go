// Package analytics counts page visits from navigation events.
package analytics

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/zerohexer/cspnet/internal/events"
	"github.com/zerohexer/cspnet/internal/pubsub"
)

// Counter tallies successful navigations per route.
type Counter struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Start subscribes the counter to navigation events until ctx is canceled.
func (c *Counter) Start(ctx context.Context, sub pubsub.Subscriber) error {
	err := pubsub.Subscribe(ctx, sub, events.Navigated, func(_ context.Context, sessionID string, ev events.Navigation) error {
		c.Record(ev.Route)
		slog.Debug("Visit recorded", "route", ev.Route, "session_id", sessionID)
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("Visit counter subscribed", "topic", events.Navigated.Name())
	return nil
}

// Record counts one visit to route.
func (c *Counter) Record(route string) {
	c.mu.Lock()
	c.counts[route]++
	c.mu.Unlock()
}

// Snapshot returns a copy of the counts.
func (c *Counter) Snapshot() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.counts)
}
