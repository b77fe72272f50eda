// Package events declares the typed events published on the bus.
package events

import (
	"time"

	"github.com/zerohexer/cspnet/internal/pubsub"
	"github.com/zerohexer/cspnet/internal/topics"
)

// Navigation is published every time a session successfully navigates to a route.
type Navigation struct {
	Route string    `json:"route"`
	At    time.Time `json:"at"`
}

// Navigated is the topic carrying Navigation events.
var Navigated = pubsub.NewEvent[Navigation]("site.navigated")

// Catalog lists every topic the site publishes.
var Catalog = newCatalog()

func newCatalog() *topics.Registry {
	r := topics.NewRegistry()
	r.MustRegister(topics.Topic{
		Name:        Navigated.Name(),
		Description: "A session switched to another page",
		Example:     `{"route":"credits","at":"2024-01-01T12:00:00Z"}`,
	})
	return r
}
