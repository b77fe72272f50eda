package topics

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds validated topics keyed by name.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

// NewRegistry creates a new, empty topic registry.
func NewRegistry() *Registry {
	return &Registry{topics: make(map[string]Topic)}
}

// Register validates and adds a topic. Names must be unique.
func (r *Registry) Register(topic Topic) error {
	if err := topic.Validate(); err != nil {
		return fmt.Errorf("topic %q: %w", topic.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.topics[topic.Name]; exists {
		return fmt.Errorf("topic already registered: %s", topic.Name)
	}
	r.topics[topic.Name] = topic
	return nil
}

// MustRegister registers a topic and panics if registration fails.
func (r *Registry) MustRegister(topic Topic) {
	if err := r.Register(topic); err != nil {
		panic(fmt.Sprintf("failed to register topic: %v", err))
	}
}

// Get returns a topic by name.
func (r *Registry) Get(name string) (Topic, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	topic, ok := r.topics[name]
	return topic, ok
}

// List returns all topics sorted by name.
func (r *Registry) List() []Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Topic) int { return strings.Compare(a.Name, b.Name) })
	return out
}
