package site

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Factory creates the App for a new session.
type Factory func(id string) *App

type entry struct {
	app      *App
	lastSeen time.Time
}

// Sessions owns the Apps of all live browser sessions.
type Sessions struct {
	newApp Factory
	now    func() time.Time
	limit  int

	mu   sync.Mutex
	apps map[string]*entry
}

// SessionsOption configures a Sessions.
type SessionsOption func(*Sessions)

// WithLimit caps the number of live sessions. When the cap is reached, the
// least recently used session is dropped to make room. Zero means no cap.
func WithLimit(n int) SessionsOption {
	return func(s *Sessions) { s.limit = n }
}

// NewSessions creates an empty session set.
func NewSessions(newApp Factory, opts ...SessionsOption) *Sessions {
	s := &Sessions{
		newApp: newApp,
		now:    time.Now,
		apps:   make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the App for id and marks it as recently used.
func (s *Sessions) Get(id string) (*App, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.apps[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.app, true
}

// Create starts a new session with a fresh random ID.
func (s *Sessions) Create() *App {
	id := uuid.NewString()
	app := s.newApp(id)

	s.mu.Lock()
	if s.limit > 0 && len(s.apps) >= s.limit {
		s.evictOldestLocked()
	}
	s.apps[id] = &entry{app: app, lastSeen: s.now()}
	s.mu.Unlock()

	slog.Debug("Session created", "session_id", id)
	return app
}

// GetOrCreate returns the App for id, or a new session when id is empty or
// unknown. Client-supplied IDs are never used to create sessions.
func (s *Sessions) GetOrCreate(id string) (app *App, created bool) {
	if id != "" {
		if app, ok := s.Get(id); ok {
			return app, false
		}
	}
	return s.Create(), true
}

func (s *Sessions) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.apps {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(s.apps, oldestID)
	slog.Debug("Session evicted at capacity", "session_id", oldestID, "limit", s.limit)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

// Sweep drops sessions unused for longer than maxIdle and returns how many it removed.
func (s *Sessions) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.apps {
		if e.lastSeen.Before(cutoff) {
			delete(s.apps, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given cron schedule until the returned
// scheduler is stopped.
func (s *Sessions) StartSweeper(schedule string, maxIdle time.Duration) (*cron.Cron, error) {
	c := cron.New()
	var job cron.Job = cron.FuncJob(func() {
		if n := s.Sweep(maxIdle); n > 0 {
			slog.Info("Swept idle sessions", "removed", n, "remaining", s.Len())
		}
	})
	job = cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(job)
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, fmt.Errorf("scheduling session sweeper %q: %w", schedule, err)
	}
	c.Start()
	slog.Info("Session sweeper started", "schedule", schedule, "max_idle", maxIdle)
	return c, nil
}
