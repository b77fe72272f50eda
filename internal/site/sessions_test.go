package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerohexer/cspnet/internal/content"
)

func newTestSessions() (*Sessions, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(func(id string) *App {
		return NewApp(id, content.Default(), nil, nil)
	})
	s.now = func() time.Time { return now }
	return s, &now
}

func TestSessionsGetOrCreate(t *testing.T) {
	s, _ := newTestSessions()

	a, created := s.GetOrCreate("")
	require.True(t, created)
	assert.NotEmpty(t, a.ID())

	again, created := s.GetOrCreate(a.ID())
	assert.False(t, created)
	assert.Same(t, a, again)

	other, created := s.GetOrCreate("forged-id")
	assert.True(t, created)
	assert.NotEqual(t, "forged-id", other.ID(), "client supplied IDs must not be adopted")
	assert.Equal(t, 2, s.Len())
}

func TestSessionsAreIndependent(t *testing.T) {
	s, _ := newTestSessions()
	a := s.Create()
	b := s.Create()

	a.HandleNavigation(t.Context(), "credits")

	assert.Equal(t, "credits", string(a.Current()))
	assert.Equal(t, "home", string(b.Current()))
}

func TestSessionsSweep(t *testing.T) {
	s, now := newTestSessions()
	stale := s.Create()
	*now = now.Add(20 * time.Minute)
	fresh := s.Create()

	removed := s.Sweep(10 * time.Minute)

	assert.Equal(t, 1, removed)
	_, ok := s.Get(stale.ID())
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID())
	assert.True(t, ok)
}

func TestSessionsGetRefreshesLastSeen(t *testing.T) {
	s, now := newTestSessions()
	a := s.Create()
	*now = now.Add(9 * time.Minute)
	_, ok := s.Get(a.ID())
	require.True(t, ok)
	*now = now.Add(9 * time.Minute)

	assert.Zero(t, s.Sweep(10*time.Minute))
}

func TestStartSweeper(t *testing.T) {
	s, _ := newTestSessions()

	_, err := s.StartSweeper("not a schedule", time.Minute)
	assert.Error(t, err)

	c, err := s.StartSweeper("@every 1h", time.Minute)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}

func TestSessionsLimit(t *testing.T) {
	s, now := newTestSessions()
	s.limit = 3

	oldest := s.Create()
	*now = now.Add(time.Second)
	kept := s.Create()
	*now = now.Add(time.Second)
	s.Create()
	*now = now.Add(time.Second)
	_, ok := s.Get(oldest.ID())
	require.True(t, ok, "touching a session makes it recent again")
	*now = now.Add(time.Second)

	for i := 0; i < 50; i++ {
		s.Create()
		*now = now.Add(time.Second)
	}

	assert.Equal(t, 3, s.Len())
	_, ok = s.Get(kept.ID())
	assert.False(t, ok, "least recently used session is evicted first")
}

func TestWithLimit(t *testing.T) {
	s := NewSessions(func(id string) *App {
		return NewApp(id, content.Default(), nil, nil)
	}, WithLimit(2))

	for i := 0; i < 10; i++ {
		s.Create()
	}
	assert.Equal(t, 2, s.Len())
}
