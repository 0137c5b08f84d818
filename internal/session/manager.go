package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmagallanes2/coldcallingassistant/internal/audio"
	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
)

// Session is one operator's in-memory state: a call log and an audio
// registry, both lost when the session expires or the process restarts.
// Sessions never share state with each other.
type Session struct {
	ID    string
	Log   *calllog.Log
	Audio *audio.Registry

	lastSeen time.Time
}

// Manager owns every live session. It is the host-side answer to session
// scoping: the core packages assume exclusive access to the state they are
// handed, so the manager is the only place ids are resolved.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	loc      *time.Location
	ordering audio.Ordering
	ttl      time.Duration
	clock    func() time.Time
}

func NewManager(loc *time.Location, ordering audio.Ordering, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		sessions: make(map[string]*Session),
		loc:      loc,
		ordering: ordering,
		ttl:      ttl,
		clock:    time.Now,
	}
}

// Resolve returns the session for id, creating a fresh one when id is empty
// or unknown (expired sessions look the same as never-existed ones to the
// caller). The returned session's last-seen time is refreshed.
func (m *Manager) Resolve(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.lastSeen = now
			return s
		}
	}

	s := &Session{
		ID:       uuid.NewString(),
		Log:      calllog.New(m.loc),
		Audio:    audio.NewRegistry(m.ordering),
		lastSeen: now,
	}
	m.sessions[s.ID] = s
	return s
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts idle sessions every interval until ctx is canceled. Evicted
// state is simply dropped; only manually exported files outlive a session.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration, log *slog.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.evictIdle(); n > 0 && log != nil {
				log.Info("sessions evicted", "count", n)
			}
		}
	}
}

func (m *Manager) evictIdle() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.clock().Add(-m.ttl)
	n := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// SetClock overrides the time source. Intended for tests.
func (m *Manager) SetClock(clock func() time.Time) { m.clock = clock }
