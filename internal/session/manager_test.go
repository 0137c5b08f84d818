package session

import (
	"testing"
	"time"

	"github.com/dmagallanes2/coldcallingassistant/internal/audio"
	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
)

func TestManager_ResolveCreatesAndReuses(t *testing.T) {
	m := NewManager(time.UTC, audio.OrderInsertion, time.Hour)

	s1 := m.Resolve("")
	if s1.ID == "" || s1.Log == nil || s1.Audio == nil {
		t.Fatalf("incomplete session: %+v", s1)
	}
	s2 := m.Resolve(s1.ID)
	if s2 != s1 {
		t.Fatalf("expected the same session for a known id")
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", m.Len())
	}
}

func TestManager_UnknownIDGetsFreshSession(t *testing.T) {
	m := NewManager(time.UTC, audio.OrderInsertion, time.Hour)
	s := m.Resolve("not-a-real-id")
	if s.ID == "not-a-real-id" {
		t.Fatalf("unknown ids must not be adopted")
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(time.UTC, audio.OrderInsertion, time.Hour)
	a := m.Resolve("")
	b := m.Resolve("")

	if _, err := a.Log.Append("Acme", "", calllog.ResultInterested, calllog.ReasonNotApplicable); err != nil {
		t.Fatalf("append: %v", err)
	}
	if b.Log.Len() != 0 {
		t.Fatalf("call leaked across sessions")
	}

	a.Audio.Register(audio.Clip{Label: "Pitch", Filename: "p.mp3"})
	if b.Audio.Len() != 0 {
		t.Fatalf("clip leaked across sessions")
	}
}

func TestManager_EvictIdle(t *testing.T) {
	m := NewManager(time.UTC, audio.OrderInsertion, time.Hour)
	now := time.Unix(1700000000, 0)
	m.SetClock(func() time.Time { return now })

	stale := m.Resolve("")
	now = now.Add(2 * time.Hour)
	fresh := m.Resolve("")

	if n := m.evictIdle(); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if got := m.Resolve(fresh.ID); got != fresh {
		t.Fatalf("fresh session evicted")
	}
	if got := m.Resolve(stale.ID); got == stale {
		t.Fatalf("stale session survived")
	}
}
