package calllog

import (
	"errors"
	"testing"
	"time"
)

func TestLog_AppendStampsConfiguredTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	l := New(loc)
	now := time.Unix(1700000000, 0).UTC()
	l.SetClock(func() time.Time { return now })

	rec, err := l.Append("Acme Plumbing", "left voicemail", ResultRejected, ReasonNoAnswer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Timestamp.Location() != loc {
		t.Fatalf("expected %v location, got %v", loc, rec.Timestamp.Location())
	}
	if !rec.Timestamp.Equal(now) {
		t.Fatalf("timestamp changed instant: %v != %v", rec.Timestamp, now)
	}
}

func TestLog_AppendRejectsEmptyBusiness(t *testing.T) {
	l := New(time.UTC)
	if _, err := l.Append("", "notes", ResultInterested, ReasonNotApplicable); !errors.Is(err, ErrEmptyBusiness) {
		t.Fatalf("expected ErrEmptyBusiness, got %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("rejected submission must not create a record")
	}
}

func TestLog_AppendRejectsUnknownEnums(t *testing.T) {
	l := New(time.UTC)
	if _, err := l.Append("Acme", "", Result("maybe"), ReasonNoAnswer); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("expected ErrInvalidResult, got %v", err)
	}
	if _, err := l.Append("Acme", "", ResultInterested, Reason("eh")); !errors.Is(err, ErrInvalidReason) {
		t.Fatalf("expected ErrInvalidReason, got %v", err)
	}
}

func TestLog_SnapshotIsACopy(t *testing.T) {
	l := New(time.UTC)
	if _, err := l.Append("Acme", "", ResultInterested, ReasonNotApplicable); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	snap := l.Snapshot()
	snap[0].Business = "mutated"

	again := l.Snapshot()
	if again[0].Business != "Acme" {
		t.Fatalf("snapshot mutation leaked into the log")
	}
}

func TestLog_InsertionOrderPreserved(t *testing.T) {
	l := New(time.UTC)
	names := []string{"Acme", "Beta", "Acme"} // duplicates are valid
	for _, n := range names {
		if _, err := l.Append(n, "", ResultRejected, ReasonNotInterested); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	snap := l.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 records, got %d", len(snap))
	}
	for i, n := range names {
		if snap[i].Business != n {
			t.Fatalf("position %d: expected %q, got %q", i, n, snap[i].Business)
		}
	}
}

func TestReasonLabels(t *testing.T) {
	cases := map[Reason]string{
		ReasonNoAnswer:      "No answer",
		ReasonOwnerNotThere: "Owner not there",
		ReasonNotInterested: "Not interested",
		ReasonNotApplicable: "N/A",
	}
	for r, want := range cases {
		if got := r.Label(); got != want {
			t.Fatalf("label for %s: expected %q, got %q", r, want, got)
		}
	}
}
