package calllog

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrEmptyBusiness = errors.New("calllog: business name is required")
	ErrInvalidResult = errors.New("calllog: unknown result value")
	ErrInvalidReason = errors.New("calllog: unknown reason value")
)

// Log is the authoritative, ordered record of calls for one session.
//
// It is append-only. Insertion order is semantically meaningful: it defines
// the display order of exported rows. No Update/Delete methods are provided.
//
// Each session has one active operator, but the HTTP host serves requests
// concurrently, so access is still guarded by a mutex.

type Log struct {
	mu      sync.Mutex
	records []Record

	loc   *time.Location
	clock func() time.Time
}

// New returns an empty log stamping records in loc.
// A nil loc falls back to UTC.
func New(loc *time.Location) *Log {
	if loc == nil {
		loc = time.UTC
	}
	return &Log{loc: loc, clock: time.Now}
}

// Append validates the submission, stamps it with the current time in the
// log's timezone and inserts it at the end. No existing entry is mutated.
func (l *Log) Append(business, notes string, result Result, reason Reason) (Record, error) {
	if business == "" {
		return Record{}, ErrEmptyBusiness
	}
	if !result.Valid() {
		return Record{}, ErrInvalidResult
	}
	if !reason.Valid() {
		return Record{}, ErrInvalidReason
	}

	rec := Record{
		Timestamp: l.clock().In(l.loc),
		Business:  business,
		Notes:     notes,
		Result:    result,
		Reason:    reason,
	}

	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
	return rec, nil
}

// Snapshot returns a point-in-time copy of the log in insertion order.
// The copy reflects every append that completed before the call; callers
// may hold it for as long as they like without blocking writers.
func (l *Log) Snapshot() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports the number of logged calls.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Location returns the timezone records are stamped in.
func (l *Log) Location() *time.Location { return l.loc }

// SetClock overrides the time source. Intended for tests.
func (l *Log) SetClock(clock func() time.Time) { l.clock = clock }
