package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
)

// ErrBadTimestamp aborts a computation whose snapshot holds a record without
// a usable timestamp. Partial statistics would be misleading, so the whole
// snapshot is rejected rather than the offending record dropped.
var ErrBadTimestamp = errors.New("stats: record has no usable timestamp")

// TimestampLayout is the boundary-timestamp format used in summaries and
// exports, labeled with the timezone abbreviation.
const TimestampLayout = "2006-01-02 15:04:05 MST"

// Compute derives a Summary from a call log snapshot, interpreting every
// timestamp in loc (UTC when nil).
//
// An empty snapshot yields (nil, nil): there is nothing to summarize, and
// callers must not attempt further computation on the absent result.
func Compute(snapshot []calllog.Record, loc *time.Location) (*Summary, error) {
	if len(snapshot) == 0 {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	out := &Summary{
		TotalCalls: len(snapshot),
		ReasonPcts: make(map[calllog.Reason]float64),
	}

	var interested, rejected int
	reasonCounts := make(map[calllog.Reason]int)
	var earliest, latest time.Time

	for i, rec := range snapshot {
		if rec.Timestamp.IsZero() {
			return nil, fmt.Errorf("%w: record %d (%s)", ErrBadTimestamp, i, rec.Business)
		}
		ts := rec.Timestamp.In(loc)

		switch rec.Result {
		case calllog.ResultInterested:
			interested++
		case calllog.ResultRejected:
			rejected++
		default:
			// unknown result values are excluded from both tallies
		}
		reasonCounts[rec.Reason]++

		if earliest.IsZero() || ts.Before(earliest) {
			earliest = ts
		}
		if latest.IsZero() || ts.After(latest) {
			latest = ts
		}
	}

	total := float64(out.TotalCalls)
	out.InterestedPct = 100 * float64(interested) / total
	out.RejectedPct = 100 * float64(rejected) / total
	for reason, n := range reasonCounts {
		out.ReasonPcts[reason] = 100 * float64(n) / total
	}

	out.Duration = latest.Sub(earliest)
	if hours := out.Duration.Hours(); hours > 0 {
		out.CallsPerHour = total / hours
	} else {
		// zero-duration fallback: the count doubles as the "rate"
		out.CallsPerHour = total
	}

	out.StartTime = earliest.Format(TimestampLayout)
	out.EndTime = latest.Format(TimestampLayout)
	return out, nil
}

// FormatPct renders a percentage with exactly one fractional digit, rounding
// half-up. Every renderer must use this so numbers agree across formats.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f", roundHalfUp1(v))
}

// FormatRate renders calls-per-hour with the same one-decimal convention as
// percentages.
func FormatRate(v float64) string {
	return fmt.Sprintf("%.1f", roundHalfUp1(v))
}

func roundHalfUp1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
