package stats

import (
	"time"

	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
)

// Summary is the derived statistics view over one call log snapshot.
// It is recomputed on demand and never stored; incremental counters are
// deliberately avoided to keep the numbers drift-free.

type Summary struct {
	TotalCalls int `json:"total_calls"`

	// InterestedPct and RejectedPct are independent tallies over TotalCalls.
	// They are not required to sum to 100 if a result value outside the two
	// known ones ever appears in the log; unknown values are excluded from
	// both.
	InterestedPct float64 `json:"interested_pct"`
	RejectedPct   float64 `json:"rejected_pct"`

	// ReasonPcts holds the percentage of TotalCalls for every reason that
	// appears at least once in the snapshot. The map is unordered; renderers
	// impose their own deterministic order.
	ReasonPcts map[calllog.Reason]float64 `json:"reason_pcts"`

	// Duration is the elapsed wall time between the earliest and latest
	// record timestamps (extrema, not positional first/last).
	Duration time.Duration `json:"duration_ns"`

	// CallsPerHour falls back to TotalCalls when Duration is zero. That is
	// the documented single-record/same-instant quirk, not a true rate.
	CallsPerHour float64 `json:"calls_per_hour"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DurationParts returns the summary duration as floored whole hours and the
// floored remainder in minutes. Truncation, not rounding, is the contract.
func (s *Summary) DurationParts() (hours, minutes int) {
	total := int(s.Duration.Minutes())
	return total / 60, total % 60
}
