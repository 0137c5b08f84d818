package calllog

import "time"

// Record is one logged outcome of a single outbound call attempt.
//
// Invariants:
// - Records are never updated or deleted; the log is append-only.
// - Business is non-empty at insertion time (validated by Append).
// - Timestamp is stamped in the session's configured timezone.
//
// Duplicate business names are valid; the same business may be called
// more than once in a session.

type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Business  string    `json:"business"`
	Notes     string    `json:"notes,omitempty"`
	Result    Result    `json:"result"`
	Reason    Reason    `json:"reason"`
}

// Result is the binary outcome classification of a call.
type Result string

const (
	ResultInterested Result = "interested"
	ResultRejected   Result = "rejected"
)

func (r Result) Valid() bool {
	switch r {
	case ResultInterested, ResultRejected:
		return true
	default:
		return false
	}
}

// Label returns the display form used in reports and exports.
func (r Result) Label() string {
	switch r {
	case ResultInterested:
		return "Interested"
	case ResultRejected:
		return "Rejected"
	default:
		return string(r)
	}
}

// Reason is the finer-grained explanation code attached to a call outcome.
type Reason string

const (
	ReasonNoAnswer      Reason = "no_answer"
	ReasonOwnerNotThere Reason = "owner_not_there"
	ReasonNotInterested Reason = "not_interested"
	ReasonNotApplicable Reason = "not_applicable"
)

// Reasons lists every reason value in declaration order. Renderers use this
// to emit reason breakdowns deterministically; the order carries no semantic
// meaning.
func Reasons() []Reason {
	return []Reason{ReasonNoAnswer, ReasonOwnerNotThere, ReasonNotInterested, ReasonNotApplicable}
}

func (r Reason) Valid() bool {
	switch r {
	case ReasonNoAnswer, ReasonOwnerNotThere, ReasonNotInterested, ReasonNotApplicable:
		return true
	default:
		return false
	}
}

// Label returns the display form used in reports and exports.
func (r Reason) Label() string {
	switch r {
	case ReasonNoAnswer:
		return "No answer"
	case ReasonOwnerNotThere:
		return "Owner not there"
	case ReasonNotInterested:
		return "Not interested"
	case ReasonNotApplicable:
		return "N/A"
	default:
		return string(r)
	}
}
