package audio

import (
	"math"
	"sort"
)

// Ordering selects the display order List returns clips in. This is
// presentation policy, not a law of the registry.
type Ordering string

const (
	// OrderInsertion keeps registration order.
	OrderInsertion Ordering = "insertion"
	// OrderNumeric sorts clips whose filenames start with digits by that
	// number; names without a numeric prefix take a sentinel rank and sort
	// after them, alphabetically.
	OrderNumeric Ordering = "numeric"
)

func (o Ordering) Valid() bool {
	switch o {
	case OrderInsertion, OrderNumeric:
		return true
	default:
		return false
	}
}

// numericSentinel ranks filenames without a leading number behind every
// numbered one.
const numericSentinel = math.MaxInt

func sortClips(clips []Clip, ordering Ordering) {
	if ordering != OrderNumeric {
		return // insertion order is how the slice already arrives
	}
	sort.SliceStable(clips, func(i, j int) bool {
		ri, rj := numericPrefix(clips[i].Filename), numericPrefix(clips[j].Filename)
		if ri != rj {
			return ri < rj
		}
		return clips[i].Filename < clips[j].Filename
	})
}

func numericPrefix(name string) int {
	n := 0
	seen := false
	for _, c := range name {
		if c < '0' || c > '9' {
			break
		}
		seen = true
		n = n*10 + int(c-'0')
	}
	if !seen {
		return numericSentinel
	}
	return n
}
