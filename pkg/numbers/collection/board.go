// Package collection maintains the bounded, ordered set of the best
// solutions seen so far in one run. It is the consumer-side end of the
// solution stream: solutions keep arriving in emission order while the
// board stays sorted and never grows past its limit.
package collection

import (
	"sort"

	"github.com/joatca/numbers-solver/pkg/numbers"
)

// DefaultLimit is the board size used when no explicit limit is given.
const DefaultLimit = 20

// Board retains at most limit Solutions, sorted ascending by
// (distance, step count, tiebreak). One Board consumes the stream of
// exactly one run; it has a single writer and is not safe for
// concurrent use.
type Board struct {
	limit     int
	solutions []numbers.Solution
	closed    bool
}

func NewBoard(limit int) *Board {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Board{
		limit:     limit,
		solutions: make([]numbers.Solution, 0, limit),
	}
}

// Add merges s into the board and reports whether it was retained.
// Within one run the stream's distances are non-increasing, so a
// strictly better distance dominates everything already retained and
// the board is cleared before inserting.
func (b *Board) Add(s numbers.Solution) bool {
	if b.closed {
		return false
	}
	if len(b.solutions) > 0 && s.Distance < b.solutions[0].Distance {
		b.solutions = b.solutions[:0]
	}
	at := sort.Search(len(b.solutions), func(i int) bool {
		return s.Compare(b.solutions[i]) < 0
	})
	if at >= b.limit {
		return false
	}
	b.solutions = append(b.solutions, numbers.Solution{})
	copy(b.solutions[at+1:], b.solutions[at:])
	b.solutions[at] = s
	if len(b.solutions) > b.limit {
		b.solutions = b.solutions[:b.limit]
	}
	return true
}

// Close marks the run complete. Further adds are rejected.
func (b *Board) Close() {
	b.closed = true
}

// Closed reports whether the run that fed this board has ended.
func (b *Board) Closed() bool {
	return b.closed
}

func (b *Board) Len() int {
	return len(b.solutions)
}

// Best returns the top-ranked solution, if any.
func (b *Board) Best() (numbers.Solution, bool) {
	if len(b.solutions) == 0 {
		return numbers.Solution{}, false
	}
	return b.solutions[0], true
}

// Solutions returns a copy of the retained solutions in rank order.
func (b *Board) Solutions() []numbers.Solution {
	out := make([]numbers.Solution, len(b.solutions))
	copy(out, b.solutions)
	return out
}
