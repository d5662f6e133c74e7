package numbers

import (
	"fmt"
	"strings"
)

// Symbol identifies one of the four arithmetic operators understood by
// this package.
type Symbol string

const (
	OpAdd Symbol = "+"
	OpSub Symbol = "-"
	OpMul Symbol = "×"
	OpDiv Symbol = "÷"
)

// Label values uniquely identify particular Values within the input and
// output of a single search run. The source numbers receive labels
// 0..N-1 in input order; every value produced by an operation receives
// the next unused label. Labels are never reused within one run.
type Label int

// Value is an integer magnitude paired with the Label assigned at its
// creation. Values are immutable; operators always construct a new
// Value.
type Value struct {
	Magnitude int   `json:"value"`
	Label     Label `json:"label"`
}

// Step records one applied operation: Result = Left <Op> Right.
type Step struct {
	Op     Symbol `json:"operator"`
	Left   Value  `json:"operand1"`
	Right  Value  `json:"operand2"`
	Result Value  `json:"result"`
}

// Solution is an immutable snapshot of a step sequence together with
// its derived ranking metrics. Solutions are ordered by
// (Distance, len(Steps), Tiebreak), each ascending.
type Solution struct {
	Steps    []Step `json:"steps"`
	Result   int    `json:"resultValue"`
	Distance int    `json:"distance"`
	Tiebreak int    `json:"-"`
}

// NewSolution builds a Solution from a copy of steps, which must be
// non-empty. The caller's slice may keep mutating after the call.
// Tiebreak accumulates the magnitude of every step's first operand,
// preferring solutions that route through smaller numbers when
// otherwise equivalent.
func NewSolution(steps []Step, target int) Solution {
	snapshot := make([]Step, len(steps))
	copy(snapshot, steps)
	result := snapshot[len(snapshot)-1].Result.Magnitude
	tiebreak := 0
	for _, step := range snapshot {
		tiebreak += step.Left.Magnitude
	}
	return Solution{
		Steps:    snapshot,
		Result:   result,
		Distance: Distance(result, target),
		Tiebreak: tiebreak,
	}
}

// Distance is the absolute difference between a candidate result and
// the target.
func Distance(result, target int) int {
	if result < target {
		return target - result
	}
	return result - target
}

// Compare returns a negative number if s ranks strictly better than
// other, zero if they rank equally, and a positive number otherwise.
func (s Solution) Compare(other Solution) int {
	if s.Distance != other.Distance {
		return s.Distance - other.Distance
	}
	if len(s.Steps) != len(other.Steps) {
		return len(s.Steps) - len(other.Steps)
	}
	return s.Tiebreak - other.Tiebreak
}

// Less reports whether s ranks strictly better than other.
func (s Solution) Less(other Solution) bool {
	return s.Compare(other) < 0
}

// String implements fmt.Stringer and returns a human-readable message
// representing the receiver.
func (s Step) String() string {
	return fmt.Sprintf("%d %s %d = %d", s.Left.Magnitude, s.Op, s.Right.Magnitude, s.Result.Magnitude)
}

// String implements fmt.Stringer and returns the step sequence joined
// with semicolons.
func (s Solution) String() string {
	parts := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		parts[i] = step.String()
	}
	return strings.Join(parts, "; ")
}
