// Package solver implements the backtracking search over the source
// numbers. One Solve call explores every distinct expression tree, up
// to operand-order symmetry, that the operator rules admit, and reports
// each candidate whose distance to the target is no worse than the best
// distance seen so far in the run.
package solver

import (
	"context"
	"errors"

	"github.com/joatca/numbers-solver/pkg/numbers"
	"github.com/joatca/numbers-solver/pkg/numbers/operator"
	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
)

// ErrStop may be returned by a VisitFunc to end the search early.
// Solve swallows it and returns nil; any other visitor error aborts the
// search and is returned as-is.
var ErrStop = errors.New("stop the search")

// VisitFunc receives each reported Solution in emission order. The
// Solution is an immutable snapshot and may be retained.
type VisitFunc func(numbers.Solution) error

// Solver runs searches for one or more puzzles. It holds configuration
// only; all per-run state lives on the call stack of Solve, so a Solver
// may be reused, but a single Solve call has exactly one writer and
// must not be shared while running.
type Solver struct {
	operators []operator.Operator
	tracer    Tracer
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

// WithOperators replaces the operator set explored at every branch.
// The given order is the branch exploration order.
func WithOperators(ops ...operator.Operator) Option {
	return func(s *Solver) error {
		if len(ops) == 0 {
			return errors.New("at least one operator is required")
		}
		s.operators = ops
		return nil
	}
}

// WithTracer installs a Tracer observing every branch fan-out.
func WithTracer(t Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.operators == nil {
			s.operators = operator.All()
		}
		return nil
	},
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}

// Solve runs the full search for p, invoking visit for every reported
// candidate in emission order. Across one call the reported distances
// are non-increasing. Solve returns ctx.Err() if the context is
// cancelled mid-search, nil if the search ran to exhaustion or the
// visitor returned ErrStop, and the visitor's error otherwise.
//
// Solve assumes p carries at least two positive sources and a positive
// target; callers taking outside input should validate it with the
// puzzle package first.
func (s *Solver) Solve(ctx context.Context, p puzzle.Puzzle, visit VisitFunc) error {
	err := newSearch(s, p, visit).descend(ctx, len(p.Sources))
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
