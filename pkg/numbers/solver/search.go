package solver

import (
	"context"
	"math"

	"github.com/joatca/numbers-solver/pkg/numbers"
	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
)

// search carries the mutable state of one run. It has exactly one
// writer for its whole lifetime: the recursion below. Every mutation a
// recursion level makes is undone before that level returns, so after
// any call the slots, availability flags, step stack and label counter
// are exactly as they were before it.
type search struct {
	target    int
	slots     []numbers.Value
	available []bool
	steps     []numbers.Step
	nextLabel numbers.Label
	best      int

	solver *Solver
	visit  VisitFunc
}

func newSearch(s *Solver, p puzzle.Puzzle, visit VisitFunc) *search {
	slots := make([]numbers.Value, len(p.Sources))
	available := make([]bool, len(p.Sources))
	for i, source := range p.Sources {
		slots[i] = numbers.Value{Magnitude: source, Label: numbers.Label(i)}
		available[i] = true
	}
	return &search{
		target:    p.Target,
		slots:     slots,
		available: available,
		steps:     make([]numbers.Step, 0, len(p.Sources)-1),
		nextLabel: numbers.Label(len(p.Sources)),
		best:      math.MaxInt,
		solver:    s,
		visit:     visit,
	}
}

// descend is one level of the recursion. remaining counts the values
// still eligible for further combination.
func (s *search) descend(ctx context.Context, remaining int) error {
	// The current partial expression is itself a candidate: the rules
	// permit not using every source number.
	if len(s.steps) > 0 {
		result := s.steps[len(s.steps)-1].Result
		distance := numbers.Distance(result.Magnitude, s.target)
		if distance <= s.best {
			if err := s.visit(numbers.NewSolution(s.steps, s.target)); err != nil {
				return err
			}
			if distance < s.best {
				s.best = distance
			}
		}
	}

	if remaining < 2 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.solver.tracer.Trace(position{search: s, remaining: remaining})

	for i := range s.slots {
		if !s.available[i] {
			continue
		}
		for j := range s.slots {
			if j == i || !s.available[j] {
				continue
			}
			if err := s.combine(ctx, i, j, remaining); err != nil {
				return err
			}
		}
	}
	return nil
}

// combine consumes slot j, tries every operator on (slots[i], slots[j])
// and recurses on each success with the result in slot i. All state is
// restored before it returns, error or not.
func (s *search) combine(ctx context.Context, i, j, remaining int) error {
	left, right := s.slots[i], s.slots[j]
	s.available[j] = false
	label := s.nextLabel
	s.nextLabel++

	var err error
	for _, op := range s.solver.operators {
		result, ok := op.Apply(left, right, label)
		if !ok {
			continue
		}
		s.steps = append(s.steps, numbers.Step{Op: op.Symbol(), Left: left, Right: right, Result: result})
		s.slots[i] = result
		err = s.descend(ctx, remaining-1)
		s.slots[i] = left
		s.steps = s.steps[:len(s.steps)-1]
		if err != nil {
			break
		}
	}

	s.nextLabel = label
	s.available[j] = true
	return err
}
