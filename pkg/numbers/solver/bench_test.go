package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/joatca/numbers-solver/pkg/numbers"
	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
)

var BenchmarkInput = func() []puzzle.Puzzle {
	const (
		count = 16
		seed  = 9
		large = 2
	)

	random := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: Use of weak random number generator (math/rand instead of crypto/rand) is ignored as this is not security-sensitive.

	puzzles := make([]puzzle.Puzzle, 0, count)
	for i := 0; i < count; i++ {
		p, err := puzzle.Deal(random, large)
		if err != nil {
			panic(err)
		}
		puzzles = append(puzzles, p)
	}
	return puzzles
}()

func BenchmarkSolve(b *testing.B) {
	s, err := New()
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		p := BenchmarkInput[i%len(BenchmarkInput)]
		if err := s.Solve(context.Background(), p, func(numbers.Solution) error {
			return nil
		}); err != nil {
			b.Fatal(err)
		}
	}
}
