package collection_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joatca/numbers-solver/pkg/numbers"
	"github.com/joatca/numbers-solver/pkg/numbers/collection"
)

// solution fabricates a ranked solution without running a search; the
// board only looks at the ordering key.
func solution(distance, steps, tiebreak int) numbers.Solution {
	s := numbers.Solution{
		Distance: distance,
		Tiebreak: tiebreak,
		Steps:    make([]numbers.Step, steps),
	}
	return s
}

func sorted(solutions []numbers.Solution) bool {
	return sort.SliceIsSorted(solutions, func(i, j int) bool {
		return solutions[i].Less(solutions[j])
	})
}

func TestAddKeepsOrderAndBound(t *testing.T) {
	board := collection.NewBoard(3)
	for _, s := range []numbers.Solution{
		solution(10, 3, 9),
		solution(10, 2, 4),
		solution(10, 2, 2),
		solution(10, 5, 1),
		solution(10, 1, 7),
	} {
		board.Add(s)
		assert.LessOrEqual(t, board.Len(), 3)
		assert.True(t, sorted(board.Solutions()))
	}

	retained := board.Solutions()
	require.Len(t, retained, 3)
	assert.Equal(t, solution(10, 1, 7), retained[0])
	assert.Equal(t, solution(10, 2, 2), retained[1])
	assert.Equal(t, solution(10, 2, 4), retained[2])
}

func TestAddClearsOnStrictlyBetterDistance(t *testing.T) {
	board := collection.NewBoard(10)
	assert.True(t, board.Add(solution(50, 1, 1)))
	assert.True(t, board.Add(solution(50, 2, 1)))
	assert.True(t, board.Add(solution(7, 3, 1)))

	retained := board.Solutions()
	require.Len(t, retained, 1)
	assert.Equal(t, 7, retained[0].Distance)
}

func TestAddRejectsBeyondBound(t *testing.T) {
	board := collection.NewBoard(2)
	assert.True(t, board.Add(solution(5, 1, 1)))
	assert.True(t, board.Add(solution(5, 1, 2)))
	// ranks below both retained entries
	assert.False(t, board.Add(solution(5, 1, 3)))
	// ranks above the tail, displacing it
	assert.True(t, board.Add(solution(5, 1, 0)))

	retained := board.Solutions()
	require.Len(t, retained, 2)
	assert.Equal(t, 0, retained[0].Tiebreak)
	assert.Equal(t, 1, retained[1].Tiebreak)
}

func TestBest(t *testing.T) {
	board := collection.NewBoard(5)
	_, ok := board.Best()
	assert.False(t, ok)

	board.Add(solution(9, 2, 1))
	board.Add(solution(3, 4, 1))
	top, ok := board.Best()
	require.True(t, ok)
	assert.Equal(t, 3, top.Distance)
}

func TestClose(t *testing.T) {
	board := collection.NewBoard(5)
	assert.True(t, board.Add(solution(9, 2, 1)))
	assert.False(t, board.Closed())

	board.Close()
	assert.True(t, board.Closed())
	assert.False(t, board.Add(solution(1, 1, 1)))
	assert.Equal(t, 1, board.Len())
}

func TestDefaultLimit(t *testing.T) {
	board := collection.NewBoard(0)
	for i := 0; i < collection.DefaultLimit*2; i++ {
		board.Add(solution(5, 1, i))
	}
	assert.Equal(t, collection.DefaultLimit, board.Len())
}

func TestSolutionsIsACopy(t *testing.T) {
	board := collection.NewBoard(5)
	board.Add(solution(9, 2, 1))
	retained := board.Solutions()
	retained[0] = solution(1, 1, 1)
	top, ok := board.Best()
	require.True(t, ok)
	assert.Equal(t, 9, top.Distance)
}
