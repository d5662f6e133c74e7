package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
)

func TestValidate(t *testing.T) {
	type tc struct {
		Name    string
		Sources []int
		Target  int
		Err     error
	}

	for _, tt := range []tc{
		{
			Name:    "classic mix",
			Sources: []int{1, 3, 7, 6, 8, 3},
			Target:  250,
		},
		{
			Name:    "all large tiles",
			Sources: []int{25, 50, 75, 100, 4, 4},
			Target:  937,
		},
		{
			Name:    "too few sources",
			Sources: []int{1, 2, 3, 4, 5},
			Target:  250,
			Err:     puzzle.ErrSourceCount,
		},
		{
			Name:    "too many sources",
			Sources: []int{1, 2, 3, 4, 5, 6, 7},
			Target:  250,
			Err:     puzzle.ErrSourceCount,
		},
		{
			Name:    "source outside the tile set",
			Sources: []int{1, 2, 3, 4, 5, 11},
			Target:  250,
			Err:     puzzle.ErrSourceValue,
		},
		{
			Name:    "small tile used three times",
			Sources: []int{7, 7, 7, 1, 2, 3},
			Target:  250,
			Err:     puzzle.ErrSourceValue,
		},
		{
			Name:    "large tile used twice",
			Sources: []int{50, 50, 1, 2, 3, 4},
			Target:  250,
			Err:     puzzle.ErrSourceValue,
		},
		{
			Name:    "target too small",
			Sources: []int{1, 3, 7, 6, 8, 3},
			Target:  99,
			Err:     puzzle.ErrTargetRange,
		},
		{
			Name:    "target too large",
			Sources: []int{1, 3, 7, 6, 8, 3},
			Target:  1000,
			Err:     puzzle.ErrTargetRange,
		},
		{
			Name:    "target equals a source",
			Sources: []int{100, 50, 1, 2, 3, 4},
			Target:  100,
			Err:     puzzle.ErrTargetIsSource,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := puzzle.New(tt.Sources, tt.Target)
			if tt.Err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.Err)
			}
		})
	}
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for large := 0; large <= puzzle.MaxLarge; large++ {
		for i := 0; i < 50; i++ {
			p, err := puzzle.Deal(rng, large)
			require.NoError(t, err)
			assert.NoError(t, p.Validate())

			larges := 0
			for _, s := range p.Sources {
				if s >= 25 {
					larges++
				}
			}
			assert.Equal(t, large, larges)
		}
	}
}

func TestDealRejectsBadLargeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := puzzle.Deal(rng, -1)
	assert.Error(t, err)
	_, err = puzzle.Deal(rng, puzzle.MaxLarge+1)
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	p, err := puzzle.New([]int{1, 3, 7, 6, 8, 3}, 250)
	require.NoError(t, err)
	assert.Equal(t, "[1 3 7 6 8 3] → 250", p.String())
}
