// Package puzzle validates puzzle input against the rules of the
// numbers game and deals random rule-conformant puzzles. The solver
// itself assumes validated input; every entry point that accepts a
// puzzle from the outside should go through Validate first.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// SourceCount is the number of source tiles in a standard game.
	SourceCount = 6
	// TargetMin and TargetMax bound the target of a standard game.
	TargetMin = 100
	TargetMax = 999
	// MaxLarge is the number of large tiles available to Deal.
	MaxLarge = 4
)

var (
	ErrSourceCount    = errors.New("puzzle must have exactly six source numbers")
	ErrSourceValue    = errors.New("source number not allowed by the game rules")
	ErrTargetRange    = errors.New("target must be between 100 and 999")
	ErrTargetIsSource = errors.New("target must not equal a source number")
)

// smallUses and largeUses cap how often each tile value may appear in
// one puzzle.
var (
	smallUses = 2
	largeSet  = map[int]struct{}{25: {}, 50: {}, 75: {}, 100: {}}
)

// Puzzle is one instance of the game: a fixed multiset of source
// numbers and the target to reach or approach.
type Puzzle struct {
	Sources []int
	Target  int
}

// New returns a validated Puzzle built from sources and target.
func New(sources []int, target int) (Puzzle, error) {
	p := Puzzle{Sources: sources, Target: target}
	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}
	return p, nil
}

// Validate checks the receiver against the game rules: exactly six
// sources drawn from {1..10 at most twice each, 25/50/75/100 at most
// once each}, a target in 100..999, and a target distinct from every
// source.
func (p Puzzle) Validate() error {
	if len(p.Sources) != SourceCount {
		return fmt.Errorf("%w: got %d", ErrSourceCount, len(p.Sources))
	}
	uses := make(map[int]int, len(p.Sources))
	for _, s := range p.Sources {
		uses[s]++
		if _, large := largeSet[s]; large {
			if uses[s] > 1 {
				return fmt.Errorf("%w: %d used more than once", ErrSourceValue, s)
			}
			continue
		}
		if s < 1 || s > 10 {
			return fmt.Errorf("%w: %d", ErrSourceValue, s)
		}
		if uses[s] > smallUses {
			return fmt.Errorf("%w: %d used more than twice", ErrSourceValue, s)
		}
	}
	if p.Target < TargetMin || p.Target > TargetMax {
		return fmt.Errorf("%w: got %d", ErrTargetRange, p.Target)
	}
	if uses[p.Target] > 0 {
		return fmt.Errorf("%w: %d", ErrTargetIsSource, p.Target)
	}
	return nil
}

// Deal returns a random rule-conformant puzzle with the requested
// number of large tiles (0..4). The remaining tiles are drawn without
// replacement from the small deck of 1..10, two of each.
func Deal(rng *rand.Rand, large int) (Puzzle, error) {
	if large < 0 || large > MaxLarge {
		return Puzzle{}, fmt.Errorf("large tile count must be between 0 and %d, got %d", MaxLarge, large)
	}
	larges := []int{25, 50, 75, 100}
	rng.Shuffle(len(larges), func(i, j int) { larges[i], larges[j] = larges[j], larges[i] })

	smalls := make([]int, 0, 20)
	for v := 1; v <= 10; v++ {
		smalls = append(smalls, v, v)
	}
	rng.Shuffle(len(smalls), func(i, j int) { smalls[i], smalls[j] = smalls[j], smalls[i] })

	sources := make([]int, 0, SourceCount)
	sources = append(sources, larges[:large]...)
	sources = append(sources, smalls[:SourceCount-large]...)

	for {
		target := TargetMin + rng.Intn(TargetMax-TargetMin+1)
		p, err := New(sources, target)
		if errors.Is(err, ErrTargetIsSource) {
			continue
		}
		return p, err
	}
}

// String implements fmt.Stringer and returns a human-readable message
// representing the receiver.
func (p Puzzle) String() string {
	parts := make([]string, len(p.Sources))
	for i, s := range p.Sources {
		parts[i] = strconv.Itoa(s)
	}
	return fmt.Sprintf("[%s] → %d", strings.Join(parts, " "), p.Target)
}
