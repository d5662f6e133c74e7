package solver

import (
	"fmt"
	"io"
	"math"
)

// SearchPosition describes the point of the search a Tracer is shown:
// the partial expression built so far, the count of values still
// eligible for combination, and the best distance reported so far.
type SearchPosition interface {
	Depth() int
	Remaining() int
	BestDistance() (int, bool)
}

type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	if best, ok := p.BestDistance(); ok {
		fmt.Fprintf(t.Writer, "depth=%d remaining=%d best=%d\n", p.Depth(), p.Remaining(), best)
		return
	}
	fmt.Fprintf(t.Writer, "depth=%d remaining=%d best=none\n", p.Depth(), p.Remaining())
}

type position struct {
	search    *search
	remaining int
}

func (p position) Depth() int {
	return len(p.search.steps)
}

func (p position) Remaining() int {
	return p.remaining
}

func (p position) BestDistance() (int, bool) {
	if p.search.best == math.MaxInt {
		return 0, false
	}
	return p.search.best, true
}
