// Package stream runs a search on a background goroutine and forwards
// its solutions, in emission order, over a channel to a foreground
// consumer. The sequence ends with a single terminal event carrying the
// run's outcome, after which the channel is closed.
//
// Runs do not coexist: before starting a search for a new or edited
// puzzle, cancel the previous run. Solutions already delivered by a
// cancelled run remain valid.
package stream

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/joatca/numbers-solver/pkg/numbers"
	"github.com/joatca/numbers-solver/pkg/numbers/collection"
	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
	"github.com/joatca/numbers-solver/pkg/numbers/solver"
)

// RunID uniquely identifies one run, for logs and diagnostics.
type RunID string

// Event is one item on a run's result channel. Done marks the terminal
// event: it is delivered exactly once, after the last solution, and Err
// is meaningful only on it. Err is nil when the search ran to
// exhaustion and the context error when the run was cancelled.
type Event struct {
	Solution numbers.Solution
	Done     bool
	Err      error
}

// Run is one background search. The consumer owns the receiving end:
// Results must be drained until the channel closes, also after
// cancelling, or the producer goroutine cannot finish.
type Run struct {
	id      RunID
	solver  *solver.Solver
	logger  zerolog.Logger
	results chan Event
	cancel  context.CancelFunc
}

type Option func(r *Run) error

// WithSolver replaces the solver used for this run.
func WithSolver(s *solver.Solver) Option {
	return func(r *Run) error {
		r.solver = s
		return nil
	}
}

// WithLogger installs the logger used at run start and finish. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Run) error {
		r.logger = logger
		return nil
	}
}

var defaults = []Option{
	func(r *Run) error {
		if r.solver == nil {
			var err error
			r.solver, err = solver.New()
			return err
		}
		return nil
	},
}

// Start launches the search for p in the background and returns the
// running Run. Cancelling ctx, or calling Cancel, tears the run down;
// the terminal event then reports the context error.
func Start(ctx context.Context, p puzzle.Puzzle, options ...Option) (*Run, error) {
	r := &Run{
		id:     RunID(uuid.NewString()),
		logger: zerolog.Nop(),
	}
	for _, option := range append(options, defaults...) {
		if err := option(r); err != nil {
			return nil, err
		}
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.results = make(chan Event)
	go r.produce(ctx, p)
	return r, nil
}

func (r *Run) ID() RunID {
	return r.id
}

// Results returns the ordered event channel of this run.
func (r *Run) Results() <-chan Event {
	return r.results
}

// Cancel tears the run down. It is safe to call more than once.
func (r *Run) Cancel() {
	r.cancel()
}

func (r *Run) produce(ctx context.Context, p puzzle.Puzzle) {
	start := time.Now()
	r.logger.Debug().Str("run", string(r.id)).Stringer("puzzle", p).Msg("search started")

	reported := 0
	err := r.solver.Solve(ctx, p, func(s numbers.Solution) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r.results <- Event{Solution: s}:
			reported++
			return nil
		}
	})

	r.logger.Debug().
		Str("run", string(r.id)).
		Int("reported", reported).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("search finished")

	r.results <- Event{Done: true, Err: err}
	close(r.results)
}

// Collect drains run into board until the terminal event. A completed
// run closes the board; a cancelled run leaves it open, with everything
// delivered so far still valid, and Collect returns the context error.
func Collect(run *Run, board *collection.Board) error {
	for ev := range run.Results() {
		if ev.Done {
			if ev.Err == nil {
				board.Close()
			}
			return ev.Err
		}
		board.Add(ev.Solution)
	}
	return nil
}
