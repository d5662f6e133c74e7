package solve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joatca/numbers-solver/pkg/numbers/collection"
	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
	"github.com/joatca/numbers-solver/pkg/numbers/stream"
)

func NewSolveCommand() *cobra.Command {
	var opts Options
	var sources []int
	var target int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Finds the best ways to combine the source numbers into the target",
		Long: `Finds the best ways to combine the source numbers into the target.
For instance:

numbers solve --sources 1,3,7,6,8,3 --target 250

Each source number and each intermediate result may be used at most
once, intermediate results must be non-negative integers, and division
must be exact. Not every source has to be used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzle.New(sources, target)
			if err != nil {
				return err
			}
			opts.Out = cmd.OutOrStdout()
			return Solve(cmd.Context(), p, opts)
		},
	}
	cmd.Flags().IntSliceVar(&sources, "sources", nil, "the six source numbers, e.g. 1,3,7,6,8,3")
	cmd.Flags().IntVar(&target, "target", 0, "the target, between 100 and 999")
	AddOutputFlags(cmd, &opts)
	_ = cmd.MarkFlagRequired("sources")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// Options control how a puzzle is solved and reported. They are shared
// with the deal sub-command.
type Options struct {
	Best    int
	JSON    bool
	Verbose bool
	Out     io.Writer
}

// AddOutputFlags registers the reporting flags shared by the solve and
// deal sub-commands.
func AddOutputFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().IntVar(&opts.Best, "best", collection.DefaultLimit, "how many of the best solutions to keep")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "emit solutions as JSON records")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "log run progress to stderr")
}

// Solve runs one search for p to completion and reports the retained
// solutions to opts.Out.
func Solve(ctx context.Context, p puzzle.Puzzle, opts Options) error {
	logger := zerolog.Nop()
	if opts.Verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	run, err := stream.Start(ctx, p, stream.WithLogger(logger))
	if err != nil {
		return err
	}
	defer run.Cancel()

	board := collection.NewBoard(opts.Best)
	if err := stream.Collect(run, board); err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(opts.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(board.Solutions())
	}
	if board.Len() == 0 {
		fmt.Fprintln(opts.Out, "no solutions found")
		return nil
	}
	for i, solution := range board.Solutions() {
		fmt.Fprintf(opts.Out, "%2d. %s (%s)\n", i+1, solution, away(solution.Distance))
	}
	return nil
}

func away(distance int) string {
	if distance == 0 {
		return "exact"
	}
	return fmt.Sprintf("%d away", distance)
}
