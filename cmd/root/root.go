package root

import (
	"github.com/spf13/cobra"

	"github.com/joatca/numbers-solver/cmd/deal"

	"github.com/joatca/numbers-solver/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numbers",
		Short: "Numbers is a solver for the numbers round of the countdown game",
		Long: `A solver for the numbers round of the countdown game, written in Go.
Given six source numbers and a target it finds the best ways to reach,
or get as close as possible to, the target using the four basic
arithmetic operators.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(deal.NewDealCommand())

	return rootCmd
}
