package deal

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/joatca/numbers-solver/cmd/solve"
	"github.com/joatca/numbers-solver/pkg/numbers/puzzle"
)

func NewDealCommand() *cobra.Command {
	var opts solve.Options
	var large int
	var seed int64

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deals a random puzzle and solves it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			p, err := puzzle.Deal(rng, large)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			opts.Out = cmd.OutOrStdout()
			return solve.Solve(cmd.Context(), p, opts)
		},
	}
	cmd.Flags().IntVar(&large, "large", 2, "how many large tiles (0-4) to deal")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 means the current time")
	solve.AddOutputFlags(cmd, &opts)
	return cmd
}
