package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortsim/sortsim/sim"
	"github.com/sortsim/sortsim/sim/shuffle"
)

// shuffleCmd prints a Fisher–Yates swap plan
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print the Fisher–Yates swap plan for the ranks 1..n",
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("bars")
		seed, _ := cmd.Flags().GetInt64("seed")
		if err := printShufflePlan(cmd.OutOrStdout(), size, seed); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// printShufflePlan writes one "i j" line per swap, then the shuffled ranks.
func printShufflePlan(out io.Writer, size int, seed int64) error {
	if size < 0 {
		return fmt.Errorf("--bars must be >= 0, got %d", size)
	}
	values := make([]float64, size)
	for i := range values {
		values[i] = float64(i + 1)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	plan := shuffle.PrepareShuffle(values, rng.ForSubsystem(sim.SubsystemShuffle))
	logrus.Debugf("Planned %d swaps for %d values (seed=%d)", len(plan), size, seed)

	for _, sw := range plan {
		if _, err := fmt.Fprintf(out, "%d %d\n", sw.I, sw.J); err != nil {
			return err
		}
	}
	shuffle.Apply(values, plan)
	_, err := fmt.Fprintf(out, "result: %v\n", values)
	return err
}

func init() {
	def := sim.DefaultVisualizerConfig()
	shuffleCmd.Flags().Int("bars", def.BarCount, "Number of values to shuffle")
	shuffleCmd.Flags().Int64("seed", def.Seed, "Seed for the shuffle")
}
