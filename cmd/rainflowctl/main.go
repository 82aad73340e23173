// Command rainflowctl demonstrates the rainflow engine end to end: it
// generates a synthetic load-time signal in memory, feeds it through a
// Context, finalizes the residue, and prints the resulting histogram
// and damage summary. It performs no file I/O — everything it reports
// comes from the in-process run.
package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rainflow"
)

type opts struct {
	samples   int
	amplitude float64
	mean      float64
	classes   int
	width     float64
	hyst      float64
	sx, nx, k float64
	method    string
	residual  string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "rainflowctl",
		Short: "Streaming rainflow cycle counting demo",
		Long: `rainflowctl generates a deterministic synthetic load signal (a sum of sines),
feeds it through a rainflow.Context, and prints the closed-cycle count,
rainflow matrix occupancy and cumulative fatigue damage against a
Wöhler S-N curve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o)
		},
	}

	root.Flags().IntVarP(&o.samples, "samples", "n", 2000, "number of synthetic samples to generate")
	root.Flags().Float64Var(&o.amplitude, "amplitude", 50, "synthetic signal amplitude")
	root.Flags().Float64Var(&o.mean, "mean", 0, "synthetic signal mean offset")
	root.Flags().IntVar(&o.classes, "classes", 64, "number of quantization classes")
	root.Flags().Float64Var(&o.width, "width", 3, "class width")
	root.Flags().Float64Var(&o.hyst, "hysteresis", 1, "hysteresis band")
	root.Flags().Float64Var(&o.sx, "sx", 100, "Wöhler reference amplitude Sx")
	root.Flags().Float64Var(&o.nx, "nx", 1e5, "Wöhler reference life Nx")
	root.Flags().Float64Var(&o.k, "k", -5, "Wöhler slope k")
	root.Flags().StringVar(&o.method, "method", "fourpoint", "cycle counting method: fourpoint or hcm")
	root.Flags().StringVar(&o.residual, "residual", "rpdin45667", "residue finalization policy")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(o opts) error {
	method, err := parseMethod(o.method)
	if err != nil {
		return err
	}
	policy, err := parseResidual(o.residual)
	if err != nil {
		return err
	}

	ctx, err := rainflow.New(o.classes, o.width, -float64(o.classes)*o.width/2, o.hyst,
		rainflow.FlagRFM|rainflow.FlagDamage|rainflow.FlagRP|rainflow.FlagLCUp|rainflow.FlagLCDown,
		rainflow.WithMethod(method))
	if err != nil {
		return fmt.Errorf("new context: %w", err)
	}
	if err := ctx.WlInitElementary(o.sx, o.nx, o.k); err != nil {
		return fmt.Errorf("wl init: %w", err)
	}

	if err := ctx.Feed(syntheticSignal(o.samples, o.amplitude, o.mean)); err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	if err := ctx.Finalize(policy); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}

	return printSummary(ctx)
}

func parseMethod(s string) (rainflow.CountMethod, error) {
	switch s {
	case "fourpoint":
		return rainflow.MethodFourPoint, nil
	case "hcm":
		return rainflow.MethodHCM, nil
	default:
		return 0, fmt.Errorf("unknown method %q", s)
	}
}

func parseResidual(s string) (rainflow.ResidualMethod, error) {
	switch s {
	case "none":
		return rainflow.ResidualNone, nil
	case "discard":
		return rainflow.ResidualDiscard, nil
	case "half":
		return rainflow.ResidualHalfCycles, nil
	case "full":
		return rainflow.ResidualFullCycles, nil
	case "clormannseeger":
		return rainflow.ResidualClormannSeeger, nil
	case "repeated":
		return rainflow.ResidualRepeated, nil
	case "rpdin45667":
		return rainflow.ResidualRPDIN45667, nil
	default:
		return 0, fmt.Errorf("unknown residual policy %q", s)
	}
}

// syntheticSignal builds a deterministic sinusoid-with-harmonics signal
// so the demo produces a repeatable, non-trivial mix of turning points
// without reading any external data.
func syntheticSignal(n int, amplitude, mean float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i)
		out[i] = mean + amplitude*math.Sin(t/17) + amplitude*0.4*math.Sin(t/3.7) + amplitude*0.15*math.Sin(t/1.3)
	}
	return out
}

func printSummary(ctx *rainflow.Context) error {
	stats := ctx.Stats()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "state:\t%d\n", stats.State)
	fmt.Fprintf(tw, "stream length:\t%d\n", stats.StreamLen)
	fmt.Fprintf(tw, "closed cycles (feed-time):\t%d\n", stats.ClosedCount)
	fmt.Fprintf(tw, "total damage:\t%.6e\n", stats.Damage)

	nonZero, err := ctx.RfmNonZeros()
	if err != nil {
		return err
	}
	sum, err := ctx.RfmSum()
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "rainflow matrix non-zero cells:\t%d\n", nonZero)
	fmt.Fprintf(tw, "rainflow matrix total count:\t%d\n", sum)
	return tw.Flush()
}
