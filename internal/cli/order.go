package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/engine"
	"github.com/danieljhkim/showorder/internal/solver"
)

var (
	orderBlocks     int
	orderMaxChanges int
	orderTimeout    time.Duration
	orderWorkers    int
	orderSeed       uint64
	orderFirst      []string
	orderLast       []string
	orderStarters   []string
	orderNotFirst   []string
	orderNoSmalls   bool
	orderNoBigs     bool
	orderFormat     string
	orderOutput     string
)

var orderCmd = &cobra.Command{
	Use:   "order <show-file>",
	Short: "Find a running order for a show",
	Long: `Find the best running order for the show described in <show-file>.

Options come from the settings file, then from the preferences block of the
show file, then from flags; later sources win. The search stops at the
timeout and reports the best order found so far.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		doc, err := eng.LoadDocument(args[0])
		if err != nil {
			return err
		}
		req, err := eng.NewOrderRequest(doc)
		if err != nil {
			return err
		}
		applyOrderFlags(cmd.Flags(), req)

		format := eng.Settings().Output
		if jsonOutput {
			format = config.FormatJSON
		}
		if cmd.Flags().Changed("format") {
			format = orderFormat
		}

		r := newReport(cmd)
		result, err := eng.Order(cmd.Context(), req)
		if err != nil {
			if errors.Is(err, engine.ErrInfeasible) && result != nil {
				printInfeasible(r, result)
			}
			return err
		}
		if result.Status == solver.StatusTimedOut {
			r.warn("No running order found within %s", req.Timeout)
			return fmt.Errorf("search timed out after %s; raise --timeout or relax a hard rule", req.Timeout)
		}

		data, err := render(format, result)
		if err != nil {
			return err
		}

		if orderOutput != "" {
			if err := eng.WriteOutput(orderOutput, data); err != nil {
				return err
			}
			r.success("Wrote running order to %s", orderOutput)
			return nil
		}

		if format != config.FormatText {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		r.section("Running Order")
		r.order(result.Order.Lines(), engine.BlockSeparator)
		printSummary(r, result)
		return nil
	},
}

func init() {
	f := orderCmd.Flags()
	f.IntVarP(&orderBlocks, "blocks", "b", 0, "Number of blocks")
	f.IntVar(&orderMaxChanges, "max-changes", 0, "Maximum quick changes per actor")
	f.DurationVarP(&orderTimeout, "timeout", "t", 0, "Search time budget")
	f.IntVarP(&orderWorkers, "workers", "w", 0, "Number of parallel search workers")
	f.Uint64Var(&orderSeed, "seed", 0, "Random seed for a repeatable search (0 picks one)")
	f.StringSliceVar(&orderFirst, "first", nil, "Items that may open the show")
	f.StringSliceVar(&orderLast, "last", nil, "Items that may close the show")
	f.StringSliceVar(&orderStarters, "block-starters", nil, "Items that should open a block")
	f.StringSliceVar(&orderNotFirst, "not-in-first-block", nil, "Items to keep out of the first block")
	f.BoolVar(&orderNoSmalls, "no-adjacent-smalls", false, "Forbid adjacent small pieces")
	f.BoolVar(&orderNoBigs, "no-adjacent-bigs", false, "Forbid adjacent big pieces")
	f.StringVarP(&orderFormat, "format", "f", config.FormatText, "Output format: text, json or yaml")
	f.StringVarP(&orderOutput, "output", "o", "", "Write the running order to a file")
}

// applyOrderFlags overrides the request with every flag set on the command
// line.
func applyOrderFlags(flags *pflag.FlagSet, req *engine.OrderRequest) {
	p := &req.Preferences
	if flags.Changed("blocks") {
		p.NumBlocks = orderBlocks
	}
	if flags.Changed("max-changes") {
		p.MaxChangesPerActor = orderMaxChanges
	}
	if flags.Changed("timeout") {
		req.Timeout = orderTimeout
	}
	if flags.Changed("workers") {
		req.Workers = orderWorkers
	}
	if flags.Changed("seed") {
		req.Seed = orderSeed
	}
	if flags.Changed("first") {
		p.DesiredFirst = orderFirst
	}
	if flags.Changed("last") {
		p.DesiredLast = orderLast
	}
	if flags.Changed("block-starters") {
		p.BlockStarters = orderStarters
	}
	if flags.Changed("not-in-first-block") {
		p.NotInFirstBlock = orderNotFirst
	}
	if flags.Changed("no-adjacent-smalls") {
		p.NoAdjacentSmalls = orderNoSmalls
	}
	if flags.Changed("no-adjacent-bigs") {
		p.NoAdjacentBigs = orderNoBigs
	}
}

func printInfeasible(r *report, result *engine.OrderResult) {
	if len(result.Conflicts) == 0 {
		r.fail("No running order satisfies every hard rule")
		return
	}
	r.conflicts("Conflicts detected:", result.Conflicts)
}

func printSummary(r *report, result *engine.OrderResult) {
	r.rule()
	r.field("Status", result.Status)
	r.field("Score", result.Score)
	r.field("Blocks", len(result.Order.Blocks))
	r.field("Seed", result.Seed)
	r.field("Search", fmt.Sprintf("%s in %s", plural(int(result.Nodes), "node", "nodes"), result.Elapsed.Round(time.Millisecond)))
	if result.Status == solver.StatusFeasible {
		r.warn("Timed out before proving this order is the best; a longer --timeout may improve it")
	}
}
