package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/engine"
)

var (
	validateBlocks     int
	validateMaxChanges int
)

var validateCmd = &cobra.Command{
	Use:   "validate <show-file>",
	Short: "Check a show file without ordering it",
	Long: `Load <show-file>, check the show and its preferences, and build the
ordering model without searching. Rule combinations that no running order
can satisfy are reported as conflicts.`,
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
		if cmd.Flags().Changed("blocks") {
			req.Preferences.NumBlocks = validateBlocks
		}
		if cmd.Flags().Changed("max-changes") {
			req.Preferences.MaxChangesPerActor = validateMaxChanges
		}

		result, err := eng.Validate(cmd.Context(), &engine.ValidateRequest{
			Show:        req.Show,
			Preferences: req.Preferences,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		} else {
			printValidation(newReport(cmd), args[0], result)
		}

		if len(result.Conflicts) > 0 {
			return fmt.Errorf("%w: %s", engine.ErrInfeasible, plural(len(result.Conflicts), "conflict", "conflicts"))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().IntVarP(&validateBlocks, "blocks", "b", 0, "Number of blocks")
	validateCmd.Flags().IntVar(&validateMaxChanges, "max-changes", 0, "Maximum quick changes per actor")
}

func printValidation(r *report, path string, result *engine.ValidateResult) {
	r.section("Show: " + path)
	r.field("Items", result.Items)
	r.field("Units", result.Units)
	r.field("Actors", result.Actors)
	r.field("Blocks", result.Blocks)
	r.field("Model", fmt.Sprintf("%s, %d hard and %d soft constraints",
		plural(result.Variables, "variable", "variables"), result.Hard, result.Soft))

	kinds := make([]catalog.Kind, 0, len(result.Kinds))
	for k := range result.Kinds {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, []string{string(k), fmt.Sprint(result.Kinds[k])})
	}
	r.note("")
	r.table([]string{"KIND", "ITEMS"}, rows)
	r.note("")

	if len(result.Conflicts) == 0 {
		r.success("Show is valid")
		return
	}
	r.conflicts("Conflicts:", result.Conflicts)
	r.warn("Relax a hard rule before ordering this show")
}
