package main

import (
	"fmt"
	"path/filepath"

	"relomark/internal/diff"
	"relomark/internal/htmlcheck"
	"relomark/internal/relocate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	applyDryRun    bool
	applyShowDiff  bool
	applyOutput    string
	applyCheckHTML bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Relocate the marked block in a file",
	Long: `Locates the four plan markers, moves the orphaned block under the
injected header and rewrites the file. The write is staged to a temp file
and renamed into place, so a failed run never truncates the original.

If any marker is missing, or the markers appear out of order, nothing is
written and the command exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Locate and reassemble without writing the file")
	applyCmd.Flags().BoolVar(&applyShowDiff, "diff", false, "Print a line diff of the change")
	applyCmd.Flags().StringVar(&applyOutput, "output", "", "Write the result to this path instead of overwriting the input")
	applyCmd.Flags().BoolVar(&applyCheckHTML, "check-html", false, "Run advisory HTML structure checks on the result")
}

func runApply(cmd *cobra.Command, args []string) error {
	absTarget, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve target path: %w", err)
	}

	plan, err := loadPlan()
	if err != nil {
		return err
	}
	logger.Debug("plan resolved", zap.String("path", planPath))

	res, err := relocate.Apply(absTarget, relocate.Options{
		Markers: planMarkers(plan),
		Header:  plan.Header,
		Output:  applyOutput,
		DryRun:  applyDryRun,
	})
	if err != nil {
		return err
	}

	pos := res.Positions
	fmt.Printf("Target:    %s\n", absTarget)
	fmt.Printf("Indices:   placeholder=%d..%d orphaned=%d..%d\n",
		pos.PlaceholderStart, pos.PlaceholderEnd, pos.OrphanedStart, pos.OrphanedEnd)
	fmt.Printf("Lines:     %d -> %d\n", res.Stats.OriginalLines, res.Stats.NewLines)

	if applyShowDiff {
		if out := diff.Unified(absTarget, absTarget, res.Before.Content(), res.After.Content()); out != "" {
			fmt.Print(out)
		} else {
			fmt.Printf("diff: no changes\n")
		}
	}

	if applyCheckHTML {
		warns := htmlcheck.Check(res.After.Content(), markerList(plan))
		for _, w := range warns {
			fmt.Printf("check-html: warn: %s\n", w.Message)
		}
		if len(warns) == 0 {
			fmt.Printf("check-html: OK\n")
		}
	}

	if applyDryRun {
		fmt.Printf("dry-run: OK (no files written)\n")
		return nil
	}

	fmt.Printf("Updated:   %s\n", res.Output)
	return nil
}
