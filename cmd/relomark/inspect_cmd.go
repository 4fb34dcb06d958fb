package main

import (
	"fmt"
	"path/filepath"

	"relomark/internal/relocate"

	"github.com/spf13/cobra"
)

// inspectCmd locates the markers and prints the relocation layout without
// touching the file.
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Locate the plan markers without writing",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	absTarget, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve target path: %w", err)
	}

	plan, err := loadPlan()
	if err != nil {
		return err
	}

	doc, err := relocate.LoadDocument(absTarget)
	if err != nil {
		return err
	}

	pos, err := planMarkers(plan).Locate(doc.Lines)
	if err != nil {
		return err
	}

	gap := pos.PlaceholderEnd - pos.PlaceholderStart
	orphaned := pos.OrphanedEnd - pos.OrphanedStart
	fmt.Printf("Target:      %s\n", absTarget)
	fmt.Printf("Lines:       %d\n", doc.LineCount())
	fmt.Printf("Placeholder: lines %d..%d (%d lines replaced by %d header lines)\n",
		pos.PlaceholderStart, pos.PlaceholderEnd, gap, len(plan.Header))
	fmt.Printf("Orphaned:    lines %d..%d (%d lines relocated)\n",
		pos.OrphanedStart, pos.OrphanedEnd, orphaned)
	fmt.Printf("Projected:   %d lines after apply\n", doc.LineCount()-gap+len(plan.Header))
	return nil
}
