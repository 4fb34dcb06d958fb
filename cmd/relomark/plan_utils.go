package main

import (
	"fmt"
	"os"

	"relomark/internal/config"
	"relomark/internal/logging"
	"relomark/internal/relocate"
)

// loadPlan resolves the plan for a run. A missing file is only an error when
// --plan was set explicitly; otherwise the built-in defaults apply.
func loadPlan() (*config.Plan, error) {
	if _, err := os.Stat(planPath); err != nil {
		if os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("plan") {
			logging.PlanDebug("no plan at %s, using built-in defaults", planPath)
			return config.DefaultPlan(), nil
		}
		return nil, fmt.Errorf("plan %s: %w", planPath, err)
	}
	return config.Load(planPath)
}

// planMarkers converts plan markers to the relocation marker set.
func planMarkers(p *config.Plan) relocate.MarkerSet {
	return relocate.MarkerSet{
		PlaceholderStart: p.Markers.PlaceholderStart,
		PlaceholderEnd:   p.Markers.PlaceholderEnd,
		OrphanedStart:    p.Markers.OrphanedStart,
		OrphanedEnd:      p.Markers.OrphanedEnd,
	}
}

// markerList flattens the plan markers for duplicate checks.
func markerList(p *config.Plan) []string {
	return []string{
		p.Markers.PlaceholderStart,
		p.Markers.PlaceholderEnd,
		p.Markers.OrphanedStart,
		p.Markers.OrphanedEnd,
	}
}
