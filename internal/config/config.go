// Package config loads and validates relocation plan files.
// A plan names the four literal markers that bound the edit and the header
// block injected in place of the placeholder region.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Markers holds the four literal marker substrings. A line matches a marker
// when the substring occurs anywhere in the line; the first match wins.
type Markers struct {
	PlaceholderStart string `yaml:"placeholder_start"`
	PlaceholderEnd   string `yaml:"placeholder_end"`
	OrphanedStart    string `yaml:"orphaned_start"`
	OrphanedEnd      string `yaml:"orphaned_end"`
}

// Plan describes one relocation: the markers plus the header lines injected
// where the placeholder block used to be.
type Plan struct {
	Markers Markers  `yaml:"markers"`
	Header  []string `yaml:"header"`
}

// DefaultPlan returns the plan relomark ships with: the loading-screen
// relocation the tool was originally written for.
func DefaultPlan() *Plan {
	return &Plan{
		Markers: Markers{
			PlaceholderStart: `    <!-- Loading Screen (New) -->`,
			PlaceholderEnd:   `    <!-- WRAPPER FOR CRT ANIMATION - INITIALLY HIDDEN (Screen Off) -->`,
			OrphanedStart:    `            <!-- Top Left Info -->`,
			OrphanedEnd:      `        <!-- Gameplay Screen (Updated with User's HUD) -->`,
		},
		Header: []string{
			`    <!-- Loading Screen (New) -->`,
			`    <div id="loadingScreen"`,
			`        class="screen active absolute inset-0 z-[60] flex flex-col items-center justify-center bg-background-light dark:bg-background-dark text-black dark:text-white font-mono overflow-hidden transition-colors duration-500">`,
			`        <!-- Background elements -->`,
			`        <!-- Background elements (Moved to global) -->`,
			``,
		},
	}
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	return &plan, nil
}

// Validate checks that every marker is set and that no two markers share the
// same substring. A shared substring would make the first-match indices
// collide and the region arithmetic meaningless.
func (p *Plan) Validate() error {
	named := []struct {
		name  string
		value string
	}{
		{"markers.placeholder_start", p.Markers.PlaceholderStart},
		{"markers.placeholder_end", p.Markers.PlaceholderEnd},
		{"markers.orphaned_start", p.Markers.OrphanedStart},
		{"markers.orphaned_end", p.Markers.OrphanedEnd},
	}

	seen := make(map[string]string, len(named))
	for _, m := range named {
		if m.value == "" {
			return fmt.Errorf("%s must be set", m.name)
		}
		if prev, dup := seen[m.value]; dup {
			return fmt.Errorf("%s duplicates %s", m.name, prev)
		}
		seen[m.value] = m.name
	}
	return nil
}

// Save writes the plan as YAML with a short usage comment at the top.
// It refuses to overwrite an existing file.
func (p *Plan) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("plan %s already exists", path)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	const comment = `# relomark plan
# markers: literal substrings matched anywhere in a line (first match wins)
# header: lines injected where the placeholder block used to be
`
	return os.WriteFile(path, append([]byte(comment), data...), 0644)
}
