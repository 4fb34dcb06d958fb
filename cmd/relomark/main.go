package main

import (
	"fmt"
	"os"

	"relomark/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.3.0"

var (
	// Global flags
	verbose  bool
	planPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "relomark",
	Short: "relomark - marker-based block relocation for static HTML",
	Long: `relomark rewrites a static HTML file by moving a marked block of
markup under an injected header.

Four literal marker lines bound the edit: the placeholder block that the
header replaces, and the orphaned block that gets relocated under it. The
markers and the header live in a YAML plan file (see "relomark init").

The edit is line-textual and one-shot: applying it a second time fails by
design, because the first run consumes the placeholder markers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.L()
		logging.BootDebug("relomark %s starting", version)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&planPath, "plan", "relomark.yaml", "Relocation plan file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
