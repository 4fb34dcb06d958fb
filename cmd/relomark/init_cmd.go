package main

import (
	"fmt"

	"relomark/internal/config"
	"relomark/internal/logging"

	"github.com/spf13/cobra"
)

// initCmd writes a starter plan carrying the default markers and header.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter plan file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := config.DefaultPlan().Save(planPath); err != nil {
		return err
	}
	logging.Plan("wrote starter plan %s", planPath)
	fmt.Printf("Wrote starter plan: %s\n", planPath)
	return nil
}
