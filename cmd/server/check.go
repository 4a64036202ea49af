package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hrpulse/internal/platform/seed"
)

var checkCmd = &cobra.Command{
	Use:   "check-fixtures [path]",
	Short: "Validate a fixture file",
	Long:  "Validate a fixture file against the embedded schema and the cross references between people, sessions and plans.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := os.Getenv("FIXTURES_PATH")
	if len(args) == 1 {
		path = args[0]
	}
	raw, err := seed.Read(path)
	if err != nil {
		return err
	}
	if _, err := seed.Parse(raw); err != nil {
		return err
	}
	name := path
	if name == "" {
		name = "embedded fixtures"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
	return nil
}
