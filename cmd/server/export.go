package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/platform/seed"
)

var (
	exportPlanID   int
	exportOutput   string
	exportFixtures string
)

var exportCmd = &cobra.Command{
	Use:   "export-pdi",
	Short: "Render a development plan as PDF",
	Long:  "Render one development plan from the fixtures as a PDF document, writing it to --out or stdout.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportPlanID, "id", 0, "Development plan id (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file; stdout when empty")
	exportCmd.Flags().StringVar(&exportFixtures, "fixtures", "", "Fixture file; FIXTURES_PATH or the embedded set when empty")
	_ = exportCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	// Read at run time so values loaded from .env apply.
	path := exportFixtures
	if path == "" {
		path = os.Getenv("FIXTURES_PATH")
	}
	data, err := seed.Load(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	service := pdi.NewService(data.Plans, audit.New(0))
	if err := service.Export(cmd.Context(), exportPlanID, &buf); err != nil {
		return fmt.Errorf("export plan %d: %w", exportPlanID, err)
	}

	if exportOutput == "" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", exportOutput, buf.Len())
	return nil
}
