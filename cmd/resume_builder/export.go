package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var (
	exportTemplate string
	exportMargin   bool
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Export a resume file to PDF",
	Long:  `Render a resume JSON file in print mode and send it to the PDF rendering service. Requires PDF_SERVICE_URL.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Template override (classic, modern, minimal)")
	exportCmd.Flags().BoolVar(&exportMargin, "margin", false, "Ask the service for page margins")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default derived from the resume title)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	pdfServiceURL := os.Getenv("PDF_SERVICE_URL")
	if pdfServiceURL == "" {
		return fmt.Errorf("PDF_SERVICE_URL environment variable is required")
	}

	rf, err := loadResumeFile(args[0])
	if err != nil {
		return err
	}

	settings := rf.settings
	if exportTemplate != "" {
		settings.Template = exportTemplate
	}

	html, err := rendering.Render(rf.doc, settings, rendering.Options{Mode: rendering.ModePrint})
	if err != nil {
		return err
	}
	html, err = export.Sanitize(html)
	if err != nil {
		return err
	}

	filename := export.Filename(rf.Title)
	client := export.NewClient(pdfServiceURL)
	pdf, err := client.GeneratePDF(cmd.Context(), export.GenerateRequest{
		HTMLContent:  html,
		MarginStatus: exportMargin,
		ResumeName:   filename,
	})
	if err != nil {
		if errors.Is(err, export.ErrInsufficientCredits) {
			return fmt.Errorf("the rendering service reported insufficient credits")
		}
		return err
	}

	out := exportOut
	if out == "" {
		out = filename
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(pdf))
	return nil
}
