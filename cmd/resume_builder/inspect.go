package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var inspectHeight int

var inspectCmd = &cobra.Command{
	Use:   "inspect <resume.json>",
	Short: "Summarize a resume file",
	Long:  `Print a summary of a resume JSON file: header identity, section layout and, with --height (or a local browser), the page-break table.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectHeight, "height", 0, "Content height in px (skips browser measurement)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	rf, err := loadResumeFile(args[0])
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDocument(&rf.doc)
	printer.PrintSections(&rf.settings)

	height := inspectHeight
	if height <= 0 {
		html, err := rendering.Render(rf.doc, rf.settings, rendering.Options{Mode: rendering.ModePrint})
		if err != nil {
			return err
		}
		measurer := pagination.NewBrowserMeasurer()
		height, err = measurer.MeasureHeight(cmd.Context(), html)
		if err != nil {
			// No browser available; the document summary is still useful.
			fmt.Fprintf(os.Stderr, "skipping pagination: %v\n", err)
			return nil
		}
	}
	printer.PrintPagination(height)
	return nil
}
