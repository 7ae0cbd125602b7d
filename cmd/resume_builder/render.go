package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	renderTemplate string
	renderMode     string
	renderHeight   int
	renderOut      string
)

var renderCmd = &cobra.Command{
	Use:   "render <resume.json>",
	Short: "Render a resume file to HTML",
	Long:  `Render a resume JSON file to HTML without starting the server. With --height, page-break overlays for that content height are included in preview mode.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template override (classic, modern, minimal)")
	renderCmd.Flags().StringVar(&renderMode, "mode", "preview", "Render mode: edit, preview or print")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Content height in px for page-break overlays")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

// resumeFile is the on-disk resume shape shared by the render and export
// subcommands.
type resumeFile struct {
	Title          string          `json:"title"`
	ResumeData     json.RawMessage `json:"resume_data"`
	ResumeSettings json.RawMessage `json:"resume_settings"`

	doc      types.ResumeDocument
	settings types.ResumeSettings
}

func loadResumeFile(path string) (*resumeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rf resumeFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if rf.ResumeData == nil {
		return nil, fmt.Errorf("%s has no resume_data", path)
	}

	if err := schemas.ValidateResumeData(rf.ResumeData); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rf.ResumeData, &rf.doc); err != nil {
		return nil, fmt.Errorf("failed to parse resume data: %w", err)
	}
	rf.doc = document.Normalize(rf.doc)

	rf.settings = types.DefaultSettings()
	if rf.ResumeSettings != nil {
		if err := schemas.ValidateResumeSettings(rf.ResumeSettings); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rf.ResumeSettings, &rf.settings); err != nil {
			return nil, fmt.Errorf("failed to parse resume settings: %w", err)
		}
	}
	return &rf, nil
}

func runRender(_ *cobra.Command, args []string) error {
	rf, err := loadResumeFile(args[0])
	if err != nil {
		return err
	}

	settings := rf.settings
	if renderTemplate != "" {
		settings.Template = renderTemplate
	}

	mode := rendering.Mode(renderMode)
	switch mode {
	case rendering.ModeEdit, rendering.ModePreview, rendering.ModePrint:
	default:
		return fmt.Errorf("mode must be edit, preview or print")
	}

	opts := rendering.Options{Mode: mode}
	if renderHeight > 0 && mode == rendering.ModePreview {
		markers, err := pagination.MarkersHTML(pagination.Breaks(renderHeight))
		if err != nil {
			return err
		}
		opts.MarkersHTML = markers
	}

	html, err := rendering.Render(rf.doc, settings, opts)
	if err != nil {
		return err
	}

	if renderOut == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	return nil
}
