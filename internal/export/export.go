package export

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
)

// Result is a finished export: the download filename and the PDF bytes.
type Result struct {
	Filename string
	Data     []byte
}

// Options controls one export run.
type Options struct {
	// Template overrides the session's template for this export only.
	Template string
	// WithMargin is forwarded to the rendering service as marginStatus.
	WithMargin bool
}

// Exporter runs the export pipeline against a session store.
type Exporter struct {
	renderer Renderer
}

// NewExporter creates an exporter backed by the given PDF renderer.
func NewExporter(renderer Renderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// Export produces a PDF for the session's current state.
//
// The pipeline forces edit mode off before rendering so edit decorations
// never reach the exported document, renders the print variant, scrubs the
// snapshot, and posts it to the rendering service. The session's edit-mode
// and downloading flags are restored on every path, success or failure.
func (e *Exporter) Export(ctx context.Context, s *store.Store, opts Options) (*Result, error) {
	state := s.State()
	if state.Downloading {
		return nil, ErrExportInProgress
	}

	wasEditing := state.Editing
	s.SetEditingMode(false)
	s.SetDownloading(true)
	defer func() {
		s.SetEditingMode(wasEditing)
		s.SetDownloading(false)
	}()

	settings := state.Settings
	if opts.Template != "" {
		settings.Template = opts.Template
	}

	html, err := rendering.Render(state.Document, settings, rendering.Options{Mode: rendering.ModePrint})
	if err != nil {
		return nil, &ExportError{Message: "failed to render print snapshot", Cause: err}
	}

	html, err = Sanitize(html)
	if err != nil {
		return nil, err
	}

	filename := Filename(state.Title)
	log.Printf("[export] Generating PDF for resume %s (%s)", state.ResumeID, filename)

	pdf, err := e.renderer.GeneratePDF(ctx, GenerateRequest{
		HTMLContent:  html,
		MarginStatus: opts.WithMargin,
		ResumeName:   filename,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Filename: filename, Data: pdf}, nil
}

// Filename derives the download filename from the resume title. Untitled
// resumes export as resume.pdf; characters that break Content-Disposition
// are replaced.
func Filename(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "resume.pdf"
	}
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", `"`, "", "\n", " ", "\r", " ",
	)
	return replacer.Replace(title) + ".pdf"
}
