package export

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records the request it received and returns canned output.
type fakeRenderer struct {
	req GenerateRequest
	pdf []byte
	err error

	// downloadingDuringCall observes the session flag while the renderer
	// runs, i.e. mid-pipeline.
	observe func()
}

func (f *fakeRenderer) GeneratePDF(_ context.Context, req GenerateRequest) ([]byte, error) {
	f.req = req
	if f.observe != nil {
		f.observe()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func newTestSession(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(uuid.New(), nil)
	s.Initialize(types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace"},
		Skills:       []types.SkillEntry{{Order: 0, Name: "Go"}},
	}, types.DefaultSettings(), "Backend Resume", "")
	return s
}

func TestExport_Success(t *testing.T) {
	s := newTestSession(t)
	s.SetEditingMode(true)

	renderer := &fakeRenderer{pdf: []byte("%PDF-1.7 fake")}
	exporter := NewExporter(renderer)

	var midFlags store.Session
	renderer.observe = func() { midFlags = s.State() }

	result, err := exporter.Export(context.Background(), s, Options{WithMargin: true})
	require.NoError(t, err)

	assert.Equal(t, "Backend Resume.pdf", result.Filename)
	assert.Equal(t, []byte("%PDF-1.7 fake"), result.Data)

	// Edit mode was forced off and downloading on while the pipeline ran.
	assert.False(t, midFlags.Editing)
	assert.True(t, midFlags.Downloading)

	// Both flags restored afterwards.
	final := s.State()
	assert.True(t, final.Editing)
	assert.False(t, final.Downloading)

	// The snapshot shipped to the service is the clean print variant.
	assert.True(t, renderer.req.MarginStatus)
	assert.Equal(t, "Backend Resume.pdf", renderer.req.ResumeName)
	assert.Contains(t, renderer.req.HTMLContent, "Ada Lovelace")
	assert.NotContains(t, renderer.req.HTMLContent, "data-edit-section")
	assert.NotContains(t, renderer.req.HTMLContent, "page-break-marker")
}

func TestExport_StateRestoredOnFailure(t *testing.T) {
	s := newTestSession(t)
	s.SetEditingMode(true)

	renderer := &fakeRenderer{err: errors.New("render service down")}
	exporter := NewExporter(renderer)

	_, err := exporter.Export(context.Background(), s, Options{})
	require.Error(t, err)

	final := s.State()
	assert.True(t, final.Editing, "edit mode restored after failure")
	assert.False(t, final.Downloading, "downloading flag cleared after failure")
}

func TestExport_InsufficientCreditsPassthrough(t *testing.T) {
	s := newTestSession(t)
	renderer := &fakeRenderer{err: ErrInsufficientCredits}

	_, err := NewExporter(renderer).Export(context.Background(), s, Options{})
	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.False(t, s.State().Downloading)
}

func TestExport_RefusesConcurrentExport(t *testing.T) {
	s := newTestSession(t)
	s.SetDownloading(true)

	_, err := NewExporter(&fakeRenderer{pdf: []byte("x")}).Export(context.Background(), s, Options{})
	assert.ErrorIs(t, err, ErrExportInProgress)
}

func TestExport_TemplateOverride(t *testing.T) {
	s := newTestSession(t)
	renderer := &fakeRenderer{pdf: []byte("x")}

	_, err := NewExporter(renderer).Export(context.Background(), s, Options{Template: "modern"})
	require.NoError(t, err)
	assert.Contains(t, renderer.req.HTMLContent, `data-template="modern"`)

	// The override is per-export; the session settings are untouched.
	assert.Equal(t, "classic", s.State().Settings.Template)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "resume.pdf", Filename(""))
	assert.Equal(t, "resume.pdf", Filename("   "))
	assert.Equal(t, "Backend Resume.pdf", Filename("Backend Resume"))
	assert.Equal(t, "a-b.pdf", Filename(`a/b`))
}
