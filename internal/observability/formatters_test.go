package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(&types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace", Profession: "Engineer"},
		Experience: []types.ExperienceEntry{
			{Order: 0, Company: "Analytical Engines", Role: "Engineer"},
		},
		Skills: []types.SkillEntry{{Order: 0, Name: "Go"}},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME DOCUMENT")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Experience: 1")
	assert.Contains(t, out, "Skills: 1")
	assert.NotContains(t, out, "Projects")
}

func TestPrintDocumentNilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSectionsShowsOrderAndVisibility(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	settings := types.DefaultSettings()
	settings.Sections[0].Visible = false
	p.PrintSections(&settings)

	out := buf.String()
	assert.Contains(t, out, "SECTION LAYOUT")
	assert.Contains(t, out, "classic")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "✓")
}

func TestPrintPagination(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPagination(pagination.PageHeight*2 + 100)

	out := buf.String()
	assert.Contains(t, out, "PAGINATION")
	assert.Contains(t, out, "Pages:          3")
	assert.Contains(t, out, "Page Break 1")
}
