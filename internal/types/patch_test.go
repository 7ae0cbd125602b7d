package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentPatch_Apply_PartialMerge(t *testing.T) {
	doc := ResumeDocument{
		PersonalInfo: PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Skills: []SkillEntry{
			{Order: 0, Name: "Go"},
		},
	}

	newSkills := []SkillEntry{
		{Order: 0, Name: "Go"},
		{Order: 1, Name: "SQL"},
	}
	patch := DocumentPatch{Skills: &newSkills}

	merged := patch.Apply(doc)

	// Untouched fields survive, patched field is replaced wholesale.
	assert.Equal(t, "Ada Lovelace", merged.PersonalInfo.Name)
	assert.Len(t, merged.Skills, 2)
	assert.Equal(t, "SQL", merged.Skills[1].Name)
}

func TestDocumentPatch_Apply_EmptySliceReplaces(t *testing.T) {
	doc := ResumeDocument{
		Experience: []ExperienceEntry{{Order: 0, Company: "Initech"}},
	}

	empty := []ExperienceEntry{}
	patch := DocumentPatch{Experience: &empty}

	merged := patch.Apply(doc)
	assert.Empty(t, merged.Experience)
}

func TestDocumentPatch_IsZero(t *testing.T) {
	assert.True(t, DocumentPatch{}.IsZero())

	info := PersonalInfo{Name: "x"}
	assert.False(t, DocumentPatch{PersonalInfo: &info}.IsZero())
}

func TestSettingsPatch_Apply(t *testing.T) {
	settings := DefaultSettings()

	template := "modern"
	fontSize := "12"
	patch := SettingsPatch{Template: &template, FontSize: &fontSize}

	merged := patch.Apply(settings)
	assert.Equal(t, "modern", merged.Template)
	assert.Equal(t, "12", merged.FontSize)
	assert.Equal(t, settings.FontFamily, merged.FontFamily)
	assert.Equal(t, settings.Sections, merged.Sections)
}

func TestDefaultSections_CoversAllKeysOnce(t *testing.T) {
	sections := DefaultSections()
	assert.Len(t, sections, len(SectionKeys()))

	seen := make(map[string]bool)
	for i, s := range sections {
		assert.False(t, seen[s.Key], "duplicate section key %s", s.Key)
		seen[s.Key] = true
		assert.Equal(t, i, s.Order)
		assert.True(t, s.Visible)
		assert.NotEmpty(t, s.Label)
	}

	// Personal info is a header field, never a reorderable section.
	assert.False(t, seen["personal_info"])
}

func TestValidate_CreateResumeRequest(t *testing.T) {
	req := &CreateResumeRequest{Title: "Backend Engineer"}
	assert.NoError(t, req.Validate())

	req = &CreateResumeRequest{Title: ""}
	assert.Error(t, req.Validate())
}

func TestUpdateResumeRequest_IsZero(t *testing.T) {
	assert.True(t, (&UpdateResumeRequest{}).IsZero())

	title := "Renamed"
	assert.False(t, (&UpdateResumeRequest{Title: &title}).IsZero())
}
