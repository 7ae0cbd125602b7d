package types

// SectionSetting controls the placement and visibility of one resume section.
type SectionSetting struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
}

// ResumeSettings holds the visual configuration for a resume: template
// choice, typography, and the ordered section list.
type ResumeSettings struct {
	Template      string           `json:"template"`
	FontFamily    string           `json:"font_family"`
	FontSize      string           `json:"font_size"`   // points, numeric-as-string
	LineHeight    string           `json:"line_height"` // em multiplier
	TextAlignment string           `json:"text_alignment"`
	Sections      []SectionSetting `json:"sections"`
}

// DefaultSections returns one SectionSetting per reorderable section key,
// all visible, in default order.
func DefaultSections() []SectionSetting {
	labels := map[string]string{
		SectionExperience:     "Experience",
		SectionEducation:      "Education",
		SectionProjects:       "Projects",
		SectionSkills:         "Skills",
		SectionCertifications: "Certifications",
		SectionReferences:     "References",
		SectionCustom:         "Custom Sections",
	}

	keys := SectionKeys()
	sections := make([]SectionSetting, 0, len(keys))
	for i, key := range keys {
		sections = append(sections, SectionSetting{
			Key:     key,
			Label:   labels[key],
			Order:   i,
			Visible: true,
		})
	}
	return sections
}

// DefaultSettings returns the settings a freshly created resume starts with.
func DefaultSettings() ResumeSettings {
	return ResumeSettings{
		Template:      "classic",
		FontFamily:    "Georgia",
		FontSize:      "11",
		LineHeight:    "1.4",
		TextAlignment: "left",
		Sections:      DefaultSections(),
	}
}
