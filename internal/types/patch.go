package types

// DocumentPatch is a shallow-merge update for ResumeDocument. Nil fields are
// left untouched; non-nil fields replace the corresponding document field
// wholesale. Collections are replaced, not merged element-wise.
type DocumentPatch struct {
	PersonalInfo   *PersonalInfo         `json:"personal_info,omitempty"`
	Education      *[]EducationEntry     `json:"education,omitempty"`
	Experience     *[]ExperienceEntry    `json:"experience,omitempty"`
	Projects       *[]ProjectEntry       `json:"projects,omitempty"`
	Skills         *[]SkillEntry         `json:"skills,omitempty"`
	Certifications *[]CertificationEntry `json:"certifications,omitempty"`
	References     *[]ReferenceEntry     `json:"references,omitempty"`
	CustomSections *[]CustomSectionEntry `json:"custom_sections,omitempty"`
}

// FullDocumentPatch builds a patch that replaces every document field.
func FullDocumentPatch(doc ResumeDocument) DocumentPatch {
	return DocumentPatch{
		PersonalInfo:   &doc.PersonalInfo,
		Education:      &doc.Education,
		Experience:     &doc.Experience,
		Projects:       &doc.Projects,
		Skills:         &doc.Skills,
		Certifications: &doc.Certifications,
		References:     &doc.References,
		CustomSections: &doc.CustomSections,
	}
}

// Apply merges the patch into doc and returns the result.
func (p DocumentPatch) Apply(doc ResumeDocument) ResumeDocument {
	if p.PersonalInfo != nil {
		doc.PersonalInfo = *p.PersonalInfo
	}
	if p.Education != nil {
		doc.Education = *p.Education
	}
	if p.Experience != nil {
		doc.Experience = *p.Experience
	}
	if p.Projects != nil {
		doc.Projects = *p.Projects
	}
	if p.Skills != nil {
		doc.Skills = *p.Skills
	}
	if p.Certifications != nil {
		doc.Certifications = *p.Certifications
	}
	if p.References != nil {
		doc.References = *p.References
	}
	if p.CustomSections != nil {
		doc.CustomSections = *p.CustomSections
	}
	return doc
}

// IsZero reports whether the patch carries no changes.
func (p DocumentPatch) IsZero() bool {
	return p.PersonalInfo == nil && p.Education == nil && p.Experience == nil &&
		p.Projects == nil && p.Skills == nil && p.Certifications == nil &&
		p.References == nil && p.CustomSections == nil
}

// SettingsPatch is a shallow-merge update for ResumeSettings.
type SettingsPatch struct {
	Template      *string           `json:"template,omitempty"`
	FontFamily    *string           `json:"font_family,omitempty"`
	FontSize      *string           `json:"font_size,omitempty"`
	LineHeight    *string           `json:"line_height,omitempty"`
	TextAlignment *string           `json:"text_alignment,omitempty"`
	Sections      *[]SectionSetting `json:"sections,omitempty"`
}

// FullSettingsPatch builds a patch that replaces every settings field.
func FullSettingsPatch(settings ResumeSettings) SettingsPatch {
	return SettingsPatch{
		Template:      &settings.Template,
		FontFamily:    &settings.FontFamily,
		FontSize:      &settings.FontSize,
		LineHeight:    &settings.LineHeight,
		TextAlignment: &settings.TextAlignment,
		Sections:      &settings.Sections,
	}
}

// Apply merges the patch into settings and returns the result.
func (p SettingsPatch) Apply(settings ResumeSettings) ResumeSettings {
	if p.Template != nil {
		settings.Template = *p.Template
	}
	if p.FontFamily != nil {
		settings.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		settings.FontSize = *p.FontSize
	}
	if p.LineHeight != nil {
		settings.LineHeight = *p.LineHeight
	}
	if p.TextAlignment != nil {
		settings.TextAlignment = *p.TextAlignment
	}
	if p.Sections != nil {
		settings.Sections = *p.Sections
	}
	return settings
}

// IsZero reports whether the patch carries no changes.
func (p SettingsPatch) IsZero() bool {
	return p.Template == nil && p.FontFamily == nil && p.FontSize == nil &&
		p.LineHeight == nil && p.TextAlignment == nil && p.Sections == nil
}
