// Package types provides type definitions for the resume document and
// settings models used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo is the resume header. It is a fixed field on the document
// rather than an entry in the reorderable section list, so it is always
// rendered first and cannot be hidden or moved.
type PersonalInfo struct {
	Name       string `json:"name"`
	Profession string `json:"profession,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Website    string `json:"website,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
}

// Achievement is a single bullet line nested under an experience, project,
// or custom-section entry.
type Achievement struct {
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// EducationEntry represents one degree or program.
type EducationEntry struct {
	Order       int    `json:"order"`
	School      string `json:"school"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceEntry represents one job or role.
type ExperienceEntry struct {
	Order        int           `json:"order"`
	Company      string        `json:"company"`
	Role         string        `json:"role"`
	Location     string        `json:"location,omitempty"`
	StartDate    string        `json:"start_date,omitempty"`
	EndDate      string        `json:"end_date,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
}

// ProjectEntry represents one project.
type ProjectEntry struct {
	Order        int           `json:"order"`
	Name         string        `json:"name"`
	URL          string        `json:"url,omitempty"`
	Description  string        `json:"description,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
}

// SkillEntry represents one skill group (e.g. "Languages: Go, SQL").
type SkillEntry struct {
	Order int    `json:"order"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// CertificationEntry represents one certification.
type CertificationEntry struct {
	Order  int    `json:"order"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// ReferenceEntry represents one professional reference.
type ReferenceEntry struct {
	Order    int    `json:"order"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CustomSectionEntry represents one item in a user-defined section.
type CustomSectionEntry struct {
	Order        int           `json:"order"`
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Description  string        `json:"description,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
}

// ResumeDocument is the full structured resume. All entry collections carry
// an integer Order used for display sort; Order is re-derived as the array
// index after every mutation, so values are 0-based and contiguous.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Skills         []SkillEntry         `json:"skills,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	References     []ReferenceEntry     `json:"references,omitempty"`
	CustomSections []CustomSectionEntry `json:"custom_sections,omitempty"`
}

// IsEmpty reports whether the document has no content at all: no name on
// the header and no entries in any section.
func (d ResumeDocument) IsEmpty() bool {
	return d.PersonalInfo.Name == "" &&
		len(d.Education) == 0 && len(d.Experience) == 0 &&
		len(d.Projects) == 0 && len(d.Skills) == 0 &&
		len(d.Certifications) == 0 && len(d.References) == 0 &&
		len(d.CustomSections) == 0
}

// Section keys used in ResumeSettings.Sections and by the render dispatcher.
const (
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionReferences     = "references"
	SectionCustom         = "custom_sections"
)

// SectionKeys lists every reorderable section key in default order.
// PersonalInfo is deliberately absent: it is the document header.
func SectionKeys() []string {
	return []string{
		SectionExperience,
		SectionEducation,
		SectionProjects,
		SectionSkills,
		SectionCertifications,
		SectionReferences,
		SectionCustom,
	}
}
