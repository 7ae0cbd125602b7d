package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// Mode selects which DOM variant is produced.
type Mode string

const (
	// ModeEdit shows inline edit affordances on every section.
	ModeEdit Mode = "edit"
	// ModePreview is the static read view; break markers may be overlaid.
	ModePreview Mode = "preview"
	// ModePrint is the clean variant handed to the PDF renderer. No edit
	// affordances, no markers, ever.
	ModePrint Mode = "print"
)

// Options controls a single render.
type Options struct {
	Mode Mode
	// MarkersHTML is overlay markup appended inside the content container.
	// Only honored in preview mode.
	MarkersHTML string
}

// sectionView is one visible section prepared for the template: the entry
// collection is already sorted by order, nested achievements included.
type sectionView struct {
	Key   string
	Title string

	Education      []types.EducationEntry
	Experience     []types.ExperienceEntry
	Projects       []types.ProjectEntry
	Skills         []types.SkillEntry
	Certifications []types.CertificationEntry
	References     []types.ReferenceEntry
	CustomSections []types.CustomSectionEntry
}

// viewData is the root template payload.
type viewData struct {
	Header   types.PersonalInfo
	Sections []sectionView
	Style    Style
	Settings types.ResumeSettings
	EditMode bool
	CSS      template.CSS
	Markers  template.HTML
}

// Render produces the HTML for a resume in the requested mode. The output
// is deterministic: identical document/settings/options yield identical
// markup.
func Render(doc types.ResumeDocument, settings types.ResumeSettings, opts Options) (string, error) {
	style, err := StyleByName(settings.Template)
	if err != nil {
		return "", err
	}

	data := viewData{
		Header:   doc.PersonalInfo,
		Sections: buildSections(doc, settings),
		Style:    style,
		Settings: settings,
		EditMode: opts.Mode == ModeEdit,
		CSS:      template.CSS(buildCSS(settings, style)),
	}
	if opts.Mode == ModePreview && opts.MarkersHTML != "" {
		// Marker markup is produced by the pagination package, not user
		// input, so it is trusted as-is.
		data.Markers = template.HTML(opts.MarkersHTML)
	}

	var sb strings.Builder
	if err := resumeTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return sb.String(), nil
}

// buildSections walks settings.Sections sorted by order, skips invisible
// ones, and attaches each visible section's sorted entries. Sections whose
// collection is empty are dropped uniformly across all styles.
func buildSections(doc types.ResumeDocument, settings types.ResumeSettings) []sectionView {
	ordered := document.VisibleSections(settings.Sections)
	sections := make([]sectionView, 0, len(ordered))

	for _, s := range ordered {
		view := sectionView{Key: s.Key, Title: s.Label}

		switch s.Key {
		case types.SectionEducation:
			if len(doc.Education) == 0 {
				continue
			}
			view.Education = document.SortByOrder(doc.Education,
				func(e types.EducationEntry) int { return e.Order })
		case types.SectionExperience:
			if len(doc.Experience) == 0 {
				continue
			}
			view.Experience = sortExperience(doc.Experience)
		case types.SectionProjects:
			if len(doc.Projects) == 0 {
				continue
			}
			view.Projects = sortProjects(doc.Projects)
		case types.SectionSkills:
			if len(doc.Skills) == 0 {
				continue
			}
			view.Skills = document.SortByOrder(doc.Skills,
				func(e types.SkillEntry) int { return e.Order })
		case types.SectionCertifications:
			if len(doc.Certifications) == 0 {
				continue
			}
			view.Certifications = document.SortByOrder(doc.Certifications,
				func(e types.CertificationEntry) int { return e.Order })
		case types.SectionReferences:
			if len(doc.References) == 0 {
				continue
			}
			view.References = document.SortByOrder(doc.References,
				func(e types.ReferenceEntry) int { return e.Order })
		case types.SectionCustom:
			if len(doc.CustomSections) == 0 {
				continue
			}
			view.CustomSections = sortCustomSections(doc.CustomSections)
		default:
			// Unknown keys are skipped rather than failing the render.
			continue
		}

		sections = append(sections, view)
	}
	return sections
}

func sortExperience(entries []types.ExperienceEntry) []types.ExperienceEntry {
	sorted := document.SortByOrder(entries, func(e types.ExperienceEntry) int { return e.Order })
	for i := range sorted {
		sorted[i].Achievements = document.SortByOrder(sorted[i].Achievements,
			func(a types.Achievement) int { return a.Order })
	}
	return sorted
}

func sortProjects(entries []types.ProjectEntry) []types.ProjectEntry {
	sorted := document.SortByOrder(entries, func(e types.ProjectEntry) int { return e.Order })
	for i := range sorted {
		sorted[i].Achievements = document.SortByOrder(sorted[i].Achievements,
			func(a types.Achievement) int { return a.Order })
	}
	return sorted
}

func sortCustomSections(entries []types.CustomSectionEntry) []types.CustomSectionEntry {
	sorted := document.SortByOrder(entries, func(e types.CustomSectionEntry) int { return e.Order })
	for i := range sorted {
		sorted[i].Achievements = document.SortByOrder(sorted[i].Achievements,
			func(a types.Achievement) int { return a.Order })
	}
	return sorted
}

// buildCSS derives the document stylesheet from settings plus the style
// strategy. Font size is points; line height is an em multiplier.
func buildCSS(settings types.ResumeSettings, style Style) string {
	fontFamily := settings.FontFamily
	if fontFamily == "" {
		fontFamily = "Georgia"
	}
	fontSize := settings.FontSize
	if fontSize == "" {
		fontSize = "11"
	}
	lineHeight := settings.LineHeight
	if lineHeight == "" {
		lineHeight = "1.4"
	}
	alignment := settings.TextAlignment
	if alignment == "" {
		alignment = "left"
	}
	headingFont := style.HeadingFont
	if headingFont == "" {
		headingFont = fontFamily
	}

	padding := "45px"
	sectionGap := "14px"
	if style.CompactLayout {
		padding = "30px"
		sectionGap = "8px"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "body{margin:0;font-family:%s;font-size:%spt;line-height:%s;text-align:%s;color:#111;}\n",
		fontFamily, fontSize, lineHeight, alignment)
	fmt.Fprintf(&sb, ".resume{position:relative;padding:%s;}\n", padding)
	fmt.Fprintf(&sb, ".section{margin-bottom:%s;}\n", sectionGap)
	fmt.Fprintf(&sb, ".section-title{color:%s;border-bottom:1px solid %s;padding-bottom:2px;margin-bottom:6px;}\n",
		style.AccentColor, style.RuleColor)
	fmt.Fprintf(&sb, "h1{font-family:%s;color:%s;margin:0 0 2px 0;}\n", headingFont, style.AccentColor)
	sb.WriteString(".contact-line{margin-bottom:10px;}\n")
	sb.WriteString(".entry{margin-bottom:8px;}\n")
	sb.WriteString(".entry-dates{float:right;}\n")
	sb.WriteString("ul.achievements{margin:4px 0 0 0;padding-left:18px;}\n")
	sb.WriteString(".edit-section{font-size:9pt;margin-left:6px;}\n")
	sb.WriteString(".page-break-marker{border-top:1px dashed #9ca3af;}\n")
	sb.WriteString(".page-break-label{position:absolute;right:4px;font-size:8pt;color:#9ca3af;background:#fff;padding:0 4px;}\n")
	return sb.String()
}
