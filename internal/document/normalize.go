package document

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Per-entry order setters used with the generic ordering helpers.

func withExperienceOrder(e types.ExperienceEntry, i int) types.ExperienceEntry {
	e.Order = i
	return e
}

func withEducationOrder(e types.EducationEntry, i int) types.EducationEntry {
	e.Order = i
	return e
}

func withProjectOrder(e types.ProjectEntry, i int) types.ProjectEntry {
	e.Order = i
	return e
}

func withSkillOrder(e types.SkillEntry, i int) types.SkillEntry {
	e.Order = i
	return e
}

func withCertificationOrder(e types.CertificationEntry, i int) types.CertificationEntry {
	e.Order = i
	return e
}

func withReferenceOrder(e types.ReferenceEntry, i int) types.ReferenceEntry {
	e.Order = i
	return e
}

func withCustomOrder(e types.CustomSectionEntry, i int) types.CustomSectionEntry {
	e.Order = i
	return e
}

func withAchievementOrder(a types.Achievement, i int) types.Achievement {
	a.Order = i
	return a
}

// ReindexAchievements re-derives achievement orders as array indices.
func ReindexAchievements(items []types.Achievement) []types.Achievement {
	return Reindex(items, withAchievementOrder)
}

// MoveExperience relocates an experience entry and re-indexes the collection.
func MoveExperience(entries []types.ExperienceEntry, from, to int) []types.ExperienceEntry {
	return Move(entries, from, to, withExperienceOrder)
}

// RemoveExperience deletes an experience entry by index and re-indexes.
func RemoveExperience(entries []types.ExperienceEntry, index int) []types.ExperienceEntry {
	return Remove(entries, index, withExperienceOrder)
}

// Normalize sorts every collection by its stored order and then re-derives
// orders as array indices, restoring the 0-based contiguous invariant across
// the whole document. Nested achievement lists are normalized too.
func Normalize(doc types.ResumeDocument) types.ResumeDocument {
	doc.Education = Reindex(
		SortByOrder(doc.Education, func(e types.EducationEntry) int { return e.Order }),
		withEducationOrder)

	doc.Experience = Reindex(
		SortByOrder(doc.Experience, func(e types.ExperienceEntry) int { return e.Order }),
		withExperienceOrder)
	for i := range doc.Experience {
		doc.Experience[i].Achievements = ReindexAchievements(
			SortByOrder(doc.Experience[i].Achievements, func(a types.Achievement) int { return a.Order }))
	}

	doc.Projects = Reindex(
		SortByOrder(doc.Projects, func(e types.ProjectEntry) int { return e.Order }),
		withProjectOrder)
	for i := range doc.Projects {
		doc.Projects[i].Achievements = ReindexAchievements(
			SortByOrder(doc.Projects[i].Achievements, func(a types.Achievement) int { return a.Order }))
	}

	doc.Skills = Reindex(
		SortByOrder(doc.Skills, func(e types.SkillEntry) int { return e.Order }),
		withSkillOrder)

	doc.Certifications = Reindex(
		SortByOrder(doc.Certifications, func(e types.CertificationEntry) int { return e.Order }),
		withCertificationOrder)

	doc.References = Reindex(
		SortByOrder(doc.References, func(e types.ReferenceEntry) int { return e.Order }),
		withReferenceOrder)

	doc.CustomSections = Reindex(
		SortByOrder(doc.CustomSections, func(e types.CustomSectionEntry) int { return e.Order }),
		withCustomOrder)
	for i := range doc.CustomSections {
		doc.CustomSections[i].Achievements = ReindexAchievements(
			SortByOrder(doc.CustomSections[i].Achievements, func(a types.Achievement) int { return a.Order }))
	}

	return doc
}
