package sample

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Document builds a starter resume for the given job title: placeholder
// personal info plus scaffolded experience and skill entries the user edits
// in place. Orders are array indices, matching the document invariant.
func Document(jobTitle string) types.ResumeDocument {
	if jobTitle == "" {
		jobTitle = "Professional"
	}

	return types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			Name:       "Your Name",
			Profession: jobTitle,
			Email:      "you@example.com",
			Summary:    fmt.Sprintf("Experienced %s with a track record of delivering results.", jobTitle),
		},
		Experience: []types.ExperienceEntry{
			{
				Order:     0,
				Company:   "Most Recent Company",
				Role:      jobTitle,
				StartDate: "2022-01",
				EndDate:   "present",
				Achievements: []types.Achievement{
					{Order: 0, Content: "Describe a measurable outcome you delivered in this role."},
					{Order: 1, Content: "Describe a project you led or a process you improved."},
				},
			},
			{
				Order:     1,
				Company:   "Previous Company",
				Role:      jobTitle,
				StartDate: "2019-06",
				EndDate:   "2021-12",
				Achievements: []types.Achievement{
					{Order: 0, Content: "Describe a responsibility that prepared you for your current role."},
				},
			},
		},
		Education: []types.EducationEntry{
			{Order: 0, School: "Your University", Degree: "Your Degree"},
		},
		Skills: []types.SkillEntry{
			{Order: 0, Name: "Key skill for this role"},
			{Order: 1, Name: "Another relevant skill"},
		},
	}
}
