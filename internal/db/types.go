package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Resume is one stored resume row: the document and settings are versioned
// together with the title and job description.
type Resume struct {
	ID             uuid.UUID            `json:"id"`
	Title          string               `json:"title"`
	JobDescription string               `json:"job_description"`
	ResumeData     types.ResumeDocument `json:"resume_data"`
	ResumeSettings types.ResumeSettings `json:"resume_settings"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ResumeSummary is the list-view projection of a resume.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResumeUpdate is a partial update: nil fields are left untouched.
type ResumeUpdate struct {
	Title          *string
	JobDescription *string
	ResumeData     *types.ResumeDocument
	ResumeSettings *types.ResumeSettings
}

// IsZero reports whether the update carries no changes.
func (u ResumeUpdate) IsZero() bool {
	return u.Title == nil && u.JobDescription == nil &&
		u.ResumeData == nil && u.ResumeSettings == nil
}
