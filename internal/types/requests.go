package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateResumeRequest represents the request to create a new resume.
type CreateResumeRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	JobDescription string          `json:"job_description,omitempty"`
	ResumeData     *ResumeDocument `json:"resume_data,omitempty"`
	ResumeSettings *ResumeSettings `json:"resume_settings,omitempty"`
}

// UpdateResumeRequest represents a partial update to a resume. Any subset of
// the fields may be present; absent fields are left untouched.
type UpdateResumeRequest struct {
	Title          *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	JobDescription *string         `json:"job_description,omitempty"`
	ResumeData     *ResumeDocument `json:"resume_data,omitempty"`
	ResumeSettings *ResumeSettings `json:"resume_settings,omitempty"`
}

// ExportRequest represents the request body for exporting a resume to PDF.
type ExportRequest struct {
	Template   string `json:"template,omitempty"`
	WithMargin bool   `json:"with_margin,omitempty"`
}

// SampleSignalRequest carries the one-shot "generate a sample resume for
// this job title" signal into the next editor load.
type SampleSignalRequest struct {
	JobTitle string `json:"job_title" validate:"required,min=1,max=200"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateResumeRequest using the validator.
func (r *UpdateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SampleSignalRequest using the validator.
func (r *SampleSignalRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// IsZero reports whether the update request carries no changes.
func (r *UpdateResumeRequest) IsZero() bool {
	return r.Title == nil && r.JobDescription == nil &&
		r.ResumeData == nil && r.ResumeSettings == nil
}
