package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

// CreateResume inserts a new resume and returns its ID.
func (db *DB) CreateResume(ctx context.Context, title, jobDescription string, doc types.ResumeDocument, settings types.ResumeSettings) (uuid.UUID, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume settings: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (title, job_description, resume_data, resume_settings)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		title, jobDescription, docJSON, settingsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume fetches a resume by ID. Returns nil (no error) when the resume
// does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var (
		r            Resume
		docJSON      []byte
		settingsJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, job_description, resume_data, resume_settings, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Title, &r.JobDescription, &docJSON, &settingsJSON, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	if err := json.Unmarshal(docJSON, &r.ResumeData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	if err := json.Unmarshal(settingsJSON, &r.ResumeSettings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume settings: %w", err)
	}
	return &r, nil
}

// ListResumes returns summaries of all resumes, most recently updated first.
func (db *DB) ListResumes(ctx context.Context) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, created_at, updated_at
		 FROM resumes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	summaries := make([]ResumeSummary, 0)
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resume rows: %w", err)
	}
	return summaries, nil
}

// UpdateResume applies a partial update, touching only the provided fields.
// Returns the updated resume, or nil when the resume does not exist.
func (db *DB) UpdateResume(ctx context.Context, id uuid.UUID, update ResumeUpdate) (*Resume, error) {
	if update.IsZero() {
		return db.GetResume(ctx, id)
	}

	setClauses := make([]string, 0, 5)
	args := make([]any, 0, 5)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Title != nil {
		setClauses = append(setClauses, "title = "+arg(*update.Title))
	}
	if update.JobDescription != nil {
		setClauses = append(setClauses, "job_description = "+arg(*update.JobDescription))
	}
	if update.ResumeData != nil {
		docJSON, err := json.Marshal(update.ResumeData)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resume data: %w", err)
		}
		setClauses = append(setClauses, "resume_data = "+arg(docJSON))
	}
	if update.ResumeSettings != nil {
		settingsJSON, err := json.Marshal(update.ResumeSettings)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resume settings: %w", err)
		}
		setClauses = append(setClauses, "resume_settings = "+arg(settingsJSON))
	}

	query := "UPDATE resumes SET updated_at = NOW()"
	for _, clause := range setClauses {
		query += ", " + clause
	}
	query += " WHERE id = " + arg(id)

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return db.GetResume(ctx, id)
}

// DeleteResume removes a resume. Returns false when it did not exist.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
