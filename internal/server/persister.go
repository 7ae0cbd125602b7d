package server

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/store"
)

// NewPersister adapts the resume store into the session persister, so
// settled session state is written back as a partial row update.
func NewPersister(resumes ResumeStore) store.Persister {
	return &dbPersister{resumes: resumes}
}

type dbPersister struct {
	resumes ResumeStore
}

func (p *dbPersister) Persist(ctx context.Context, state store.PersistedState) error {
	updated, err := p.resumes.UpdateResume(ctx, state.ResumeID, db.ResumeUpdate{
		Title:          &state.Title,
		JobDescription: &state.JobDescription,
		ResumeData:     &state.Document,
		ResumeSettings: &state.Settings,
	})
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("resume %s no longer exists", state.ResumeID)
	}
	return nil
}
