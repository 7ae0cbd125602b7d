package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

var errResumeNotFound = errors.New("resume not found")

// resumePayload is the wire shape of a live resume. It mirrors the stored
// row minus timestamps, which only the list view carries.
type resumePayload struct {
	ID             uuid.UUID            `json:"id"`
	Title          string               `json:"title"`
	JobDescription string               `json:"job_description"`
	ResumeData     types.ResumeDocument `json:"resume_data"`
	ResumeSettings types.ResumeSettings `json:"resume_settings"`
}

func payloadFromSession(state store.Session) resumePayload {
	return resumePayload{
		ID:             state.ResumeID,
		Title:          state.Title,
		JobDescription: state.JobDescription,
		ResumeData:     state.Document,
		ResumeSettings: state.Settings,
	}
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	doc := types.ResumeDocument{}
	if req.ResumeData != nil {
		doc = document.Normalize(*req.ResumeData)
	}
	settings := types.DefaultSettings()
	if req.ResumeSettings != nil {
		settings = *req.ResumeSettings
	}

	id, err := s.store.CreateResume(r.Context(), req.Title, req.JobDescription, doc, settings)
	if err != nil {
		log.Printf("[server] Failed to create resume: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to create resume")
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListResumes(r.Context())
	if err != nil {
		log.Printf("[server] Failed to list resumes: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := resumeID(w, r)
	if !ok {
		return
	}

	sess, err := s.session(r, id)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"resume": payloadFromSession(sess.State())})
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := resumeID(w, r)
	if !ok {
		return
	}

	// Document and settings stay raw until they pass schema validation.
	var body struct {
		Title          *string         `json:"title"`
		JobDescription *string         `json:"job_description"`
		ResumeData     json.RawMessage `json:"resume_data"`
		ResumeSettings json.RawMessage `json:"resume_settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var doc *types.ResumeDocument
	if body.ResumeData != nil {
		if err := schemas.ValidateResumeData(body.ResumeData); err != nil {
			respondValidationError(w, err)
			return
		}
		var d types.ResumeDocument
		if err := json.Unmarshal(body.ResumeData, &d); err != nil {
			errorResponse(w, http.StatusBadRequest, "invalid resume data")
			return
		}
		d = document.Normalize(d)
		doc = &d
	}

	var settings *types.ResumeSettings
	if body.ResumeSettings != nil {
		if err := schemas.ValidateResumeSettings(body.ResumeSettings); err != nil {
			respondValidationError(w, err)
			return
		}
		var st types.ResumeSettings
		if err := json.Unmarshal(body.ResumeSettings, &st); err != nil {
			errorResponse(w, http.StatusBadRequest, "invalid resume settings")
			return
		}
		settings = &st
	}

	sess, err := s.session(r, id)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	if body.Title != nil {
		sess.SetTitle(*body.Title)
	}
	if body.JobDescription != nil {
		sess.SetJobDescription(*body.JobDescription)
	}
	if doc != nil {
		sess.UpdateDocument(types.FullDocumentPatch(*doc))
	}
	if settings != nil {
		sess.UpdateSettings(types.FullSettingsPatch(*settings))
	}

	jsonResponse(w, http.StatusOK, map[string]any{"resume": payloadFromSession(sess.State())})
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := resumeID(w, r)
	if !ok {
		return
	}

	// Drop the live session first so a pending debounce can't resurrect
	// the row after the delete.
	if _, exists := s.sessions.Lookup(id); exists {
		if err := s.sessions.Release(r.Context(), id); err != nil {
			log.Printf("[server] Failed to release session %s: %v", id, err)
		}
	}

	deleted, err := s.store.DeleteResume(r.Context(), id)
	if err != nil {
		log.Printf("[server] Failed to delete resume %s: %v", id, err)
		errorResponse(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	if !deleted {
		errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSampleSignal(w http.ResponseWriter, r *http.Request) {
	var req types.SampleSignalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.signals.Put(req.JobTitle); err != nil {
		log.Printf("[server] Failed to record sample signal: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to record signal")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// session returns the live session for a resume, initializing it from
// storage on first access. A pending sample signal is consumed when the
// stored document is empty, seeding a starter resume for the signalled
// job title.
func (s *Server) session(r *http.Request, id uuid.UUID) (*store.Store, error) {
	sess := s.sessions.Get(id)
	if sess.Initialized() {
		return sess, nil
	}

	ctx := r.Context()
	resume, err := s.store.GetResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, errResumeNotFound
	}

	doc := resume.ResumeData
	if s.signals != nil && doc.IsEmpty() {
		sig, err := s.signals.Take()
		if err != nil {
			log.Printf("[server] Failed to read sample signal: %v", err)
		} else if sig != nil {
			doc = sample.Document(sig.JobTitle)
			if _, err := s.store.UpdateResume(ctx, id, db.ResumeUpdate{ResumeData: &doc}); err != nil {
				log.Printf("[server] Failed to persist sample document for %s: %v", id, err)
			}
		}
	}

	sess.Initialize(doc, resume.ResumeSettings, resume.Title, resume.JobDescription)
	return sess, nil
}

func resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return uuid.Nil, false
	}
	return id, true
}

func respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, errResumeNotFound) {
		errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	log.Printf("[server] Failed to load resume: %v", err)
	errorResponse(w, http.StatusInternalServerError, "failed to load resume")
}

func respondValidationError(w http.ResponseWriter, err error) {
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": ve.Errors,
		})
		return
	}
	errorResponse(w, http.StatusBadRequest, err.Error())
}
