package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, ok := resumeID(w, r)
	if !ok {
		return
	}

	var req types.ExportRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			errorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	sess, err := s.session(r, id)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	result, err := s.exporter.Export(r.Context(), sess, export.Options{
		Template:   req.Template,
		WithMargin: req.WithMargin,
	})
	if err != nil {
		respondExportError(w, id.String(), err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		log.Printf("[server] Failed to write PDF: %v", err)
	}
}

func respondExportError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, export.ErrInsufficientCredits):
		jsonResponse(w, http.StatusPaymentRequired, map[string]string{
			"error": "insufficient credits",
			"code":  "insufficient_credits",
		})
	case errors.Is(err, export.ErrExportInProgress):
		errorResponse(w, http.StatusConflict, "an export is already in progress")
	default:
		var svcErr *export.ServiceError
		if errors.As(err, &svcErr) {
			log.Printf("[server] PDF service rejected export for %s: %v", id, err)
			errorResponse(w, http.StatusBadGateway, "pdf service error")
			return
		}
		log.Printf("[server] Export failed for %s: %v", id, err)
		errorResponse(w, http.StatusInternalServerError, "export failed")
	}
}
