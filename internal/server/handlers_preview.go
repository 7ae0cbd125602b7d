package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// handlePreview renders a resume as HTML. Query parameters:
//
//	mode     edit | preview | print (default preview)
//	template per-request template override
//	height   content height in px; in preview mode break markers for this
//	         height are overlaid (when absent, the server measures)
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := resumeID(w, r)
	if !ok {
		return
	}

	mode, ok := parseMode(w, r.URL.Query().Get("mode"))
	if !ok {
		return
	}

	sess, err := s.session(r, id)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	state := sess.State()

	settings := state.Settings
	if t := r.URL.Query().Get("template"); t != "" {
		settings.Template = t
	}

	opts := rendering.Options{Mode: mode}
	html, err := rendering.Render(state.Document, settings, opts)
	if err != nil {
		respondRenderError(w, err)
		return
	}

	if mode == rendering.ModePreview {
		height, err := s.contentHeight(r, html)
		if err != nil {
			log.Printf("[server] Failed to measure resume %s: %v", id, err)
		} else if markers, err := pagination.MarkersHTML(pagination.Breaks(height)); err == nil && markers != "" {
			opts.MarkersHTML = markers
			if html, err = rendering.Render(state.Document, settings, opts); err != nil {
				respondRenderError(w, err)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("[server] Failed to write preview: %v", err)
	}
}

// handleBreaks reports the page break offsets for a resume's current
// content. The height query parameter short-circuits measurement with a
// client-supplied value.
func (s *Server) handleBreaks(w http.ResponseWriter, r *http.Request) {
	id, ok := resumeID(w, r)
	if !ok {
		return
	}

	sess, err := s.session(r, id)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	state := sess.State()

	var height int
	if raw := r.URL.Query().Get("height"); raw != "" {
		height, err = strconv.Atoi(raw)
		if err != nil || height < 0 {
			errorResponse(w, http.StatusBadRequest, "height must be a non-negative integer")
			return
		}
	} else {
		html, err := rendering.Render(state.Document, state.Settings, rendering.Options{Mode: rendering.ModePrint})
		if err != nil {
			respondRenderError(w, err)
			return
		}
		height, err = s.contentHeight(r, html)
		if err != nil {
			log.Printf("[server] Failed to measure resume %s: %v", id, err)
			errorResponse(w, http.StatusServiceUnavailable, "measurement unavailable")
			return
		}
	}

	breaks := pagination.Breaks(height)
	jsonResponse(w, http.StatusOK, map[string]any{
		"height":      height,
		"page_height": pagination.PageHeight,
		"page_count":  pagination.PageCount(height),
		"breaks":      breaks,
	})
}

// contentHeight resolves the rendered content height, preferring the
// client-supplied height query parameter over a browser measurement.
func (s *Server) contentHeight(r *http.Request, html string) (int, error) {
	if raw := r.URL.Query().Get("height"); raw != "" {
		height, err := strconv.Atoi(raw)
		if err != nil || height < 0 {
			return 0, errors.New("height must be a non-negative integer")
		}
		return height, nil
	}
	if s.measurer == nil {
		return 0, errors.New("no measurer configured")
	}
	return s.measurer.MeasureHeight(r.Context(), html)
}

func parseMode(w http.ResponseWriter, raw string) (rendering.Mode, bool) {
	switch raw {
	case "":
		return rendering.ModePreview, true
	case string(rendering.ModeEdit):
		return rendering.ModeEdit, true
	case string(rendering.ModePreview):
		return rendering.ModePreview, true
	case string(rendering.ModePrint):
		return rendering.ModePrint, true
	default:
		errorResponse(w, http.StatusBadRequest, "mode must be edit, preview or print")
		return "", false
	}
}

func respondRenderError(w http.ResponseWriter, err error) {
	var unknown *rendering.UnknownStyleError
	if errors.As(err, &unknown) {
		errorResponse(w, http.StatusBadRequest, unknown.Error())
		return
	}
	log.Printf("[server] Render failed: %v", err)
	errorResponse(w, http.StatusInternalServerError, "failed to render resume")
}
