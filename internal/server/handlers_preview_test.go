package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/pagination"
)

func TestPreviewDefaultsToPreviewMode(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	assert.NotContains(t, rec.Body.String(), "edit-section")
}

func TestPreviewEditModeShowsAffordances(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/preview?mode=edit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "edit-section")
}

func TestPreviewOverlaysMarkersForSuppliedHeight(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	// Three pages of content at the supplied height.
	height := pagination.PageHeight*2 + 500
	rec := ts.do(t, http.MethodGet, fmt.Sprintf("/resume/%s/preview?height=%d", id, height), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "page-break-marker")
	assert.Contains(t, rec.Body.String(), fmt.Sprintf("top:%dpx", pagination.PageHeight))
}

func TestPreviewPrintModeHasNoMarkers(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	height := pagination.PageHeight * 3
	rec := ts.do(t, http.MethodGet, fmt.Sprintf("/resume/%s/preview?mode=print&height=%d", id, height), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "page-break-marker")
}

func TestPreviewRejectsUnknownMode(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/preview?mode=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewRejectsUnknownTemplate(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/preview?template=neon", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBreaksWithSuppliedHeight(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	height := pagination.PageHeight*2 + 700
	rec := ts.do(t, http.MethodGet, fmt.Sprintf("/resume/%s/breaks?height=%d", id, height), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Height     int                `json:"height"`
		PageHeight int                `json:"page_height"`
		PageCount  int                `json:"page_count"`
		Breaks     []pagination.Break `json:"breaks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, height, resp.Height)
	assert.Equal(t, pagination.PageHeight, resp.PageHeight)
	assert.Equal(t, 3, resp.PageCount)
	require.Len(t, resp.Breaks, 2)
	assert.Equal(t, pagination.PageHeight, resp.Breaks[0].Offset)
	assert.Equal(t, 2*pagination.PageHeight, resp.Breaks[1].Offset)
}

func TestBreaksSinglePageHasNone(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/breaks?height=800", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Breaks []pagination.Break `json:"breaks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Breaks)
}

func TestBreaksRejectsNegativeHeight(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/breaks?height=-5", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBreaksWithoutMeasurerUnavailable(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.seed("Ada", sampleDoc())

	rec := ts.do(t, http.MethodGet, "/resume/"+id.String()+"/breaks", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBreaksNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/resume/"+uuid.NewString()+"/breaks?height=1000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
