package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GeneratePDF_Success(t *testing.T) {
	var received GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-pdf", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 bytes"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	pdf, err := client.GeneratePDF(context.Background(), GenerateRequest{
		HTMLContent:  "<html><body>resume</body></html>",
		MarginStatus: true,
		ResumeName:   "Backend Resume.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7 bytes"), pdf)
	assert.True(t, received.MarginStatus)
	assert.Equal(t, "Backend Resume.pdf", received.ResumeName)
	assert.Contains(t, received.HTMLContent, "resume")
}

func TestClient_GeneratePDF_InsufficientCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient credits"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GeneratePDF(context.Background(), GenerateRequest{HTMLContent: "<html></html>"})
	assert.ErrorIs(t, err, ErrInsufficientCredits)
}

func TestClient_GeneratePDF_GenericFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "renderer crashed"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GeneratePDF(context.Background(), GenerateRequest{HTMLContent: "<html></html>"})
	require.Error(t, err)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "renderer crashed", svcErr.Message)
}

func TestClient_GeneratePDF_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GeneratePDF(context.Background(), GenerateRequest{HTMLContent: "<html></html>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestSanitize_RemovesEditDecorations(t *testing.T) {
	html := `<html><body><div class="resume">` +
		`<h2>Experience<button class="edit-section" data-edit-section="experience">Edit</button></h2>` +
		`<div class="page-break-marker" data-break-index="1"><span class="page-break-label">Page Break 1</span></div>` +
		`<p>Kept content</p>` +
		`</div></body></html>`

	clean, err := Sanitize(html)
	require.NoError(t, err)

	assert.Contains(t, clean, "Kept content")
	assert.Contains(t, clean, "Experience")
	assert.False(t, strings.Contains(clean, "edit-section"))
	assert.False(t, strings.Contains(clean, "page-break-marker"))
	assert.False(t, strings.Contains(clean, "Page Break 1"))
}
