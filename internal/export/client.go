package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRequestTimeout bounds one PDF generation request.
const DefaultRequestTimeout = 60 * time.Second

// insufficientCreditsMessage is the service's message field for the billing
// rejection case.
const insufficientCreditsMessage = "Insufficient credits"

// GenerateRequest is the payload for the external /generate-pdf endpoint.
type GenerateRequest struct {
	HTMLContent  string `json:"htmlContent"`
	MarginStatus bool   `json:"marginStatus"`
	ResumeName   string `json:"resumeName"`
}

// Renderer turns print-ready HTML into PDF bytes.
type Renderer interface {
	GeneratePDF(ctx context.Context, req GenerateRequest) ([]byte, error)
}

// Client calls the external PDF rendering service. The service runs a
// headless browser and owns the authoritative pagination decision; this
// client only ships markup and receives bytes.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the rendering service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// GeneratePDF posts the HTML snapshot and returns the PDF binary. A non-2xx
// response with the service's "Insufficient credits" message maps to
// ErrInsufficientCredits; other failures map to ServiceError.
func (c *Client) GeneratePDF(ctx context.Context, genReq GenerateRequest) ([]byte, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-pdf", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ExportError{Message: "pdf service request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeServiceError(resp)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ExportError{Message: "failed to read pdf response", Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &ExportError{Message: "pdf service returned an empty document"}
	}
	return pdf, nil
}

func decodeServiceError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	if message == insufficientCreditsMessage {
		return ErrInsufficientCredits
	}
	return &ServiceError{StatusCode: resp.StatusCode, Message: message}
}
