package pagination

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultMeasureTimeout bounds one headless-browser measurement.
const DefaultMeasureTimeout = 30 * time.Second

// Measurer obtains the live pixel height of rendered HTML. Implementations
// must run a real layout pass; the break math is meaningless against an
// analytically guessed height.
type Measurer interface {
	MeasureHeight(ctx context.Context, html string) (int, error)
}

// BrowserMeasurer measures rendered content height in headless Chrome.
// Requires Chrome/Chromium on the system; CHROME_PATH overrides discovery.
type BrowserMeasurer struct {
	Timeout time.Duration
	Verbose bool
}

// NewBrowserMeasurer creates a measurer with the default timeout.
func NewBrowserMeasurer() *BrowserMeasurer {
	return &BrowserMeasurer{Timeout: DefaultMeasureTimeout}
}

// MeasureHeight loads the HTML in a headless browser, waits for layout to
// settle, and returns document.body.scrollHeight in pixels.
func (m *BrowserMeasurer) MeasureHeight(ctx context.Context, html string) (int, error) {
	if m.Verbose {
		log.Printf("[MEASURE] Starting headless browser measurement (%d bytes of HTML)", len(html))
	}

	// Navigating a file URL keeps relative asset references working and
	// avoids data-URL length limits for large resumes.
	tmpDir, err := os.MkdirTemp("", "resume-measure-")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write measurement page: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := m.Timeout
	if timeout <= 0 {
		timeout = DefaultMeasureTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var height int
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.body ? document.body.scrollHeight : 0`, &height),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to measure rendered height: %w", err)
	}

	if m.Verbose {
		log.Printf("[MEASURE] Rendered height: %dpx", height)
	}
	return height, nil
}
