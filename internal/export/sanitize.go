package export

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sanitize strips edit-mode decorations from an HTML snapshot: inline edit
// buttons and page-break overlays. The print render already omits these, but
// the exported document must never carry them, so the snapshot is scrubbed
// again before it leaves the process.
func Sanitize(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExportError{Message: "failed to parse export snapshot", Cause: err}
	}

	doc.Find("[data-edit-section]").Remove()
	doc.Find(".edit-section").Remove()
	doc.Find(".page-break-marker").Remove()

	out, err := doc.Html()
	if err != nil {
		return "", &ExportError{Message: "failed to serialize export snapshot", Cause: err}
	}
	return out, nil
}
