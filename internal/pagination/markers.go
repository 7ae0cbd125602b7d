package pagination

import (
	"fmt"
	"html/template"
	"strings"
)

// markerTmpl renders one absolutely-positioned break overlay. The overlay
// never participates in content flow; it only paints a line and a label on
// top of the rendered resume.
var markerTmpl = template.Must(template.New("marker").Parse(
	`<div class="page-break-marker" data-break-index="{{.Index}}" style="position:absolute;left:0;right:0;top:{{.Offset}}px;">` +
		`<span class="page-break-label">{{.Label}}</span>` +
		`</div>` + "\n"))

// MarkersHTML renders the overlay markup for a set of breaks. An empty set
// renders to an empty string.
func MarkersHTML(breaks []Break) (string, error) {
	var sb strings.Builder
	for _, b := range breaks {
		if err := markerTmpl.Execute(&sb, b); err != nil {
			return "", fmt.Errorf("failed to render break marker %d: %w", b.Index, err)
		}
	}
	return sb.String(), nil
}
