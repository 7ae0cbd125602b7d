// Package pagination estimates where printed page boundaries fall in a
// rendered resume. The estimate is a plain height division: it does not
// split mid-element, so the authoritative pagination decision stays with
// the external PDF renderer. Break markers are a visual guide only.
package pagination

import "fmt"

// A4 geometry at the 96 DPI the preview renders at.
const (
	// PageContentHeight is the A4 page height in pixels (297mm at 96 DPI).
	PageContentHeight = 1123

	// PagePadding is applied top and bottom of each page in the viewer.
	PagePadding = 45

	// PageHeight is the full per-page height in the viewer.
	PageHeight = PageContentHeight + 2*PagePadding
)

// Break describes one page-break marker: its 1-based page index, the
// vertical pixel offset where the marker is drawn, and its display label.
type Break struct {
	Index  int    `json:"index"`
	Offset int    `json:"offset"`
	Label  string `json:"label"`
}

// Breaks computes the break markers for content of the given measured pixel
// height against the default A4 page height.
func Breaks(measuredHeight int) []Break {
	return BreaksForPage(measuredHeight, PageHeight)
}

// BreaksForPage computes break markers for an arbitrary page height.
// count = floor(height/pageHeight); break i sits at offset i*pageHeight.
// Content shorter than one page yields no breaks, as does a zero or
// negative measurement (an unmounted or empty container measures 0).
func BreaksForPage(measuredHeight, pageHeight int) []Break {
	if measuredHeight <= 0 || pageHeight <= 0 {
		return nil
	}

	count := measuredHeight / pageHeight
	if count == 0 {
		return nil
	}

	breaks := make([]Break, 0, count)
	for i := 1; i <= count; i++ {
		breaks = append(breaks, Break{
			Index:  i,
			Offset: i * pageHeight,
			Label:  fmt.Sprintf("Page Break %d", i),
		})
	}
	return breaks
}

// PageCount returns the number of pages the measured height spans, always
// at least 1 for positive heights.
func PageCount(measuredHeight int) int {
	if measuredHeight <= 0 {
		return 0
	}
	return len(Breaks(measuredHeight)) + 1
}
