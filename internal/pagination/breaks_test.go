package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaksForPage_Determinism(t *testing.T) {
	breaks := BreaksForPage(3000, 1213)
	require.Len(t, breaks, 2)

	assert.Equal(t, 1, breaks[0].Index)
	assert.Equal(t, 1213, breaks[0].Offset)
	assert.Equal(t, "Page Break 1", breaks[0].Label)

	assert.Equal(t, 2, breaks[1].Index)
	assert.Equal(t, 2426, breaks[1].Offset)
	assert.Equal(t, "Page Break 2", breaks[1].Label)
}

func TestBreaksForPage_ZeroBreakBoundary(t *testing.T) {
	assert.Empty(t, BreaksForPage(1000, 1213))
	assert.Empty(t, BreaksForPage(1212, 1213))
}

func TestBreaksForPage_SilentOnMissingContainer(t *testing.T) {
	// A missing or zero container measures 0; no error, no breaks.
	assert.Empty(t, BreaksForPage(0, 1213))
	assert.Empty(t, BreaksForPage(-50, 1213))
	assert.Empty(t, BreaksForPage(3000, 0))
}

func TestBreaksForPage_ExactMultiple(t *testing.T) {
	breaks := BreaksForPage(2426, 1213)
	require.Len(t, breaks, 2)
	assert.Equal(t, 2426, breaks[1].Offset)
}

func TestBreaks_UsesA4PageHeight(t *testing.T) {
	assert.Equal(t, 1213, PageHeight)

	breaks := Breaks(3 * PageHeight)
	require.Len(t, breaks, 3)
	for i, b := range breaks {
		assert.Equal(t, (i+1)*PageHeight, b.Offset)
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(500))
	assert.Equal(t, 3, PageCount(2*PageHeight + 100))
}

func TestMarkersHTML(t *testing.T) {
	html, err := MarkersHTML(Breaks(3000))
	require.NoError(t, err)

	assert.Contains(t, html, `data-break-index="1"`)
	assert.Contains(t, html, `data-break-index="2"`)
	assert.Contains(t, html, "top:1213px")
	assert.Contains(t, html, "top:2426px")
	assert.Contains(t, html, "Page Break 1")
	assert.Equal(t, 2, strings.Count(html, "page-break-marker"))
}

func TestMarkersHTML_Empty(t *testing.T) {
	html, err := MarkersHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, html)
}
