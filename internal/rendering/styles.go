package rendering

import (
	"sort"
	"strings"
)

// Style is the per-template strategy object. Every visual template shares
// one section-render dispatcher; a Style only contributes typography,
// colors, and section-title treatment. Adding a template means adding a
// Style here, not copying the section loop.
type Style struct {
	Name          string
	DisplayName   string
	HeadingFont   string // falls back to the settings font when empty
	AccentColor   string
	RuleColor     string
	UppercaseHead bool // render section titles in uppercase
	CompactLayout bool // tighter margins and spacing
}

var styles = map[string]Style{
	"classic": {
		Name:        "classic",
		DisplayName: "Classic",
		AccentColor: "#1a1a1a",
		RuleColor:   "#1a1a1a",
	},
	"modern": {
		Name:          "modern",
		DisplayName:   "Modern",
		HeadingFont:   "Helvetica, Arial, sans-serif",
		AccentColor:   "#2563eb",
		RuleColor:     "#d1d5db",
		UppercaseHead: true,
	},
	"minimal": {
		Name:          "minimal",
		DisplayName:   "Minimal",
		AccentColor:   "#374151",
		RuleColor:     "#e5e7eb",
		CompactLayout: true,
	},
}

// DefaultStyle is used when settings carry no template name.
const DefaultStyle = "classic"

// StyleByName looks up a registered style.
func StyleByName(name string) (Style, error) {
	if name == "" {
		name = DefaultStyle
	}
	style, ok := styles[strings.ToLower(name)]
	if !ok {
		return Style{}, &UnknownStyleError{Name: name}
	}
	return style, nil
}

// StyleNames returns the registered style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SectionTitle applies the style's title treatment to a section label.
func (s Style) SectionTitle(label string) string {
	if s.UppercaseHead {
		return strings.ToUpper(label)
	}
	return label
}
