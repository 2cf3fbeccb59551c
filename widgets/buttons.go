package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a clickable label; Hint is drawn before it (e.g. its hotkey)
type Button struct {
	Label string
	Hint  string
}

// Span is the column range [Start, End) a rendered button occupies
type Span struct {
	Start, End int
	Label      string
}

// Contains reports whether column x falls on the span
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// RenderButtonRow draws buttons left to right separated by gap columns.
// The button at active uses activeStyle; pass -1 for none.
func RenderButtonRow(buttons []Button, style, activeStyle lipgloss.Style, active, gap int) (string, []Span) {
	var out strings.Builder
	spans := make([]Span, 0, len(buttons))
	x := 0
	for i, b := range buttons {
		if i > 0 {
			out.WriteString(strings.Repeat(" ", gap))
			x += gap
		}
		text := b.Label
		if b.Hint != "" {
			text = b.Hint + " " + b.Label
		}
		st := style
		if i == active {
			st = activeStyle
		}
		cell := st.Render(text)
		w := lipgloss.Width(cell)
		spans = append(spans, Span{Start: x, End: x + w, Label: b.Label})
		out.WriteString(cell)
		x += w
	}
	return out.String(), spans
}

// HitTest returns the label of the span under column x
func HitTest(spans []Span, x int) (string, bool) {
	for _, s := range spans {
		if s.Contains(x) {
			return s.Label, true
		}
	}
	return "", false
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderKeyLine formats key bindings on one line: "key:desc  key:desc"
func RenderKeyLine(keys []KeyBinding) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.Key + ":" + k.Desc
	}
	return strings.Join(parts, "  ")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
