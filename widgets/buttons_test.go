package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderButtonRowSpans(t *testing.T) {
	buttons := []Button{{Label: "C"}, {Label: "TrebleLines", Hint: "1"}, {Label: "All"}}
	plain := lipgloss.NewStyle().Padding(0, 1)
	row, spans := RenderButtonRow(buttons, plain, plain.Bold(true), 1, 2)

	if len(spans) != 3 {
		t.Fatalf("got %d spans", len(spans))
	}
	want := []Span{
		{Start: 0, End: 3, Label: "C"},
		{Start: 5, End: 20, Label: "TrebleLines"},
		{Start: 22, End: 27, Label: "All"},
	}
	for i, s := range spans {
		if s != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, s, want[i])
		}
	}
	if w := lipgloss.Width(row); w != 27 {
		t.Errorf("row width = %d, want 27", w)
	}
	if !strings.Contains(row, "1 TrebleLines") {
		t.Errorf("row %q missing hinted label", row)
	}
}

func TestHitTest(t *testing.T) {
	spans := []Span{{Start: 0, End: 3, Label: "C"}, {Start: 5, End: 8, Label: "D"}}

	tests := []struct {
		x     int
		want  string
		found bool
	}{
		{0, "C", true},
		{2, "C", true},
		{3, "", false},
		{5, "D", true},
		{8, "", false},
	}
	for _, tt := range tests {
		got, ok := HitTest(spans, tt.x)
		if got != tt.want || ok != tt.found {
			t.Errorf("HitTest(%d) = %q, %v, want %q, %v", tt.x, got, ok, tt.want, tt.found)
		}
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{{
		Title: "Answer",
		Keys:  []KeyBinding{{Key: "c-b", Desc: "name the note"}},
	}})
	if !strings.HasPrefix(out, "Answer\n") || !strings.Contains(out, "c-b") {
		t.Errorf("RenderKeyHelp = %q", out)
	}
	if got := RenderKeyLine([]KeyBinding{{"q", "quit"}, {"1-7", "course"}}); got != "q:quit  1-7:course" {
		t.Errorf("RenderKeyLine = %q", got)
	}
}
