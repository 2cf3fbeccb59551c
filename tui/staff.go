package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"staff-trainer/theme"
	"staff-trainer/trainer"
)

type cellKind int

const (
	cellBlank cellKind = iota
	cellLine
	cellLedger
	cellClef
	cellNote
	cellCursor
	cellCorrect
	cellWrong
)

type cell struct {
	r    rune
	kind cellKind
}

// Terminal geometry: one row per pitch step, one column per cell
const (
	clefCols    = 6
	rightMargin = 3
	minPitchRow = trainer.Pitch(-13)
	maxPitchRow = trainer.Pitch(13)
)

// terminalLayout maps the staff onto width columns
func terminalLayout(width int) trainer.Layout {
	return trainer.Layout{
		StaffX:      0,
		StaffY:      0,
		StaffWidth:  float64(width),
		SpaceY:      2,
		NoteX:       clefCols,
		RightMargin: rightMargin,
	}
}

// pitchBounds returns the top and bottom pitch rows needed to show notes
func pitchBounds(notes []trainer.Note) (top, bottom trainer.Pitch) {
	top, bottom = maxPitchRow, minPitchRow
	for _, n := range notes {
		if n.Pitch+1 > top {
			top = n.Pitch + 1
		}
		if n.Pitch-1 < bottom {
			bottom = n.Pitch - 1
		}
	}
	return top, bottom
}

// staffGrid lays out staff lines, ledger ticks, clefs and notes.
// The last row holds the expected letter of every answered note.
func staffGrid(notes []trainer.Note, next int, layout trainer.Layout, sym theme.Symbols) [][]cell {
	width := int(layout.StaffWidth)
	top, bottom := pitchBounds(notes)
	rows := int(layout.VerticalOffset(top)-layout.VerticalOffset(bottom)) + 2

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' '}
		}
	}

	rowOf := func(p trainer.Pitch) int {
		return int(layout.VerticalOffset(top) - layout.VerticalOffset(p))
	}
	set := func(row, col int, r rune, kind cellKind) {
		if row >= 0 && row < rows && col >= 0 && col < width {
			grid[row][col] = cell{r: r, kind: kind}
		}
	}

	for _, p := range trainer.StaffLines() {
		for col := int(layout.StaffX); col < width; col++ {
			set(rowOf(p), col, sym.Line, cellLine)
		}
	}
	for p := trainer.Pitch(2); p <= 10; p++ {
		set(rowOf(p), 1, sym.Clef, cellClef)
		set(rowOf(-p), 1, sym.Clef, cellClef)
	}
	set(rowOf(trainer.TrebleClefPitch), 3, 'G', cellClef)
	set(rowOf(trainer.BassClefPitch), 3, 'F', cellClef)

	spacing := layout.NoteSpacing(len(notes))
	labels := rows - 1
	for _, n := range notes {
		col := int(math.Round(layout.HorizontalOffset(n.Index, spacing)))
		for _, p := range trainer.LedgerLines(n.Pitch) {
			for dx := -1; dx <= 1; dx++ {
				set(rowOf(p), col+dx, sym.Ledger, cellLedger)
			}
		}
		switch {
		case n.Index == next:
			set(rowOf(n.Pitch), col, sym.Cursor, cellCursor)
		default:
			set(rowOf(n.Pitch), col, sym.Note, cellNote)
		}
		if n.Index < next {
			kind := cellWrong
			if n.Correct() {
				kind = cellCorrect
			}
			set(labels, col, n.Expected(), kind)
		}
	}
	return grid
}

func cellStyles(th *theme.Theme) map[cellKind]lipgloss.Style {
	return map[cellKind]lipgloss.Style{
		cellBlank:   lipgloss.NewStyle(),
		cellLine:    lipgloss.NewStyle().Foreground(th.Muted()),
		cellLedger:  lipgloss.NewStyle().Foreground(th.Muted()),
		cellClef:    lipgloss.NewStyle().Foreground(th.Accent()),
		cellNote:    lipgloss.NewStyle().Foreground(th.FG()),
		cellCursor:  lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true),
		cellCorrect: lipgloss.NewStyle().Foreground(th.Feedback(true)).Bold(true),
		cellWrong:   lipgloss.NewStyle().Foreground(th.Feedback(false)).Bold(true),
	}
}

// renderStaff draws the grid, styling runs of equal cells together
func renderStaff(notes []trainer.Note, next, width int, th *theme.Theme) string {
	grid := staffGrid(notes, next, terminalLayout(width), th.Symbols)
	styles := cellStyles(th)

	lines := make([]string, len(grid))
	for i, row := range grid {
		var line strings.Builder
		for start := 0; start < len(row); {
			end := start
			var run strings.Builder
			for end < len(row) && row[end].kind == row[start].kind {
				run.WriteRune(row[end].r)
				end++
			}
			line.WriteString(styles[row[start].kind].Render(run.String()))
			start = end
		}
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}
