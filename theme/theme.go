package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Line   rune // ─ staff line
	Ledger rune // ─ ledger tick
	Note   rune // ● note head
	Cursor rune // ◉ next expected note
	Clef   rune // ┃ clef bar
}

// Fixed feedback colors, shared with the Launchpad LEDs
var (
	CorrectRGB = RGB{0, 255, 0}
	WrongRGB   = RGB{255, 0, 0}
	CursorRGB  = RGB{0, 0, 255}
)

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Line:   '─',
			Ledger: '─',
			Note:   '●',
			Cursor: '◉',
			Clef:   '┃',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deep purple
	RoleMuted   = 0.2 // purple-magenta
	RoleFG      = 0.4 // pink-purple (readable)
	RoleAccent  = 0.5 // vivid magenta
	RoleWarning = 0.8 // orange
	RoleSuccess = 1.0 // bright yellow
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Correct() lipgloss.Color {
	return rgbToLipgloss(CorrectRGB)
}

func (t *Theme) Wrong() lipgloss.Color {
	return rgbToLipgloss(WrongRGB)
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(CursorRGB)
}

// Feedback returns the correct/wrong color
func (t *Theme) Feedback(correct bool) lipgloss.Color {
	if correct {
		return t.Correct()
	}
	return t.Wrong()
}

// RGB returns raw RGB for any normalized value (for Launchpad)
func (t *Theme) RGB(norm float64) RGB {
	return t.Palette.Lookup(norm)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
