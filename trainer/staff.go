package trainer

// Alphabet is the diatonic cycle; index 0 is pitch 0.
var Alphabet = [7]rune{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

// Clef anchor lines
const (
	TrebleClefPitch Pitch = 4  // G line
	BassClefPitch   Pitch = -4 // F line
)

// Layout holds the staff geometry the offsets are computed from.
// Vertical offsets grow upward with pitch.
type Layout struct {
	StaffX      float64 // left edge of the staff
	StaffY      float64 // y of pitch 0
	StaffWidth  float64
	SpaceY      float64 // distance between adjacent staff lines
	NoteX       float64 // left margin before the first note
	RightMargin float64
}

// DefaultLayout is the pixel geometry of the graphical staff.
var DefaultLayout = Layout{
	StaffX:      -600,
	StaffY:      40,
	StaffWidth:  1200,
	SpaceY:      20,
	NoteX:       120,
	RightMargin: 40,
}

// NoteSpacing spreads count notes evenly across the staff.
func (l Layout) NoteSpacing(count int) float64 {
	segments := float64(count - 1)
	if segments < 1 {
		segments = 1
	}
	return (l.StaffWidth - l.NoteX - l.RightMargin) / segments
}

// HorizontalOffset returns the x of the note at index.
func (l Layout) HorizontalOffset(index int, spacing float64) float64 {
	return l.StaffX + l.NoteX + spacing*float64(index)
}

// VerticalOffset returns the y of pitch. Linear across staff and ledger lines.
func (l Layout) VerticalOffset(pitch Pitch) float64 {
	return l.StaffY + float64(pitch)*l.SpaceY/2
}

// LetterName returns the letter of pitch, wrapping negative pitches.
func LetterName(pitch Pitch) rune {
	n := Pitch(len(Alphabet))
	idx := pitch % n
	if idx < 0 {
		idx += n
	}
	return Alphabet[idx]
}

// IsLetter reports whether r is one of the seven pitch letters.
func IsLetter(r rune) bool {
	for _, l := range Alphabet {
		if l == r {
			return true
		}
	}
	return false
}

// StaffLines returns the pitches of the treble (2..10) and bass (-2..-10) lines.
func StaffLines() []Pitch {
	lines := make([]Pitch, 0, 10)
	for p := Pitch(2); p <= 10; p += 2 {
		lines = append(lines, p)
	}
	for p := Pitch(-2); p >= -10; p -= 2 {
		lines = append(lines, p)
	}
	return lines
}

// LedgerLines returns the pitches needing a short tick for a note at pitch.
// Pitch 0 always gets one (middle C between the clefs).
func LedgerLines(pitch Pitch) []Pitch {
	if pitch == 0 {
		return []Pitch{0}
	}
	var lines []Pitch
	for p := Pitch(12); p <= pitch; p += 2 {
		lines = append(lines, p)
	}
	for p := Pitch(-12); p >= pitch; p -= 2 {
		lines = append(lines, p)
	}
	return lines
}
