package trainer

import "fmt"

// Pitch is a diatonic step offset from middle C. One unit is half a staff space.
type Pitch int

const (
	MaxNotes     = 30 // staff capacity
	DefaultNotes = 16 // notes per generated round
)

// Note is one position of the active sequence.
type Note struct {
	Index   int
	Pitch   Pitch
	Pressed rune // 0 until answered
}

// Answered reports whether a key was recorded for the note.
func (n Note) Answered() bool {
	return n.Pressed != 0
}

// Expected returns the letter the user should press.
func (n Note) Expected() rune {
	return LetterName(n.Pitch)
}

// Correct reports whether the recorded key matches the note's letter.
func (n Note) Correct() bool {
	return n.Answered() && n.Pressed == n.Expected()
}

// Generate builds count notes sampled from the course.
// count outside 0..MaxNotes is a programming error and panics.
func Generate(course Course, count int, rng Rand) []Note {
	if count < 0 || count > MaxNotes {
		panic(fmt.Sprintf("trainer: %d notes outside staff capacity 0..%d", count, MaxNotes))
	}
	notes := make([]Note, 0, count)
	for i := 0; i < count; i++ {
		notes = append(notes, Note{Index: i, Pitch: course.Sample(rng)})
	}
	return notes
}

// GenerateDemo returns the fixed scale shown before any course is picked.
func GenerateDemo() []Note {
	var notes []Note
	for p := Pitch(-20); p < 5; p++ {
		notes = append(notes, Note{Index: len(notes), Pitch: p})
	}
	return notes
}
