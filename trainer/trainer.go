package trainer

import (
	"unicode/utf8"

	"staff-trainer/debug"
)

// Trainer owns the live sequence and the cursor of the next expected note.
// It is not safe for concurrent use; the host loop is the single writer.
type Trainer struct {
	notes  []Note
	next   int
	course Course
	count  int
	rng    Rand
	demo   bool
	round  int
}

// New returns a trainer showing the demo scale. count is the number of notes
// per generated round; values below 1 fall back to DefaultNotes.
func New(rng Rand, count int) *Trainer {
	if count < 1 {
		count = DefaultNotes
	}
	return &Trainer{
		notes:  GenerateDemo(),
		course: All,
		count:  count,
		rng:    rng,
		demo:   true,
	}
}

// SelectCourse replaces the sequence with a fresh round of the course.
func (t *Trainer) SelectCourse(c Course) {
	t.notes = Generate(c, t.count, t.rng)
	t.next = 0
	t.course = c
	t.demo = false
	t.round++
	debug.Log("trainer", "round %d course=%s notes=%d", t.round, c, len(t.notes))
}

// SubmitKey records key for the note under the cursor and advances.
// Once the round is complete the key starts the next round instead.
// The zero rune marks unpressed notes and is ignored.
func (t *Trainer) SubmitKey(key rune) {
	if key == 0 {
		return
	}
	if t.Complete() {
		correct, answered := t.Score()
		debug.Log("trainer", "new round %s (last: %d/%d)", t.course, correct, answered)
		t.SelectCourse(t.course)
		return
	}
	t.notes[t.next].Pressed = key
	t.next++
}

// Press handles a button label: one rune is a key, anything longer a course.
// Unknown course labels return an error and leave the state untouched.
func (t *Trainer) Press(label string) error {
	if utf8.RuneCountInString(label) == 1 {
		r, _ := utf8.DecodeRuneInString(label)
		t.SubmitKey(r)
		return nil
	}
	c, err := ParseCourse(label)
	if err != nil {
		debug.Log("trainer", "press %q: %v", label, err)
		return err
	}
	t.SelectCourse(c)
	return nil
}

// Notes returns a copy of the sequence.
func (t *Trainer) Notes() []Note {
	return append([]Note(nil), t.notes...)
}

// Len returns the number of notes in the sequence.
func (t *Trainer) Len() int {
	return len(t.notes)
}

// Next returns the cursor; it equals Len once the round is complete.
func (t *Trainer) Next() int {
	return t.next
}

func (t *Trainer) Course() Course {
	return t.course
}

// Complete reports whether every note has been answered.
func (t *Trainer) Complete() bool {
	return t.next >= len(t.notes)
}

// Demo reports whether the startup scale is still showing.
func (t *Trainer) Demo() bool {
	return t.demo
}

// Round counts generated rounds since start; the demo is round 0.
func (t *Trainer) Round() int {
	return t.round
}

// Current returns the note under the cursor.
func (t *Trainer) Current() (Note, bool) {
	if t.Complete() {
		return Note{}, false
	}
	return t.notes[t.next], true
}

// Last returns the most recently answered note.
func (t *Trainer) Last() (Note, bool) {
	if t.next == 0 {
		return Note{}, false
	}
	return t.notes[t.next-1], true
}

// Score counts correct and answered notes of the live round.
func (t *Trainer) Score() (correct, answered int) {
	for _, n := range t.notes[:t.next] {
		answered++
		if n.Correct() {
			correct++
		}
	}
	return correct, answered
}
