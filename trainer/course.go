package trainer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCourse is returned for labels that name no course.
var ErrUnknownCourse = errors.New("unknown course")

// Course is a training mode constraining which pitches get drilled.
type Course int

const (
	TrebleLines Course = iota
	TrebleSpaces
	TrebleAll
	BassLines
	BassSpaces
	BassAll
	All
)

var courseLabels = [...]string{
	TrebleLines:  "TrebleLines",
	TrebleSpaces: "TrebleSpaces",
	TrebleAll:    "TrebleAll",
	BassLines:    "BassLines",
	BassSpaces:   "BassSpaces",
	BassAll:      "BassAll",
	All:          "All",
}

var (
	linePitches  = []Pitch{0, 2, 4, 6, 8, 10, 12}
	spacePitches = []Pitch{1, 3, 5, 7, 9, 11}
)

// Courses returns every course in display order.
func Courses() []Course {
	return []Course{TrebleLines, TrebleSpaces, TrebleAll, BassLines, BassSpaces, BassAll, All}
}

func (c Course) String() string {
	if c < 0 || int(c) >= len(courseLabels) {
		return fmt.Sprintf("Course(%d)", int(c))
	}
	return courseLabels[c]
}

// ParseCourse maps a display label back to its course. Case is ignored.
func ParseCourse(label string) (Course, error) {
	label = strings.TrimSpace(label)
	for _, c := range Courses() {
		if strings.EqualFold(c.String(), label) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCourse, label)
}

// Rand is the randomness a course samples from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Sample draws one pitch following the course's rule.
func (c Course) Sample(rng Rand) Pitch {
	switch c {
	case TrebleLines:
		return choose(rng, linePitches)
	case TrebleSpaces:
		return choose(rng, spacePitches)
	case TrebleAll:
		return Pitch(rng.IntN(13))
	case BassLines:
		return -choose(rng, linePitches)
	case BassSpaces:
		return -choose(rng, spacePitches)
	case BassAll:
		return -Pitch(rng.IntN(13))
	default:
		return Pitch(rng.IntN(25) - 12)
	}
}

// Pitches lists every pitch the course can produce, ascending.
func (c Course) Pitches() []Pitch {
	switch c {
	case TrebleLines:
		return append([]Pitch(nil), linePitches...)
	case TrebleSpaces:
		return append([]Pitch(nil), spacePitches...)
	case TrebleAll:
		return pitchRange(0, 12)
	case BassLines:
		return negate(linePitches)
	case BassSpaces:
		return negate(spacePitches)
	case BassAll:
		return pitchRange(-12, 0)
	default:
		return pitchRange(-12, 12)
	}
}

func choose(rng Rand, set []Pitch) Pitch {
	return set[rng.IntN(len(set))]
}

func pitchRange(lo, hi Pitch) []Pitch {
	out := make([]Pitch, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	return out
}

func negate(set []Pitch) []Pitch {
	out := make([]Pitch, len(set))
	for i, p := range set {
		out[len(set)-1-i] = -p
	}
	return out
}
