package trainer

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7+1))
		for _, c := range Courses() {
			notes := Generate(c, DefaultNotes, rng)
			if len(notes) != DefaultNotes {
				t.Fatalf("Generate(%v) returned %d notes", c, len(notes))
			}
			lo, hi := Pitch(-12), Pitch(12)
			for i, n := range notes {
				if n.Index != i {
					t.Fatalf("note %d has index %d", i, n.Index)
				}
				if n.Answered() {
					t.Fatalf("note %d already pressed %q", i, n.Pressed)
				}
				if n.Pitch < lo || n.Pitch > hi {
					t.Fatalf("%v pitch %d out of range", c, n.Pitch)
				}
			}
		}
	}
}

func TestGenerateParity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	tests := []struct {
		course Course
		even   bool
		sign   int
	}{
		{TrebleLines, true, 1},
		{TrebleSpaces, false, 1},
		{BassLines, true, -1},
		{BassSpaces, false, -1},
	}

	for _, tt := range tests {
		for _, n := range Generate(tt.course, MaxNotes, rng) {
			if even := n.Pitch%2 == 0; even != tt.even {
				t.Fatalf("%v pitch %d parity even=%v", tt.course, n.Pitch, even)
			}
			if int(n.Pitch)*tt.sign < 0 {
				t.Fatalf("%v pitch %d has wrong sign", tt.course, n.Pitch)
			}
		}
	}
}

func TestGenerateCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	if n := len(Generate(All, MaxNotes, rng)); n != MaxNotes {
		t.Fatalf("Generate at capacity returned %d notes", n)
	}
	if n := len(Generate(All, 0, rng)); n != 0 {
		t.Fatalf("Generate(0) returned %d notes", n)
	}

	for _, count := range []int{-1, MaxNotes + 1} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Generate(%d) did not panic", count)
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "staff capacity") {
					t.Errorf("Generate(%d) panicked with %v", count, r)
				}
			}()
			Generate(All, count, rng)
		}()
	}
}

func TestGenerateDemo(t *testing.T) {
	notes := GenerateDemo()
	if len(notes) != 25 {
		t.Fatalf("demo has %d notes, want 25", len(notes))
	}
	for i, n := range notes {
		if n.Index != i || n.Pitch != Pitch(i-20) {
			t.Fatalf("demo note %d = %+v", i, n)
		}
	}
}
