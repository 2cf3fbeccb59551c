package trainer

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestCourseLabelRoundTrip(t *testing.T) {
	for _, c := range Courses() {
		got, err := ParseCourse(c.String())
		if err != nil {
			t.Fatalf("ParseCourse(%q) error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCourse(%q) = %v, want %v", c, got, c)
		}
	}
}

func TestParseCourse(t *testing.T) {
	tests := []struct {
		label   string
		want    Course
		wantErr bool
	}{
		{"TrebleLines", TrebleLines, false},
		{"bassspaces", BassSpaces, false},
		{" All ", All, false},
		{"Alto", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseCourse(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCourse) {
					t.Fatalf("ParseCourse(%q) error = %v, want ErrUnknownCourse", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCourse(%q) error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseCourse(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestCoursesOrder(t *testing.T) {
	want := []string{"TrebleLines", "TrebleSpaces", "TrebleAll", "BassLines", "BassSpaces", "BassAll", "All"}
	var got []string
	for _, c := range Courses() {
		got = append(got, c.String())
	}
	if !slices.Equal(got, want) {
		t.Errorf("Courses() = %v, want %v", got, want)
	}
}

func TestCourseSampleWithinPitches(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, c := range Courses() {
		allowed := c.Pitches()
		seen := make(map[Pitch]bool)
		for i := 0; i < 2000; i++ {
			p := c.Sample(rng)
			if !slices.Contains(allowed, p) {
				t.Fatalf("%v sampled %d, not in %v", c, p, allowed)
			}
			seen[p] = true
		}
		if len(seen) != len(allowed) {
			t.Errorf("%v produced %d distinct pitches, want %d", c, len(seen), len(allowed))
		}
	}
}

func TestCoursePitches(t *testing.T) {
	tests := []struct {
		course Course
		want   []Pitch
	}{
		{TrebleLines, []Pitch{0, 2, 4, 6, 8, 10, 12}},
		{TrebleSpaces, []Pitch{1, 3, 5, 7, 9, 11}},
		{BassLines, []Pitch{-12, -10, -8, -6, -4, -2, 0}},
		{BassSpaces, []Pitch{-11, -9, -7, -5, -3, -1}},
	}

	for _, tt := range tests {
		if got := tt.course.Pitches(); !slices.Equal(got, tt.want) {
			t.Errorf("%v.Pitches() = %v, want %v", tt.course, got, tt.want)
		}
	}
	if n := len(All.Pitches()); n != 25 {
		t.Errorf("All has %d pitches, want 25", n)
	}
	if n := len(TrebleAll.Pitches()); n != 13 {
		t.Errorf("TrebleAll has %d pitches, want 13", n)
	}
}
