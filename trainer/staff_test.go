package trainer

import (
	"slices"
	"testing"
)

func TestLetterName(t *testing.T) {
	tests := []struct {
		pitch Pitch
		want  rune
	}{
		{0, 'C'},
		{1, 'D'},
		{4, 'G'},
		{6, 'B'},
		{7, 'C'},
		{-1, 'B'},
		{-4, 'F'},
		{-7, 'C'},
		{-20, 'D'},
		{24, 'F'},
	}

	for _, tt := range tests {
		if got := LetterName(tt.pitch); got != tt.want {
			t.Errorf("LetterName(%d) = %q, want %q", tt.pitch, got, tt.want)
		}
	}
}

func TestLetterNamePeriodic(t *testing.T) {
	for p := Pitch(-40); p <= 40; p++ {
		got := LetterName(p)
		if !IsLetter(got) {
			t.Fatalf("LetterName(%d) = %q, not a pitch letter", p, got)
		}
		if next := LetterName(p + 7); next != got {
			t.Fatalf("LetterName(%d) = %q, LetterName(%d) = %q", p, got, p+7, next)
		}
	}
}

func TestNoteSpacing(t *testing.T) {
	l := DefaultLayout
	usable := l.StaffWidth - l.NoteX - l.RightMargin

	tests := []struct {
		count int
		want  float64
	}{
		{0, usable},
		{1, usable},
		{2, usable},
		{16, usable / 15},
		{30, usable / 29},
	}

	for _, tt := range tests {
		if got := l.NoteSpacing(tt.count); got != tt.want {
			t.Errorf("NoteSpacing(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestOffsets(t *testing.T) {
	l := DefaultLayout

	if got := l.HorizontalOffset(0, 50); got != -480 {
		t.Errorf("HorizontalOffset(0) = %v, want -480", got)
	}
	if got := l.HorizontalOffset(3, 50); got != -330 {
		t.Errorf("HorizontalOffset(3) = %v, want -330", got)
	}

	// Linear across the staff/ledger boundary
	for p := Pitch(-24); p < 24; p++ {
		step := l.VerticalOffset(p+1) - l.VerticalOffset(p)
		if step != l.SpaceY/2 {
			t.Fatalf("VerticalOffset step at %d = %v, want %v", p, step, l.SpaceY/2)
		}
	}
	if got := l.VerticalOffset(0); got != 40 {
		t.Errorf("VerticalOffset(0) = %v, want 40", got)
	}
	if got := l.VerticalOffset(-3); got != 10 {
		t.Errorf("VerticalOffset(-3) = %v, want 10", got)
	}
}

func TestLedgerLines(t *testing.T) {
	tests := []struct {
		pitch Pitch
		want  []Pitch
	}{
		{0, []Pitch{0}},
		{1, nil},
		{10, nil},
		{-10, nil},
		{11, nil},
		{12, []Pitch{12}},
		{13, []Pitch{12}},
		{16, []Pitch{12, 14, 16}},
		{-12, []Pitch{-12}},
		{-15, []Pitch{-12, -14}},
		{-20, []Pitch{-12, -14, -16, -18, -20}},
	}

	for _, tt := range tests {
		if got := LedgerLines(tt.pitch); !slices.Equal(got, tt.want) {
			t.Errorf("LedgerLines(%d) = %v, want %v", tt.pitch, got, tt.want)
		}
	}
}

func TestStaffLines(t *testing.T) {
	want := []Pitch{2, 4, 6, 8, 10, -2, -4, -6, -8, -10}
	if got := StaffLines(); !slices.Equal(got, want) {
		t.Errorf("StaffLines() = %v, want %v", got, want)
	}
	if LetterName(TrebleClefPitch) != 'G' || LetterName(BassClefPitch) != 'F' {
		t.Errorf("clef anchors = %q/%q, want G/F", LetterName(TrebleClefPitch), LetterName(BassClefPitch))
	}
}
