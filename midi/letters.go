package midi

// whiteKeys maps a pitch class to its letter; black keys are absent.
var whiteKeys = map[uint8]rune{
	0:  'C',
	2:  'D',
	4:  'E',
	5:  'F',
	7:  'G',
	9:  'A',
	11: 'B',
}

// NoteLetter returns the letter of a white-key MIDI note.
// Black keys carry an accidental and report false.
func NoteLetter(note uint8) (rune, bool) {
	r, ok := whiteKeys[note%12]
	return r, ok
}
