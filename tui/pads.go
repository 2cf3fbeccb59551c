package tui

import (
	"staff-trainer/midi"
	"staff-trainer/theme"
	"staff-trainer/trainer"
)

// Launchpad layout: letters along the bottom row, courses along the top
// grid row, round progress up the scene column.
const (
	letterPadRow = 0
	coursePadRow = 7
	sceneCol     = 8
)

var dimWhite = [3]uint8{60, 60, 60}

// padLabel maps a pad press to the button label it stands for
func padLabel(ev midi.PadEvent) (string, bool) {
	switch ev.Row {
	case letterPadRow:
		if ev.Col >= 0 && ev.Col < len(trainer.Alphabet) {
			return string(trainer.Alphabet[ev.Col]), true
		}
	case coursePadRow:
		courses := trainer.Courses()
		if ev.Col >= 0 && ev.Col < len(courses) {
			return courses[ev.Col].String(), true
		}
	}
	return "", false
}

// padLEDs renders the trainer state onto the Launchpad grid
func padLEDs(t *trainer.Trainer, th *theme.Theme) []midi.LEDUpdate {
	var updates []midi.LEDUpdate

	last, answered := t.Last()
	for col, letter := range trainer.Alphabet {
		color := dimWhite
		if answered && last.Expected() == letter {
			color = [3]uint8(theme.WrongRGB)
			if last.Correct() {
				color = [3]uint8(theme.CorrectRGB)
			}
		}
		updates = append(updates, midi.LEDUpdate{Row: letterPadRow, Col: col, Color: color})
	}

	for col, c := range trainer.Courses() {
		color := [3]uint8(th.RGB(theme.RoleMuted))
		if !t.Demo() && c == t.Course() {
			color = [3]uint8(th.RGB(theme.RoleAccent))
		}
		updates = append(updates, midi.LEDUpdate{Row: coursePadRow, Col: col, Color: color})
	}

	lit := 0
	if t.Len() > 0 {
		lit = t.Next() * 8 / t.Len()
	}
	for row := 0; row < 8; row++ {
		var color [3]uint8
		if row < lit {
			color = [3]uint8(th.RGB(theme.RoleSuccess))
		}
		ch := midi.ChannelStatic
		if t.Complete() {
			ch = midi.ChannelPulse
		}
		updates = append(updates, midi.LEDUpdate{Row: row, Col: sceneCol, Color: color, Channel: ch})
	}
	return updates
}
