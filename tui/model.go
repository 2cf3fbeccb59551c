package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staff-trainer/debug"
	"staff-trainer/midi"
	"staff-trainer/theme"
	"staff-trainer/trainer"
	"staff-trainer/widgets"
)

const defaultWidth = 80

// layoutBounds holds the rows and spans of the clickable button rows,
// recorded by View for hit-testing mouse presses
type layoutBounds struct {
	courseRow   int
	letterRow   int
	courseSpans []widgets.Span
	letterSpans []widgets.Span
}

type Model struct {
	Trainer   *trainer.Trainer
	DeviceMgr *midi.DeviceManager // nil when MIDI is off
	Theme     *theme.Theme

	quitting    bool
	showHelp    bool
	width       int
	height      int
	status      string
	bounds      *layoutBounds
	controllers map[string]midi.Controller
	input       chan tea.Msg
}

type DeviceEventMsg midi.DeviceEvent

type padMsg struct {
	id string
	ev midi.PadEvent
}

type noteMsg struct {
	id string
	ev midi.NoteEvent
}

func NewModel(t *trainer.Trainer, deviceMgr *midi.DeviceManager, th *theme.Theme) Model {
	return Model{
		Trainer:     t,
		DeviceMgr:   deviceMgr,
		Theme:       th,
		width:       defaultWidth,
		bounds:      &layoutBounds{},
		controllers: make(map[string]midi.Controller),
		input:       make(chan tea.Msg, 32),
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func listenForInput(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// forward pipes controller input into ch until the controller closes
func forward(c midi.Controller, ch chan<- tea.Msg) {
	go func() {
		for ev := range c.PadEvents() {
			ch <- padMsg{id: c.ID(), ev: ev}
		}
	}()
	go func() {
		for ev := range c.NoteEvents() {
			ch <- noteMsg{id: c.ID(), ev: ev}
		}
	}()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{listenForInput(m.input)}
	if m.DeviceMgr != nil {
		cmds = append(cmds, ListenForDevices(m.DeviceMgr))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if label, ok := m.hitTest(msg.X, msg.Y); ok {
				m.press(label)
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case padMsg:
		if label, ok := padLabel(msg.ev); ok {
			debug.Log("launchpad", "%s pad %d,%d -> %s", msg.id, msg.ev.Row, msg.ev.Col, label)
			m.press(label)
		}
		return m, listenForInput(m.input)

	case noteMsg:
		if letter, ok := midi.NoteLetter(msg.ev.Note); ok {
			m.submit(letter)
		} else {
			debug.Log("keyboard", "%s ignored black key %d", msg.id, msg.ev.Note)
		}
		return m, listenForInput(m.input)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		switch event.Type {
		case midi.DeviceConnected:
			m.controllers[event.ID] = event.Controller
			forward(event.Controller, m.input)
			m.status = fmt.Sprintf("connected %s", event.ID)
			m.syncLEDs()
		case midi.DeviceDisconnected:
			delete(m.controllers, event.ID)
			m.status = fmt.Sprintf("disconnected %s", event.ID)
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6", "7":
		c := trainer.Courses()[int(key[0]-'1')]
		m.Trainer.SelectCourse(c)
		m.status = ""
		m.syncLEDs()

	case "?":
		m.showHelp = !m.showHelp

	case "enter", " ":
		if m.Trainer.Complete() {
			m.submit(' ')
		}

	default:
		if len(msg.Runes) == 1 {
			r := unicode.ToUpper(msg.Runes[0])
			if trainer.IsLetter(r) {
				m.submit(r)
			}
		}
	}
	return m, nil
}

func (m *Model) submit(r rune) {
	m.Trainer.SubmitKey(r)
	m.status = ""
	m.syncLEDs()
}

// press routes a button label: a letter answers, a course label selects
func (m *Model) press(label string) {
	if err := m.Trainer.Press(label); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.syncLEDs()
}

func (m *Model) syncLEDs() {
	if len(m.controllers) == 0 {
		return
	}
	updates := padLEDs(m.Trainer, m.Theme)
	for id, c := range m.controllers {
		if c.Type() != midi.ControllerLaunchpad {
			continue
		}
		if err := c.SetLEDBatch(updates); err != nil {
			debug.Log("launchpad", "%s: %v", id, err)
		}
	}
}

func (m Model) hitTest(x, y int) (string, bool) {
	switch y {
	case m.bounds.courseRow:
		return widgets.HitTest(m.bounds.courseSpans, x)
	case m.bounds.letterRow:
		return widgets.HitTest(m.bounds.letterSpans, x)
	}
	return "", false
}

func (m Model) header() string {
	t := m.Trainer
	course := t.Course().String()
	if t.Demo() {
		course = "demo"
	}
	correct, answered := t.Score()

	progress := fmt.Sprintf("note %d/%d", t.Next()+1, t.Len())
	if t.Complete() {
		progress = "round complete, any key for next"
	}

	size := ""
	if m.height > 0 {
		size = fmt.Sprintf("  %dx%d", m.width, m.height)
	}
	return fmt.Sprintf("staff-trainer  %s  %s  score %d/%d  round %d%s",
		course, progress, correct, answered, t.Round(), size)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	buttonStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Padding(0, 1)
	activeStyle := buttonStyle.Background(m.Theme.Accent()).Foreground(m.Theme.BG())
	statusStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	courseButtons := make([]widgets.Button, 0, len(trainer.Courses()))
	active := -1
	for i, c := range trainer.Courses() {
		courseButtons = append(courseButtons, widgets.Button{Label: c.String(), Hint: fmt.Sprint(i + 1)})
		if !m.Trainer.Demo() && c == m.Trainer.Course() {
			active = i
		}
	}
	letterButtons := make([]widgets.Button, 0, len(trainer.Alphabet))
	for _, l := range trainer.Alphabet {
		letterButtons = append(letterButtons, widgets.Button{Label: string(l)})
	}

	courseRow, courseSpans := widgets.RenderButtonRow(courseButtons, buttonStyle, activeStyle, active, 1)
	letterRow, letterSpans := widgets.RenderButtonRow(letterButtons, buttonStyle.Padding(0, 2), activeStyle, -1, 1)

	help := widgets.RenderKeyLine([]widgets.KeyBinding{
		{Key: "c-b", Desc: "answer"},
		{Key: "1-7", Desc: "course"},
		{Key: "enter", Desc: "next round"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	})
	if m.showHelp {
		help = widgets.RenderKeyHelp(helpSections)
	}
	help = dimStyle.Render(help)

	// Build output, tracking rows for hit-testing
	var lines []string
	add := func(block string) int {
		row := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		return row
	}

	add("")
	add(headerStyle.Render(m.header()))
	add("")
	add(renderStaff(m.Trainer.Notes(), m.Trainer.Next(), m.width, m.Theme))
	add("")
	m.bounds.courseRow = add(courseRow)
	m.bounds.courseSpans = courseSpans
	add("")
	m.bounds.letterRow = add(letterRow)
	m.bounds.letterSpans = letterSpans
	add("")
	add(help)
	if m.status != "" {
		add(statusStyle.Render(m.status))
	}

	return strings.Join(lines, "\n")
}

var helpSections = []widgets.KeySection{
	{Title: "Answer", Keys: []widgets.KeyBinding{
		{Key: "c d e f g a b", Desc: "name the note under the cursor"},
		{Key: "click", Desc: "letter button"},
		{Key: "keyboard", Desc: "white key on a MIDI keyboard"},
		{Key: "launchpad", Desc: "bottom row pads, C to B"},
	}},
	{Title: "Courses", Keys: []widgets.KeyBinding{
		{Key: "1-7", Desc: "select course"},
		{Key: "click", Desc: "course button"},
		{Key: "launchpad", Desc: "top grid row pads"},
	}},
	{Title: "Rounds", Keys: []widgets.KeyBinding{
		{Key: "enter/space", Desc: "next round once complete"},
		{Key: "?", Desc: "toggle this help"},
		{Key: "q", Desc: "quit"},
	}},
}
