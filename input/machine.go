package input

import "github.com/gdamore/tcell/v2"

// Machine is the input state machine
// Parses tcell events into Intents; tracks held buttons to derive press/release edges
type Machine struct {
	held tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Parse converts a tcell event into zero or more intents
func (m *Machine) Parse(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.Key(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return m.Mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		w, h := ev.Size()
		return []Intent{{Type: IntentResize, X: w, Y: h}}
	}
	return nil
}

// Key maps a key press
func (m *Machine) Key(key tcell.Key, r rune, mod tcell.ModMask) []Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []Intent{{Type: IntentQuit}}
	case tcell.KeyRune:
	default:
		return nil
	}

	var t IntentType
	switch r {
	case 'q', 'Q':
		t = IntentQuit
	case ' ':
		t = IntentTogglePause
	case 'c', 'C':
		t = IntentClear
	case 'l', 'L':
		t = IntentLockHover
	case 'm', 'M':
		t = IntentToggleMute
	default:
		return nil
	}
	return []Intent{{Type: t}}
}

var buttonMap = [...]struct {
	mask   tcell.ButtonMask
	button Button
}{
	{tcell.ButtonPrimary, ButtonLeft},
	{tcell.ButtonSecondary, ButtonRight},
	{tcell.ButtonMiddle, ButtonMiddle},
}

// Mouse maps a mouse report, emitting releases before presses
func (m *Machine) Mouse(x, y int, buttons tcell.ButtonMask) []Intent {
	var out []Intent
	for _, b := range buttonMap {
		if m.held&b.mask != 0 && buttons&b.mask == 0 {
			out = append(out, Intent{Type: IntentRelease, Button: b.button, X: x, Y: y})
		}
	}
	for _, b := range buttonMap {
		if m.held&b.mask == 0 && buttons&b.mask != 0 {
			out = append(out, Intent{Type: IntentPress, Button: b.button, X: x, Y: y})
		}
	}
	m.held = buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	if len(out) == 0 {
		out = append(out, Intent{Type: IntentMove, X: x, Y: y})
	}
	return out
}

// Reset forgets held buttons
func (m *Machine) Reset() {
	m.held = tcell.ButtonNone
}
