package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, ESC, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Simulation control
	IntentTogglePause // Space
	IntentClear       // c
	IntentLockHover   // l, toggles lock on the point under the cursor

	// Pointer
	IntentPress   // Mouse button went down
	IntentRelease // Mouse button went up
	IntentMove    // Cursor moved with no button change
)

// Button identifies a mouse button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Intent is a parsed input event; X, Y are cell coordinates (or new size on resize)
type Intent struct {
	Type   IntentType
	Button Button
	X, Y   int
}
