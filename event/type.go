package event

// Cue is feedback emitted by an editing action
type Cue int

const (
	// CuePlace: point inserted
	// Trigger: left click on empty space | Consumer: audio
	CuePlace Cue = iota

	// CueLink: link inserted
	// Trigger: drag released on another point | Consumer: audio
	CueLink

	// CueDelete: point (and its links) removed, or scene cleared
	// Trigger: right click on a point, clear key | Consumer: audio
	CueDelete

	// CueLock: lock flag toggled
	// Trigger: middle click or lock key on a point | Consumer: audio
	CueLock

	// CuePause: simulation paused or resumed
	// Trigger: space | Consumer: audio
	CuePause

	// CueReject: an edit was refused (self, duplicate or degenerate link)
	// Trigger: drag released on an invalid target | Consumer: audio
	CueReject
)

var cueNames = [...]string{"place", "link", "delete", "lock", "pause", "reject"}

// String returns the cue name
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}
