package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentMute   // m
	IntentVolume // + and -, DX carries the direction
	IntentResize // Terminal resize event

	// Match control
	IntentRestart // r, or a click once the match is over
	IntentPause   // p, Space
	IntentSwitch  // Tab

	// Pointer
	IntentPointer // Mouse press, drag or release
	IntentNudge   // Arrow keys
)

var intentNames = map[IntentType]string{
	IntentNone:    "none",
	IntentQuit:    "quit",
	IntentMute:    "mute",
	IntentVolume:  "volume",
	IntentResize:  "resize",
	IntentRestart: "restart",
	IntentPause:   "pause",
	IntentSwitch:  "switch",
	IntentPointer: "pointer",
	IntentNudge:   "nudge",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent represents a translated terminal event
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType

	// Pointer: screen cell and button state
	Col     int
	Row     int
	Active  bool // Button held
	Pressed bool // Button went down with this event

	// Nudge: direction in cells
	DX int
	DY int

	// Resize: screen size in cells
	Width  int
	Height int
}

// IsInteraction reports whether the intent came from the player's hands
// Resize and release events do not count
func (i Intent) IsInteraction() bool {
	switch i.Type {
	case IntentNone, IntentResize:
		return false
	case IntentPointer:
		return i.Pressed
	default:
		return true
	}
}
