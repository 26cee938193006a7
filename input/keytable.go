package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes the intent produced by a key
type KeyEntry struct {
	IntentType IntentType
	DX, DY     int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyTab:    {IntentType: IntentSwitch},
			tcell.KeyUp:     {IntentType: IntentNudge, DY: -1},
			tcell.KeyDown:   {IntentType: IntentNudge, DY: 1},
			tcell.KeyLeft:   {IntentType: IntentNudge, DX: -1},
			tcell.KeyRight:  {IntentType: IntentNudge, DX: 1},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'r': {IntentType: IntentRestart},
			'p': {IntentType: IntentPause},
			' ': {IntentType: IntentPause},
			'm': {IntentType: IntentMute},
			'+': {IntentType: IntentVolume, DX: 1},
			'=': {IntentType: IntentVolume, DX: 1},
			'-': {IntentType: IntentVolume, DX: -1},
		},
	}
}

// Lookup resolves a key event against the table
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
