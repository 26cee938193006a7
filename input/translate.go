package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator converts tcell events into intents
// It tracks the primary button so presses and releases are reported as edges
type Translator struct {
	keys       *KeyTable
	buttonDown bool
}

// NewTranslator creates a translator, nil keys selects the default table
func NewTranslator(keys *KeyTable) *Translator {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Translator{keys: keys}
}

// Translate returns the intent for an event, false when the event is ignored
func (t *Translator) Translate(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := t.keys.Lookup(ev)
		if !ok {
			return Intent{}, false
		}
		return Intent{Type: entry.IntentType, DX: entry.DX, DY: entry.DY}, true

	case *tcell.EventMouse:
		return t.translateMouse(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}, true
	}
	return Intent{}, false
}

func (t *Translator) translateMouse(ev *tcell.EventMouse) (Intent, bool) {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	// Hover without a held button carries no pointer
	if !down && !t.buttonDown {
		return Intent{}, false
	}

	pressed := down && !t.buttonDown
	t.buttonDown = down
	return Intent{
		Type:    IntentPointer,
		Col:     col,
		Row:     row,
		Active:  down,
		Pressed: pressed,
	}, true
}
