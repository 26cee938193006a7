package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventSource is the blocking event feed, satisfied by tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Poll reads events until the source closes, sending translated intents to out
// Runs on its own goroutine; onCrash restores the terminal if the loop panics
func Poll(src EventSource, t *Translator, out chan<- Intent, onCrash func(any)) {
	defer func() {
		if r := recover(); r != nil {
			if onCrash != nil {
				onCrash(r)
				return
			}
			panic(r)
		}
	}()

	for {
		ev := src.PollEvent()
		// nil after screen Fini
		if ev == nil {
			close(out)
			return
		}
		if it, ok := t.Translate(ev); ok {
			out <- it
		}
	}
}
