// Package view holds the keyboard-driven views of the accessible front-end and
// the shell that routes translated key events to them.
package view

import (
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

// View is one screen of the front-end.
type View interface {
	// Title is announced when the view becomes active.
	Title() string
	// HandleKey reports whether the view consumed ev.
	HandleKey(s *Shell, ev keyevent.Event) bool
}

// Activator is implemented by views that announce more than their title
// when they gain focus.
type Activator interface {
	Activate(s *Shell)
}

// Gameplay receives key events no view consumed.
type Gameplay interface {
	HandleEvents(batch []keyevent.Event)
}

// GameplayFunc adapts a function to Gameplay.
type GameplayFunc func(batch []keyevent.Event)

func (f GameplayFunc) HandleEvents(batch []keyevent.Event) { f(batch) }
