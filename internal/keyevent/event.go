package keyevent

import "strconv"

// Kind classifies an Event.
type Kind uint8

const (
	KindKeyDown Kind = iota + 1
)

func (k Kind) String() string {
	if k == KindKeyDown {
		return "KeyDown"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is a translated key press. It is passed by value, so a produced event
// cannot be changed by anyone else.
type Event struct {
	Kind Kind
	Key  Key
	Mod  Mod
	// Char is the character the host reported for the keystroke, or "".
	Char string
}

// String renders e for diagnostics, e.g. `KeyDown Shift+Up ""`.
func (e Event) String() string {
	key := e.Key.String()
	if e.Mod != ModNone {
		key = e.Mod.String() + "+" + key
	}
	return e.Kind.String() + " " + key + " " + strconv.Quote(e.Char)
}
