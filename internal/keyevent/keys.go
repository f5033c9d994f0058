// Package keyevent defines the canonical key event consumed by the gameplay
// layer and translates native window-toolkit key events into it.
package keyevent

import "strconv"

// Key is a canonical key identifier. Keys are only ever compared for equality.
type Key uint8

const (
	KeyNone Key = iota

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Special keys
	KeyReturn
	KeySpace
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Digits above the letters
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Letters, always in their lower-case form
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Numeric keypad
	KeyKp0
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpEnter
	KeyKpPlus
	KeyKpMinus
	KeyKpMultiply
	KeyKpDivide
	KeyKpDecimal

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone: "None",

	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",

	KeyReturn:    "Return",
	KeySpace:     "Space",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyInsert:    "Insert",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",

	KeyKp0: "Kp0", KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4",
	KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9",
	KeyKpEnter:    "KpEnter",
	KeyKpPlus:     "Kp+",
	KeyKpMinus:    "Kp-",
	KeyKpMultiply: "Kp*",
	KeyKpDivide:   "Kp/",
	KeyKpDecimal:  "Kp.",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// AllKeys returns every canonical key in declaration order, KeyNone excluded.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Digit returns the row digit key for n (0-9).
func Digit(n int) (Key, bool) {
	if n < 0 || n > 9 {
		return KeyNone, false
	}
	return Key0 + Key(n), true
}

// DigitValue reports the value of a row or keypad digit key.
func (k Key) DigitValue() (int, bool) {
	switch {
	case k >= Key0 && k <= Key9:
		return int(k - Key0), true
	case k >= KeyKp0 && k <= KeyKp9:
		return int(k - KeyKp0), true
	}
	return 0, false
}
