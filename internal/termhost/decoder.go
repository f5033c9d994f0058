// Package termhost turns raw terminal input into native key events, so the
// shell can run on a plain terminal instead of a window toolkit.
package termhost

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

const esc = 0x1b

// Escape sequences without modifiers. CSI sequences carrying a modifier
// parameter (ESC [ 1 ; 5 A) are reduced to these forms before lookup.
var sequences = map[string]keyevent.HostKey{
	"\x1b[A": {Code: keyevent.HostUp},
	"\x1b[B": {Code: keyevent.HostDown},
	"\x1b[C": {Code: keyevent.HostRight},
	"\x1b[D": {Code: keyevent.HostLeft},
	"\x1b[H": {Code: keyevent.HostHome},
	"\x1b[F": {Code: keyevent.HostEnd},
	"\x1b[Z": {Code: keyevent.HostTab, Shift: true},
	"\x1b[P": {Code: keyevent.HostF1},
	"\x1b[Q": {Code: keyevent.HostF1 + 1},
	"\x1b[R": {Code: keyevent.HostF1 + 2},
	"\x1b[S": {Code: keyevent.HostF1 + 3},

	"\x1b[1~": {Code: keyevent.HostHome},
	"\x1b[2~": {Code: keyevent.HostInsert},
	"\x1b[3~": {Code: keyevent.HostDelete},
	"\x1b[4~": {Code: keyevent.HostEnd},
	"\x1b[5~": {Code: keyevent.HostPageUp},
	"\x1b[6~": {Code: keyevent.HostPageDown},
	"\x1b[7~": {Code: keyevent.HostHome},
	"\x1b[8~": {Code: keyevent.HostEnd},

	"\x1b[11~": {Code: keyevent.HostF1},
	"\x1b[12~": {Code: keyevent.HostF1 + 1},
	"\x1b[13~": {Code: keyevent.HostF1 + 2},
	"\x1b[14~": {Code: keyevent.HostF1 + 3},
	"\x1b[15~": {Code: keyevent.HostF1 + 4},
	"\x1b[17~": {Code: keyevent.HostF1 + 5},
	"\x1b[18~": {Code: keyevent.HostF1 + 6},
	"\x1b[19~": {Code: keyevent.HostF1 + 7},
	"\x1b[20~": {Code: keyevent.HostF1 + 8},
	"\x1b[21~": {Code: keyevent.HostF1 + 9},
	"\x1b[23~": {Code: keyevent.HostF1 + 10},
	"\x1b[24~": {Code: keyevent.HostF1 + 11},

	// SS3 forms: cursor keys in application mode, F1-F4, keypad
	"\x1bOA": {Code: keyevent.HostUp},
	"\x1bOB": {Code: keyevent.HostDown},
	"\x1bOC": {Code: keyevent.HostRight},
	"\x1bOD": {Code: keyevent.HostLeft},
	"\x1bOH": {Code: keyevent.HostHome},
	"\x1bOF": {Code: keyevent.HostEnd},
	"\x1bOP": {Code: keyevent.HostF1},
	"\x1bOQ": {Code: keyevent.HostF1 + 1},
	"\x1bOR": {Code: keyevent.HostF1 + 2},
	"\x1bOS": {Code: keyevent.HostF1 + 3},

	"\x1bOp": {Code: keyevent.HostNumpad0, Char: '0'},
	"\x1bOq": {Code: keyevent.HostNumpad0 + 1, Char: '1'},
	"\x1bOr": {Code: keyevent.HostNumpad0 + 2, Char: '2'},
	"\x1bOs": {Code: keyevent.HostNumpad0 + 3, Char: '3'},
	"\x1bOt": {Code: keyevent.HostNumpad0 + 4, Char: '4'},
	"\x1bOu": {Code: keyevent.HostNumpad0 + 5, Char: '5'},
	"\x1bOv": {Code: keyevent.HostNumpad0 + 6, Char: '6'},
	"\x1bOw": {Code: keyevent.HostNumpad0 + 7, Char: '7'},
	"\x1bOx": {Code: keyevent.HostNumpad0 + 8, Char: '8'},
	"\x1bOy": {Code: keyevent.HostNumpad0 + 9, Char: '9'},
	"\x1bOM": {Code: keyevent.HostNumpadEnter, Char: '\r'},
	"\x1bOk": {Code: keyevent.HostNumpadAdd, Char: '+'},
	"\x1bOm": {Code: keyevent.HostNumpadSubtract, Char: '-'},
	"\x1bOj": {Code: keyevent.HostNumpadMultiply, Char: '*'},
	"\x1bOo": {Code: keyevent.HostNumpadDivide, Char: '/'},
	"\x1bOn": {Code: keyevent.HostNumpadDecimal, Char: '.'},
}

// Decoder converts a byte stream from a terminal in raw mode into host key
// events. Sequences split across reads are carried over to the next Feed.
type Decoder struct {
	pending []byte
}

// Feed decodes p together with any bytes left over from the previous call.
// Unrecognized escape sequences are dropped.
func (d *Decoder) Feed(p []byte) []keyevent.HostKey {
	buf := append(d.pending, p...)
	keys, rest := Decode(buf)
	d.pending = append([]byte(nil), rest...)
	return keys
}

// Pending reports whether an incomplete sequence is buffered.
func (d *Decoder) Pending() bool { return len(d.pending) > 0 }

// Flush resolves whatever is buffered: a lone ESC becomes Escape, anything
// else is discarded.
func (d *Decoder) Flush() []keyevent.HostKey {
	defer func() { d.pending = nil }()
	if len(d.pending) > 0 && d.pending[0] == esc {
		return []keyevent.HostKey{{Code: keyevent.HostEscape}}
	}
	return nil
}

// Decode decodes as much of buf as forms complete keys and returns the
// incomplete tail.
func Decode(buf []byte) (keys []keyevent.HostKey, rest []byte) {
	for len(buf) > 0 {
		k, n, ok := decodeOne(buf)
		if n == 0 {
			return keys, buf
		}
		if ok {
			keys = append(keys, k)
		}
		buf = buf[n:]
	}
	return keys, nil
}

// decodeOne returns the key at the start of buf and the bytes it used.
// n == 0 means more input is needed; ok == false means the bytes are consumed
// without producing a key.
func decodeOne(buf []byte) (k keyevent.HostKey, n int, ok bool) {
	b := buf[0]
	if b != esc {
		return decodeChar(buf)
	}
	if len(buf) == 1 {
		return keyevent.HostKey{Code: keyevent.HostEscape}, 1, true
	}
	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		if len(buf) < 3 {
			return k, 0, false
		}
		k, ok = sequences[string(buf[:3])]
		return k, 3, ok
	case esc:
		return keyevent.HostKey{Code: keyevent.HostEscape}, 1, true
	}
	// ESC followed by a key is how terminals report Alt.
	k, n, ok = decodeChar(buf[1:])
	if n == 0 {
		return k, 0, false
	}
	k.Alt = true
	return k, n + 1, ok
}

func decodeCSI(buf []byte) (keyevent.HostKey, int, bool) {
	i := 2
	for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x3f {
		i++
	}
	if i >= len(buf) {
		return keyevent.HostKey{}, 0, false
	}
	final := buf[i]
	n := i + 1
	if final < 0x40 || final > 0x7e {
		// Malformed; drop the introducer and resync.
		return keyevent.HostKey{}, 2, false
	}

	params := string(buf[2:i])
	mod := 1
	if first, m, found := strings.Cut(params, ";"); found {
		v, err := strconv.Atoi(m)
		if err != nil {
			return keyevent.HostKey{}, n, false
		}
		mod = v
		params = first
		if final != '~' && params == "1" {
			params = ""
		}
	}

	k, ok := sequences["\x1b["+params+string(final)]
	if !ok {
		return k, n, false
	}
	if mod > 1 {
		bits := mod - 1
		k.Shift = k.Shift || bits&1 != 0
		k.Alt = bits&2 != 0
		k.Ctrl = bits&4 != 0
	}
	return k, n, true
}

func decodeChar(buf []byte) (keyevent.HostKey, int, bool) {
	b := buf[0]
	switch {
	case b == '\r' || b == '\n':
		return keyevent.HostKey{Code: keyevent.HostReturn, Char: '\r'}, 1, true
	case b == '\t':
		return keyevent.HostKey{Code: keyevent.HostTab, Char: '\t'}, 1, true
	case b == 0x7f || b == 0x08:
		return keyevent.HostKey{Code: keyevent.HostBack, Char: 0x08}, 1, true
	case b == 0x00:
		return keyevent.HostKey{Code: keyevent.HostSpace, Ctrl: true}, 1, true
	case b >= 0x01 && b <= 0x1a:
		return keyevent.HostKey{Code: keyevent.HostCode('A' + b - 1), Ctrl: true, Char: rune(b)}, 1, true
	case b < 0x20:
		return keyevent.HostKey{Code: keyevent.HostCode(b + 0x40), Ctrl: true, Char: rune(b)}, 1, true
	case b >= 'a' && b <= 'z':
		return keyevent.HostKey{Code: keyevent.HostCode(b - 'a' + 'A'), Char: rune(b)}, 1, true
	case b >= 'A' && b <= 'Z':
		return keyevent.HostKey{Code: keyevent.HostCode(b), Shift: true, Char: rune(b)}, 1, true
	case b < utf8.RuneSelf:
		return keyevent.HostKey{Code: keyevent.HostCode(b), Char: rune(b)}, 1, true
	}
	if !utf8.FullRune(buf) {
		return keyevent.HostKey{}, 0, false
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return keyevent.HostKey{}, size, false
	}
	// Code points overlap the toolkit's special key codes, so characters
	// outside ASCII carry no code of their own.
	return keyevent.HostKey{Code: keyevent.HostNone, Char: r}, size, true
}
