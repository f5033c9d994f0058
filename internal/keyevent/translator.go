package keyevent

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrDuplicateKey is returned when two host codes map to the same key.
	ErrDuplicateKey = errors.New("canonical key mapped more than once")
	// ErrNoKey is returned when a host code maps to KeyNone.
	ErrNoKey = errors.New("host code mapped to no key")
)

// Translator turns host key events into canonical events through an immutable
// table. It is safe for concurrent use.
type Translator struct {
	table map[HostCode]Key
}

// NewTranslator returns a translator over the native toolkit table.
func NewTranslator() *Translator {
	return &Translator{table: DefaultTable()}
}

// NewTranslatorFromTable copies table into a new translator. Each key may
// appear at most once.
func NewTranslatorFromTable(table map[HostCode]Key) (*Translator, error) {
	seen := make(map[Key]HostCode, len(table))
	t := &Translator{table: make(map[HostCode]Key, len(table))}
	for code, key := range table {
		if key == KeyNone {
			return nil, fmt.Errorf("%w: %d", ErrNoKey, code)
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s from %d and %d", ErrDuplicateKey, key, min(prev, code), max(prev, code))
		}
		seen[key] = code
		t.table[code] = key
	}
	return t, nil
}

// DefaultTable returns a fresh copy of the native toolkit table.
func DefaultTable() map[HostCode]Key {
	t := map[HostCode]Key{
		HostUp:    KeyUp,
		HostDown:  KeyDown,
		HostLeft:  KeyLeft,
		HostRight: KeyRight,

		HostReturn:   KeyReturn,
		HostSpace:    KeySpace,
		HostEscape:   KeyEscape,
		HostTab:      KeyTab,
		HostBack:     KeyBackspace,
		HostDelete:   KeyDelete,
		HostHome:     KeyHome,
		HostEnd:      KeyEnd,
		HostPageUp:   KeyPageUp,
		HostPageDown: KeyPageDown,
		HostInsert:   KeyInsert,

		HostNumpadEnter:    KeyKpEnter,
		HostNumpadAdd:      KeyKpPlus,
		HostNumpadSubtract: KeyKpMinus,
		HostNumpadMultiply: KeyKpMultiply,
		HostNumpadDivide:   KeyKpDivide,
		HostNumpadDecimal:  KeyKpDecimal,
	}
	for i := 0; i < 12; i++ {
		t[HostF1+HostCode(i)] = KeyF1 + Key(i)
	}
	for i := 0; i < 10; i++ {
		t[HostCode('0'+i)] = Key0 + Key(i)
		t[HostNumpad0+HostCode(i)] = KeyKp0 + Key(i)
	}
	// The toolkit reports letters upper-case; gameplay only sees lower-case.
	for i := 0; i < 26; i++ {
		t[HostCode('A'+i)] = KeyA + Key(i)
	}
	return t
}

// Translate returns the canonical event for h, or false when the host code is
// not a supported key. Unsupported keys are not an error; callers drop them.
func (t *Translator) Translate(h HostEvent) (Event, bool) {
	key, ok := t.table[h.KeyCode()]
	if !ok {
		return Event{}, false
	}
	var mod Mod
	if h.ShiftDown() {
		mod |= ModShift
	}
	if h.ControlDown() {
		mod |= ModCtrl
	}
	if h.AltDown() {
		mod |= ModAlt
	}
	return Event{Kind: KindKeyDown, Key: key, Mod: mod, Char: unicodeOf(h)}, true
}

// unicodeOf never fails: a broken accessor yields "".
func unicodeOf(h HostEvent) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	r, err := h.UnicodeKey()
	if err != nil || r <= 0 || !utf8.ValidRune(r) {
		return ""
	}
	return string(r)
}

// Lookup returns the key bound to code.
func (t *Translator) Lookup(code HostCode) (Key, bool) {
	k, ok := t.table[code]
	return k, ok
}

// NameOf returns a short stable name for code, for diagnostics only.
func (t *Translator) NameOf(code HostCode) string {
	if k, ok := t.table[code]; ok {
		return k.String()
	}
	return "UNKNOWN(" + strconv.Itoa(int(code)) + ")"
}

// Codes returns the mapped host codes in ascending order.
func (t *Translator) Codes() []HostCode {
	codes := make([]HostCode, 0, len(t.table))
	for c := range t.table {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Len returns the number of entries in the table.
func (t *Translator) Len() int { return len(t.table) }
