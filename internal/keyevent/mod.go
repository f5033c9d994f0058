package keyevent

import "strings"

// Mod is the set of modifiers held during a key press. Left and right keys are
// not distinguished.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	// ModMeta is reserved; translation never sets it.
	ModMeta

	ModNone Mod = 0
)

// Has reports whether every modifier in o is set in m.
func (m Mod) Has(o Mod) bool { return m&o == o }

func (m Mod) String() string {
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}
