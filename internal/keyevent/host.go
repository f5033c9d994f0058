package keyevent

// HostCode is a key code as reported by the native window toolkit.
type HostCode int

// Native toolkit key codes. Letters are reported as their upper-case code
// points and row digits as their ASCII code points.
const (
	// HostNone is reported for characters without a key of their own, such as
	// accented letters; the character comes through UnicodeKey.
	HostNone HostCode = 0

	HostBack   HostCode = 8
	HostTab    HostCode = 9
	HostReturn HostCode = 13
	HostEscape HostCode = 27
	HostSpace  HostCode = 32
	HostDelete HostCode = 127

	HostEnd    HostCode = 312
	HostHome   HostCode = 313
	HostLeft   HostCode = 314
	HostUp     HostCode = 315
	HostRight  HostCode = 316
	HostDown   HostCode = 317
	HostInsert HostCode = 322

	HostNumpad0 HostCode = 324 // through HostNumpad0+9
	HostF1      HostCode = 340 // through HostF1+11

	HostPageUp   HostCode = 366
	HostPageDown HostCode = 367

	HostNumpadEnter    HostCode = 370
	HostNumpadMultiply HostCode = 387
	HostNumpadAdd      HostCode = 388
	HostNumpadSubtract HostCode = 390
	HostNumpadDecimal  HostCode = 391
	HostNumpadDivide   HostCode = 392
)

// HostEvent is the view of a native key event the translator needs.
type HostEvent interface {
	KeyCode() HostCode
	ShiftDown() bool
	ControlDown() bool
	AltDown() bool
	// UnicodeKey returns the character produced by the keystroke, or 0.
	UnicodeKey() (rune, error)
}

// HostKey is a plain HostEvent, used for scripted input and by host adapters
// that decode their own event streams.
type HostKey struct {
	Code  HostCode
	Shift bool
	Ctrl  bool
	Alt   bool
	Char  rune
}

func (h HostKey) KeyCode() HostCode { return h.Code }
func (h HostKey) ShiftDown() bool { return h.Shift }
func (h HostKey) ControlDown() bool { return h.Ctrl }
func (h HostKey) AltDown() bool { return h.Alt }
func (h HostKey) UnicodeKey() (rune, error) { return h.Char, nil }
