package keyevent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
	th "github.com/Nemex81/solitario-classico-accessibile-sub002/internal/testing"
)

func TestTranslateScenarios(t *testing.T) {
	type testCase struct {
		name string
		host keyevent.HostEvent
		want keyevent.Event
	}

	cases := []testCase{
		{
			name: "arrow up with shift",
			host: keyevent.HostKey{Code: keyevent.HostUp, Shift: true},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyUp, Mod: keyevent.ModShift},
		},
		{
			name: "letter a plain",
			host: keyevent.HostKey{Code: 65, Char: 'a'},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyA, Char: "a"},
		},
		{
			name: "escape",
			host: keyevent.HostKey{Code: keyevent.HostEscape},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyEscape},
		},
		{
			name: "ctrl alt delete",
			host: keyevent.HostKey{Code: keyevent.HostDelete, Ctrl: true, Alt: true},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyDelete, Mod: keyevent.ModCtrl | keyevent.ModAlt},
		},
		{
			name: "keypad enter",
			host: keyevent.HostKey{Code: keyevent.HostNumpadEnter, Char: '\r'},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyKpEnter, Char: "\r"},
		},
		{
			name: "f12",
			host: keyevent.HostKey{Code: keyevent.HostF1 + 11},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyF12},
		},
		{
			name: "non ascii char",
			host: keyevent.HostKey{Code: 'E', Char: 'è'},
			want: keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyE, Char: "è"},
		},
	}

	tr := keyevent.NewTranslator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tr.Translate(tc.host)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTranslateUnsupported(t *testing.T) {
	tr := keyevent.NewTranslator()
	for _, code := range []keyevent.HostCode{0xDEAD, 0, -1, 'a', 'z', '!', 306, 364} {
		for _, mod := range []bool{false, true} {
			ev, ok := tr.Translate(keyevent.HostKey{Code: code, Shift: mod, Ctrl: mod, Alt: mod, Char: 'x'})
			assert.False(t, ok, "code %d", code)
			assert.Equal(t, keyevent.Event{}, ev)
		}
	}
}

func TestTranslateEveryTableEntry(t *testing.T) {
	tr := keyevent.NewTranslator()
	table := keyevent.DefaultTable()
	mods := []keyevent.HostKey{
		{},
		{Shift: true},
		{Ctrl: true},
		{Alt: true},
		{Shift: true, Ctrl: true},
		{Shift: true, Alt: true},
		{Ctrl: true, Alt: true},
		{Shift: true, Ctrl: true, Alt: true},
	}
	for code, key := range table {
		for _, m := range mods {
			m.Code = code
			ev, ok := tr.Translate(m)
			require.True(t, ok, "code %d", code)
			assert.Equal(t, keyevent.KindKeyDown, ev.Kind)
			assert.Equal(t, key, ev.Key)
			assert.Equal(t, m.Shift, ev.Mod.Has(keyevent.ModShift))
			assert.Equal(t, m.Ctrl, ev.Mod.Has(keyevent.ModCtrl))
			assert.Equal(t, m.Alt, ev.Mod.Has(keyevent.ModAlt))
			assert.False(t, ev.Mod.Has(keyevent.ModMeta))
		}
	}
}

func TestModifierSubsetsAreDistinct(t *testing.T) {
	tr := keyevent.NewTranslator()
	seen := map[keyevent.Mod]bool{}
	for i := 0; i < 8; i++ {
		ev, ok := tr.Translate(keyevent.HostKey{Code: keyevent.HostLeft, Shift: i&1 != 0, Ctrl: i&2 != 0, Alt: i&4 != 0})
		require.True(t, ok)
		assert.False(t, seen[ev.Mod], "duplicate modifier value %v", ev.Mod)
		seen[ev.Mod] = true
		if i == 0 {
			assert.Equal(t, keyevent.ModNone, ev.Mod)
		}
	}
	assert.Len(t, seen, 8)
}

func TestLettersAreLowerCaseRegardlessOfShift(t *testing.T) {
	tr := keyevent.NewTranslator()
	for i := 0; i < 26; i++ {
		for _, shift := range []bool{false, true} {
			ev, ok := tr.Translate(keyevent.HostKey{Code: keyevent.HostCode('A' + i), Shift: shift})
			require.True(t, ok)
			assert.Equal(t, keyevent.KeyA+keyevent.Key(i), ev.Key)
			assert.Equal(t, string(rune('a'+i)), ev.Key.String())
		}
	}
}

func TestDigitAndKeypadDigitDiffer(t *testing.T) {
	tr := keyevent.NewTranslator()
	row, ok := tr.Translate(keyevent.HostKey{Code: '7', Char: '7'})
	require.True(t, ok)
	pad, ok := tr.Translate(keyevent.HostKey{Code: keyevent.HostNumpad0 + 7, Char: '7'})
	require.True(t, ok)

	assert.Equal(t, keyevent.Key7, row.Key)
	assert.Equal(t, keyevent.KeyKp7, pad.Key)
	assert.NotEqual(t, row.Key, pad.Key)

	rv, _ := row.Key.DigitValue()
	pv, _ := pad.Key.DigitValue()
	assert.Equal(t, 7, rv)
	assert.Equal(t, 7, pv)
}

func TestBrokenUnicodeStillEmits(t *testing.T) {
	tr := keyevent.NewTranslator()
	for _, panics := range []bool{false, true} {
		ev, ok := tr.Translate(th.BrokenHost{HostKey: keyevent.HostKey{Code: 'Q', Ctrl: true}, Panics: panics})
		require.True(t, ok)
		assert.Equal(t, keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyQ, Mod: keyevent.ModCtrl}, ev)
	}

	ev, ok := tr.Translate(keyevent.HostKey{Code: 'Q', Char: 0x110000})
	require.True(t, ok)
	assert.Empty(t, ev.Char)

	ev, ok = tr.Translate(keyevent.HostKey{Code: 'Q', Char: 0xD800})
	require.True(t, ok)
	assert.Empty(t, ev.Char)
}

func TestDefaultTableIsComplete(t *testing.T) {
	table := keyevent.DefaultTable()
	assert.Len(t, table, 79)
	assert.Len(t, keyevent.AllKeys(), 79)

	bound := map[keyevent.Key]keyevent.HostCode{}
	for code, key := range table {
		prev, dup := bound[key]
		assert.False(t, dup, "%s bound by %d and %d", key, prev, code)
		bound[key] = code
	}
	for _, k := range keyevent.AllKeys() {
		_, ok := bound[k]
		assert.True(t, ok, "%s has no host code", k)
	}
}

func TestDefaultTableIsACopy(t *testing.T) {
	tr := keyevent.NewTranslator()
	table := keyevent.DefaultTable()
	delete(table, keyevent.HostUp)

	_, ok := tr.Translate(keyevent.HostKey{Code: keyevent.HostUp})
	assert.True(t, ok)
}

func TestNewTranslatorFromTable(t *testing.T) {
	custom := map[keyevent.HostCode]keyevent.Key{1: keyevent.KeyUp, 2: keyevent.KeyDown}
	tr, err := keyevent.NewTranslatorFromTable(custom)
	require.NoError(t, err)
	custom[3] = keyevent.KeyLeft
	assert.Equal(t, 2, tr.Len())

	ev, ok := tr.Translate(keyevent.HostKey{Code: 2})
	require.True(t, ok)
	assert.Equal(t, keyevent.KeyDown, ev.Key)

	_, err = keyevent.NewTranslatorFromTable(map[keyevent.HostCode]keyevent.Key{1: keyevent.KeyUp, 2: keyevent.KeyUp})
	assert.ErrorIs(t, err, keyevent.ErrDuplicateKey)

	_, err = keyevent.NewTranslatorFromTable(map[keyevent.HostCode]keyevent.Key{1: keyevent.KeyNone})
	assert.ErrorIs(t, err, keyevent.ErrNoKey)
}

func TestNameOf(t *testing.T) {
	tr := keyevent.NewTranslator()
	cases := map[keyevent.HostCode]string{
		keyevent.HostUp:          "Up",
		keyevent.HostReturn:      "Return",
		'A':                      "a",
		'7':                      "7",
		keyevent.HostNumpad0 + 7: "Kp7",
		keyevent.HostNumpadAdd:   "Kp+",
		keyevent.HostF1 + 4:      "F5",
		0xDEAD:                   "UNKNOWN(57005)",
		-3:                       "UNKNOWN(-3)",
	}
	for code, want := range cases {
		assert.Equal(t, want, tr.NameOf(code))
		assert.Equal(t, tr.NameOf(code), tr.NameOf(code))
	}
}

func TestCodesSorted(t *testing.T) {
	codes := keyevent.NewTranslator().Codes()
	require.Len(t, codes, 79)
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
	assert.Equal(t, keyevent.HostBack, codes[0])
}

func TestEventString(t *testing.T) {
	ev := keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyUp, Mod: keyevent.ModShift | keyevent.ModCtrl}
	assert.Equal(t, `KeyDown Shift+Ctrl+Up ""`, ev.String())
	assert.Equal(t, `KeyDown a "a"`, keyevent.Event{Kind: keyevent.KindKeyDown, Key: keyevent.KeyA, Char: "a"}.String())
	assert.Equal(t, "", keyevent.ModNone.String())
	assert.Equal(t, "Key(200)", keyevent.Key(200).String())
}

func TestDownArrowIsAKeyNotAKind(t *testing.T) {
	ev, ok := keyevent.NewTranslator().Translate(keyevent.HostKey{Code: keyevent.HostDown})
	require.True(t, ok)
	assert.Equal(t, keyevent.KindKeyDown, ev.Kind)
	assert.Equal(t, keyevent.KeyDown, ev.Key)
	assert.Equal(t, "KeyDown", ev.Kind.String())
	assert.Equal(t, "Down", ev.Key.String())
	assert.Equal(t, `KeyDown Down ""`, ev.String())
	assert.Equal(t, "Kind(9)", keyevent.Kind(9).String())
}
