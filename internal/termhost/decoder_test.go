package termhost_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/log"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/termhost"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []keyevent.HostKey
	}{
		{
			name:  "arrow up",
			input: "\x1b[A",
			want:  []keyevent.HostKey{{Code: keyevent.HostUp}},
		},
		{
			name:  "shift arrow up",
			input: "\x1b[1;2A",
			want:  []keyevent.HostKey{{Code: keyevent.HostUp, Shift: true}},
		},
		{
			name:  "ctrl alt delete",
			input: "\x1b[3;7~",
			want:  []keyevent.HostKey{{Code: keyevent.HostDelete, Ctrl: true, Alt: true}},
		},
		{
			name:  "application cursor and function keys",
			input: "\x1bOB\x1bOP\x1b[24~",
			want: []keyevent.HostKey{
				{Code: keyevent.HostDown},
				{Code: keyevent.HostF1},
				{Code: keyevent.HostF1 + 11},
			},
		},
		{
			name:  "keypad",
			input: "\x1bOw\x1bOM\x1bOk",
			want: []keyevent.HostKey{
				{Code: keyevent.HostNumpad0 + 7, Char: '7'},
				{Code: keyevent.HostNumpadEnter, Char: '\r'},
				{Code: keyevent.HostNumpadAdd, Char: '+'},
			},
		},
		{
			name:  "letters and digits",
			input: "aZ7",
			want: []keyevent.HostKey{
				{Code: 'A', Char: 'a'},
				{Code: 'Z', Shift: true, Char: 'Z'},
				{Code: '7', Char: '7'},
			},
		},
		{
			name:  "control bytes",
			input: "\r\t\x7f\x01 ",
			want: []keyevent.HostKey{
				{Code: keyevent.HostReturn, Char: '\r'},
				{Code: keyevent.HostTab, Char: '\t'},
				{Code: keyevent.HostBack, Char: 0x08},
				{Code: 'A', Ctrl: true, Char: 0x01},
				{Code: keyevent.HostSpace, Char: ' '},
			},
		},
		{
			name:  "alt letter",
			input: "\x1bq",
			want:  []keyevent.HostKey{{Code: 'Q', Alt: true, Char: 'q'}},
		},
		{
			name:  "lone escape",
			input: "\x1b",
			want:  []keyevent.HostKey{{Code: keyevent.HostEscape}},
		},
		{
			name:  "double escape",
			input: "\x1b\x1b",
			want:  []keyevent.HostKey{{Code: keyevent.HostEscape}, {Code: keyevent.HostEscape}},
		},
		{
			name:  "unknown sequence is dropped",
			input: "\x1b[99zx",
			want:  []keyevent.HostKey{{Code: 'X', Char: 'x'}},
		},
		{
			name:  "utf8",
			input: "è",
			want:  []keyevent.HostKey{{Code: keyevent.HostNone, Char: 'è'}},
		},
		{
			name:  "letters in the special key range",
			input: "łśůńĻ",
			want: []keyevent.HostKey{
				{Code: keyevent.HostNone, Char: 'ł'},
				{Code: keyevent.HostNone, Char: 'ś'},
				{Code: keyevent.HostNone, Char: 'ů'},
				{Code: keyevent.HostNone, Char: 'ń'},
				{Code: keyevent.HostNone, Char: 'Ļ'},
			},
		},
		{
			name:  "alt non-ascii",
			input: "\x1bś",
			want:  []keyevent.HostKey{{Code: keyevent.HostNone, Alt: true, Char: 'ś'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := termhost.Decode([]byte(tt.input))
			assert.Empty(t, rest)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeIncompleteTail(t *testing.T) {
	for _, tail := range []string{"\x1b[", "\x1b[1;", "\x1bO", "\xc3"} {
		keys, rest := termhost.Decode([]byte("a" + tail))
		assert.Equal(t, []keyevent.HostKey{{Code: 'A', Char: 'a'}}, keys)
		assert.Equal(t, []byte(tail), rest)
	}
}

func TestDecoderCarriesSplitSequences(t *testing.T) {
	var d termhost.Decoder
	assert.Empty(t, d.Feed([]byte("\x1b[1")))
	assert.True(t, d.Pending())
	assert.Equal(t, []keyevent.HostKey{{Code: keyevent.HostHome, Ctrl: true}}, d.Feed([]byte(";5H")))
	assert.False(t, d.Pending())

	assert.Empty(t, d.Feed([]byte("\x1bO")))
	assert.Equal(t, []keyevent.HostKey{{Code: keyevent.HostEscape}}, d.Flush())
	assert.False(t, d.Pending())
}

func TestDecodedKeysTranslate(t *testing.T) {
	tr := keyevent.NewTranslator()
	keys, _ := termhost.Decode([]byte("\x1b[1;2AA\x1b"))
	require.Len(t, keys, 3)

	var got []keyevent.Event
	for _, k := range keys {
		ev, ok := tr.Translate(k)
		require.True(t, ok)
		got = append(got, ev)
	}
	assert.Equal(t, []keyevent.Event{
		{Kind: keyevent.KindKeyDown, Key: keyevent.KeyUp, Mod: keyevent.ModShift},
		{Kind: keyevent.KindKeyDown, Key: keyevent.KeyA, Mod: keyevent.ModShift, Char: "A"},
		{Kind: keyevent.KindKeyDown, Key: keyevent.KeyEscape},
	}, got)
}

func TestNonASCIILettersAreUnsupported(t *testing.T) {
	tr := keyevent.NewTranslator()
	keys, rest := termhost.Decode([]byte("łśůńĻè"))
	require.Empty(t, rest)
	require.Len(t, keys, 6)
	for _, k := range keys {
		_, ok := tr.Translate(k)
		assert.False(t, ok, "%q must not translate to a key", k.Char)
	}
}

type chunkReader struct{ chunks []string }

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}

func TestReader(t *testing.T) {
	var trace bytes.Buffer
	r := termhost.NewReader(&chunkReader{chunks: []string{"\x1b[", "B", "\x1bO"}}, log.NewRaw(&trace))

	keys, err := r.ReadKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = r.ReadKeys()
	require.NoError(t, err)
	assert.Equal(t, []keyevent.HostKey{{Code: keyevent.HostDown}}, keys)

	keys, err = r.ReadKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = r.ReadKeys()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []keyevent.HostKey{{Code: keyevent.HostEscape}}, keys)

	assert.Equal(t, 3, strings.Count(trace.String(), "TTY->APP"))
}
