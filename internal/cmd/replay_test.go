package cmd_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/cmd"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestReplayTranslatesScript(t *testing.T) {
	script := `
- code: 315
  shift: true
  ctrl: true
- key: Kp7
- code: 65
  char: a
- code: 55
  char: "7"
- code: 999
- key: Return
  alt: true
`
	var out bytes.Buffer
	r := cmd.Replay{}
	require.NoError(t, r.Translate(strings.NewReader(script), &out, keyevent.NewTranslator(), discard()))

	want := []string{
		`KeyDown Shift+Ctrl+Up ""`,
		`KeyDown Kp7 ""`,
		`KeyDown a "a"`,
		`KeyDown 7 "7"`,
		`-`,
		`KeyDown Alt+Return ""`,
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestReplayEmptyScript(t *testing.T) {
	var out bytes.Buffer
	r := cmd.Replay{}
	require.NoError(t, r.Translate(strings.NewReader(""), &out, keyevent.NewTranslator(), discard()))
	assert.Empty(t, out.String())
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "not a list", script: "code: 1\n", want: "parse key script"},
		{name: "unknown name", script: "- key: Hyper\n", want: `unknown key name "Hyper"`},
		{name: "multi char", script: "- code: 65\n  char: ab\n", want: "entry 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := cmd.Replay{}
			err := r.Translate(strings.NewReader(tt.script), &out, keyevent.NewTranslator(), discard())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestKeysPrintsEveryCode(t *testing.T) {
	var out bytes.Buffer
	tr := keyevent.NewTranslator()
	require.NoError(t, (&cmd.Keys{}).Print(&out, tr))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, tr.Len()+1)
	assert.Equal(t, []string{"CODE", "NAME", "ORDINAL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"8", "Backspace", "9"}, strings.Fields(lines[1]), "first row is the lowest code")
}
