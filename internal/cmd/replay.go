package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	yaml "gopkg.in/yaml.v3"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

type Replay struct {
	File string `arg:"" optional:"" name:"file" help:"YAML key script, - for stdin" default:"-"`
}

// ScriptKey is one entry of a key script. Either Code or Key names the key;
// Key takes a canonical key name such as "Up" or "Kp7".
type ScriptKey struct {
	Code  int    `yaml:"code"`
	Key   string `yaml:"key"`
	Shift bool   `yaml:"shift"`
	Ctrl  bool   `yaml:"ctrl"`
	Alt   bool   `yaml:"alt"`
	Char  string `yaml:"char"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger) error {
	in := io.Reader(os.Stdin)
	if r.File != "-" {
		f, err := os.Open(r.File)
		if err != nil {
			return fmt.Errorf("failed to open key script: %w", err)
		}
		defer f.Close()
		in = f
	}
	return r.Translate(in, os.Stdout, keyevent.NewTranslator(), logger)
}

// Translate reads a key script from in and writes one line per entry to w.
// Unsupported keys print as "-".
func (r *Replay) Translate(in io.Reader, w io.Writer, tr *keyevent.Translator, logger *slog.Logger) error {
	var script []ScriptKey
	if err := yaml.NewDecoder(in).Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse key script: %w", err)
	}

	byName := make(map[string]keyevent.HostCode, tr.Len())
	for _, code := range tr.Codes() {
		byName[tr.NameOf(code)] = code
	}

	dropped := 0
	for i, sk := range script {
		h, err := sk.hostKey(byName)
		if err != nil {
			return fmt.Errorf("key script entry %d: %w", i+1, err)
		}
		ev, ok := tr.Translate(h)
		if !ok {
			dropped++
			_, _ = fmt.Fprintln(w, "-")
			continue
		}
		_, _ = fmt.Fprintln(w, ev.String())
	}
	logger.Debug("key script replayed", "entries", len(script), "dropped", dropped)
	return nil
}

func (sk ScriptKey) hostKey(byName map[string]keyevent.HostCode) (keyevent.HostKey, error) {
	h := keyevent.HostKey{Code: keyevent.HostCode(sk.Code), Shift: sk.Shift, Ctrl: sk.Ctrl, Alt: sk.Alt}
	if sk.Key != "" {
		code, ok := byName[sk.Key]
		if !ok {
			return h, fmt.Errorf("unknown key name %q", sk.Key)
		}
		h.Code = code
	}
	if sk.Char != "" {
		r, size := utf8.DecodeRuneInString(sk.Char)
		if r == utf8.RuneError || size != len(sk.Char) {
			return h, fmt.Errorf("char %q is not a single character", sk.Char)
		}
		h.Char = r
	}
	return h, nil
}
