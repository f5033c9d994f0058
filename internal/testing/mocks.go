// Package testing holds test doubles shared by the package tests.
package testing

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/log"
)

// Recorder is an announcer that keeps everything it was told to say.
type Recorder struct {
	mu   sync.Mutex
	said []string
}

func (r *Recorder) Announce(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.said = append(r.said, text)
}

// Said returns a copy of all announcements in order.
func (r *Recorder) Said() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.said...)
}

// Last returns the latest announcement, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.said) == 0 {
		return ""
	}
	return r.said[len(r.said)-1]
}

// Batches is a gameplay collaborator that records each batch it receives.
type Batches struct {
	mu  sync.Mutex
	got [][]keyevent.Event
}

func (b *Batches) HandleEvents(batch []keyevent.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, append([]keyevent.Event(nil), batch...))
}

func (b *Batches) Got() [][]keyevent.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]keyevent.Event(nil), b.got...)
}

// BrokenHost is a host event whose character accessor fails, by panicking
// when Panics is set and by returning an error otherwise.
type BrokenHost struct {
	keyevent.HostKey
	Panics bool
}

func (b BrokenHost) UnicodeKey() (rune, error) {
	if b.Panics {
		panic("accessor exploded")
	}
	return 0, errors.New("no unicode for this event")
}

// Key returns an unmodified host key event without a character.
func Key(code keyevent.HostCode) keyevent.HostKey { return keyevent.HostKey{Code: code} }

// Logger returns a debug-level logger writing log lines into the returned buffer.
func Logger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return slog.New(log.NewLineHandler(&buf, slog.LevelDebug)), &buf
}
