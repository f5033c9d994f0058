package view

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Announcer speaks short messages to the user. A screen reader bridge is one
// implementation; the ones here write text.
type Announcer interface {
	Announce(text string)
}

// WriterAnnouncer writes each announcement as a line to w.
type WriterAnnouncer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterAnnouncer(w io.Writer) *WriterAnnouncer {
	return &WriterAnnouncer{w: w}
}

func (a *WriterAnnouncer) Announce(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = fmt.Fprintf(a.w, "%s\r\n", text)
}

// LogAnnouncer records announcements on a logger, and forwards them to next
// when set.
type LogAnnouncer struct {
	Logger *slog.Logger
	Next   Announcer
}

func (a LogAnnouncer) Announce(text string) {
	a.Logger.Info("announce", "text", text)
	if a.Next != nil {
		a.Next.Announce(text)
	}
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(text string)

func (f AnnouncerFunc) Announce(text string) { f(text) }
