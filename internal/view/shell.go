package view

import (
	"log/slog"
	"sync"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

// Shell owns the view stack. Host key events are translated, unsupported keys
// are dropped, and the rest go to the top view; whatever the view does not
// consume is forwarded to gameplay as a one-element batch.
//
// A Shell is driven from a single event loop and is not safe for concurrent
// use, except for Done.
type Shell struct {
	tr       *keyevent.Translator
	announce Announcer
	game     Gameplay
	logger   *slog.Logger

	stack []View

	done     chan struct{}
	quitOnce sync.Once
}

// NewShell returns a shell with an empty stack. game may be nil.
func NewShell(tr *keyevent.Translator, a Announcer, game Gameplay, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		tr:       tr,
		announce: a,
		game:     game,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (s *Shell) Logger() *slog.Logger { return s.logger }

func (s *Shell) Announce(text string) {
	if s.announce != nil && text != "" {
		s.announce.Announce(text)
	}
}

// Dispatch translates h and routes it. It reports whether h was a supported
// key.
func (s *Shell) Dispatch(h keyevent.HostEvent) bool {
	ev, ok := s.tr.Translate(h)
	if !ok {
		return false
	}
	s.DispatchEvent(ev)
	return true
}

// DispatchEvent routes an already translated event.
func (s *Shell) DispatchEvent(ev keyevent.Event) {
	s.logger.Debug("key down", "key", ev.Key.String(), "mod", ev.Mod.String(), "char", ev.Char, "depth", len(s.stack))
	if top := s.Top(); top != nil && top.HandleKey(s, ev) {
		return
	}
	if s.game != nil {
		s.game.HandleEvents([]keyevent.Event{ev})
	}
}

// Push makes v the active view.
func (s *Shell) Push(v View) {
	s.stack = append(s.stack, v)
	s.logger.Info("view opened", "view", v.Title(), "depth", len(s.stack))
	s.activate(v)
}

// Pop closes the active view. Closing the last view quits the shell.
func (s *Shell) Pop() {
	if len(s.stack) == 0 {
		return
	}
	v := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	s.logger.Info("view closed", "view", v.Title(), "depth", len(s.stack))

	if top := s.Top(); top != nil {
		s.activate(top)
		return
	}
	s.Quit()
}

func (s *Shell) activate(v View) {
	if a, ok := v.(Activator); ok {
		a.Activate(s)
		return
	}
	s.Announce(v.Title())
}

// Top returns the active view, or nil.
func (s *Shell) Top() View {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *Shell) Depth() int { return len(s.stack) }

// Quit ends the shell. It is safe to call more than once.
func (s *Shell) Quit() {
	s.quitOnce.Do(func() {
		s.logger.Info("shell quit")
		close(s.done)
	})
}

// Done is closed once the shell has quit.
func (s *Shell) Done() <-chan struct{} { return s.done }
