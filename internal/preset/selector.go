// Package preset implements the timer duration selector: a short fixed list
// of durations browsed with the arrow keys.
package preset

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/view"
)

// Off disables the game timer.
const Off time.Duration = 0

var defaultPresets = []time.Duration{
	Off,
	5 * time.Minute,
	10 * time.Minute,
	15 * time.Minute,
	20 * time.Minute,
	30 * time.Minute,
	45 * time.Minute,
	60 * time.Minute,
}

// Defaults returns the stock preset list.
func Defaults() []time.Duration {
	return append([]time.Duration(nil), defaultPresets...)
}

// Label is the spoken form of d.
func Label(d time.Duration) string {
	switch {
	case d <= 0:
		return "Off"
	case d%time.Minute != 0:
		return d.String()
	case d == time.Minute:
		return "1 minute"
	default:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
}

// Selector is a view over a preset list. Left/Down and Right/Up step through
// the presets, Home/End jump to the ends, Return confirms and Escape cancels.
type Selector struct {
	presets   []time.Duration
	index     int
	logger    *slog.Logger
	onConfirm func(time.Duration)
}

// NewSelector returns a selector over presets (Defaults when empty) focused on
// the entry equal to current, or the first entry.
func NewSelector(presets []time.Duration, current time.Duration, logger *slog.Logger, onConfirm func(time.Duration)) *Selector {
	if len(presets) == 0 {
		presets = Defaults()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Selector{
		presets:   append([]time.Duration(nil), presets...),
		logger:    logger,
		onConfirm: onConfirm,
	}
	for i, p := range s.presets {
		if p == current {
			s.index = i
			break
		}
	}
	return s
}

// Selected returns the focused duration.
func (s *Selector) Selected() time.Duration { return s.presets[s.index] }

func (s *Selector) Title() string { return "Timer" }

func (s *Selector) Activate(sh *view.Shell) {
	sh.Announce("Timer: " + Label(s.Selected()))
}

func (s *Selector) HandleKey(sh *view.Shell, ev keyevent.Event) bool {
	switch ev.Key {
	case keyevent.KeyLeft, keyevent.KeyDown:
		s.moveTo(sh, s.index-1)
	case keyevent.KeyRight, keyevent.KeyUp:
		s.moveTo(sh, s.index+1)
	case keyevent.KeyHome:
		s.moveTo(sh, 0)
	case keyevent.KeyEnd:
		s.moveTo(sh, len(s.presets)-1)
	case keyevent.KeyReturn, keyevent.KeyKpEnter:
		d := s.Selected()
		s.logger.Info("timer preset confirmed", "duration", d)
		sh.Announce("Timer set to " + Label(d))
		if s.onConfirm != nil {
			s.onConfirm(d)
		}
		sh.Pop()
	case keyevent.KeyEscape:
		s.logger.Info("timer preset cancelled")
		sh.Pop()
	default:
		return false
	}
	return true
}

// moveTo clamps instead of wrapping so the ends are audible.
func (s *Selector) moveTo(sh *view.Shell, i int) {
	i = max(0, min(i, len(s.presets)-1))
	if i == s.index {
		sh.Announce(Label(s.Selected()))
		return
	}
	s.index = i
	s.logger.Debug("timer preset focus", "duration", s.Selected())
	sh.Announce(Label(s.Selected()))
}
