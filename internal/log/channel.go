package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// RootName is the name under which the root channel is reachable.
const RootName = "root"

// Channel is a named logging bucket. Records emitted on it are offered to its
// own sinks and, while propagation is on, to the sinks of every ancestor.
type Channel struct {
	name   string
	parent *Channel
	m      *Manager

	mu        sync.RWMutex
	level     slog.Level
	levelSet  bool
	propagate bool
	sinks     []slog.Handler

	logger *slog.Logger
}

func newChannel(m *Manager, name string, parent *Channel) *Channel {
	c := &Channel{name: name, parent: parent, m: m, propagate: true}
	c.logger = slog.New(&channelHandler{c: c})
	return c
}

func (c *Channel) Name() string { return c.name }

// Parent returns nil for root.
func (c *Channel) Parent() *Channel { return c.parent }

// Logger returns the slog front-end for this channel.
func (c *Channel) Logger() *slog.Logger { return c.logger }

// SetLevel sets the minimum level accepted by this channel.
func (c *Channel) SetLevel(l slog.Level) {
	c.mu.Lock()
	c.level = l
	c.levelSet = true
	c.mu.Unlock()
}

// Level returns the effective level: the first level set walking up the
// hierarchy.
func (c *Channel) Level() slog.Level {
	for ch := c; ch != nil; ch = ch.parent {
		ch.mu.RLock()
		l, ok := ch.level, ch.levelSet
		ch.mu.RUnlock()
		if ok {
			return l
		}
	}
	return slog.LevelWarn
}

// Enabled reports whether a record at l would be dispatched.
func (c *Channel) Enabled(l slog.Level) bool { return l >= c.Level() }

func (c *Channel) SetPropagate(p bool) {
	c.mu.Lock()
	c.propagate = p
	c.mu.Unlock()
}

func (c *Channel) Propagate() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.propagate
}

// AddSink attaches h to the channel.
func (c *Channel) AddSink(h slog.Handler) {
	c.mu.Lock()
	c.sinks = append(c.sinks, h)
	c.mu.Unlock()
}

// Sinks returns a snapshot of the attached sinks.
func (c *Channel) Sinks() []slog.Handler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]slog.Handler(nil), c.sinks...)
}

// dispatch offers r to this channel's sinks and those of its ancestors up to
// the first channel that does not propagate.
func (c *Channel) dispatch(ctx context.Context, r slog.Record, steps []handlerStep) error {
	var firstErr error
	found := false
	for ch := c; ch != nil; ch = ch.parent {
		ch.mu.RLock()
		sinks := ch.sinks
		propagate := ch.propagate
		ch.mu.RUnlock()

		for _, s := range sinks {
			found = true
			if !s.Enabled(ctx, r.Level) {
				continue
			}
			if err := applySteps(s, steps).Handle(ctx, r.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if !propagate {
			break
		}
	}
	if !found && r.Level >= slog.LevelWarn {
		h := c.m.lastResort
		if err := applySteps(h, steps).Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// handlerStep records a WithAttrs or WithGroup call so it can be replayed on
// each sink at dispatch time.
type handlerStep struct {
	group string
	attrs []slog.Attr
}

func applySteps(h slog.Handler, steps []handlerStep) slog.Handler {
	for _, s := range steps {
		if s.group != "" {
			h = h.WithGroup(s.group)
		} else {
			h = h.WithAttrs(s.attrs)
		}
	}
	return h
}

type channelHandler struct {
	c     *Channel
	steps []handlerStep
}

func (h *channelHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.c.Enabled(l)
}

func (h *channelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.c.dispatch(ctx, r, h.steps)
}

func (h *channelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerStep{attrs: append([]slog.Attr(nil), attrs...)})
}

func (h *channelHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerStep{group: name})
}

func (h *channelHandler) with(s handlerStep) *channelHandler {
	steps := make([]handlerStep, len(h.steps), len(h.steps)+1)
	copy(steps, h.steps)
	return &channelHandler{c: h.c, steps: append(steps, s)}
}

// Manager owns a channel hierarchy. The zero value is not usable; use
// NewManager or Default.
type Manager struct {
	mu       sync.Mutex
	root     *Channel
	channels map[string]*Channel

	lastResort slog.Handler
}

// NewManager returns a hierarchy containing only root, at Warn level.
func NewManager() *Manager {
	return newManager(os.Stderr)
}

func newManager(stderr io.Writer) *Manager {
	m := &Manager{
		channels:   map[string]*Channel{},
		lastResort: NewLineHandler(stderr, slog.LevelWarn),
	}
	m.root = newChannel(m, RootName, nil)
	m.root.SetLevel(slog.LevelWarn)
	return m
}

var std = NewManager()

// Default returns the process-wide manager.
func Default() *Manager { return std }

// GetChannel returns the named channel of the process-wide manager.
func GetChannel(name string) *Channel { return std.Channel(name) }

func (m *Manager) Root() *Channel { return m.root }

// Channel returns the channel for name, creating it (and any dotted ancestors)
// on first use. "" and "root" return root.
func (m *Manager) Channel(name string) *Channel {
	if name == "" || name == RootName {
		return m.root
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.channelLocked(name)
}

func (m *Manager) channelLocked(name string) *Channel {
	if c, ok := m.channels[name]; ok {
		return c
	}
	parent := m.root
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		parent = m.channelLocked(name[:i])
	}
	c := newChannel(m, name, parent)
	m.channels[name] = c
	return c
}

// Close closes every file sink attached anywhere in the hierarchy. The
// topology itself is left in place.
func (m *Manager) Close() error {
	m.mu.Lock()
	chans := make([]*Channel, 0, len(m.channels)+1)
	chans = append(chans, m.root)
	for _, c := range m.channels {
		chans = append(chans, c)
	}
	m.mu.Unlock()

	var firstErr error
	for _, c := range chans {
		for _, s := range c.Sinks() {
			if fs, ok := s.(*FileSink); ok {
				if err := fs.Close(); err != nil && firstErr == nil {
					firstErr = err
				}
			}
		}
	}
	return firstErr
}
