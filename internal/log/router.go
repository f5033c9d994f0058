package log

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultDir is the log directory used when Options.Dir is empty, relative to
// the working directory.
const DefaultDir = "logs"

// RootFile receives everything emitted on root, in practice third-party output.
const RootFile = "solitario.log"

// Category binds a channel name to its log file.
type Category struct {
	Name string
	File string
}

var categories = []Category{
	{Name: "game", File: "game_logic.log"},
	{Name: "ui", File: "ui_events.log"},
	{Name: "error", File: "errors.log"},
	{Name: "timer", File: "timer.log"},
}

// Library channels pinned at Warn or stricter. "image" carries the imaging
// library (PIL-style decoders), "http" the HTTP client (urllib3-style
// connection pools) and "window" the windowing toolkit.
var noisyChannels = []string{"image", "http", "window"}

// Categories returns the registered categories in registration order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// NoisyChannels returns the names of the library channels held at Warn.
func NoisyChannels() []string {
	return append([]string(nil), noisyChannels...)
}

// Options is the complete configuration surface of Configure.
type Options struct {
	Dir     string
	Level   slog.Level
	Console bool
}

// Configure installs the logging topology on the process-wide manager.
func Configure(opts Options) error {
	return std.Configure(opts)
}

// Configure installs the logging topology on m. It is idempotent: category
// channels that already have a sink are skipped, and root only gets a file
// sink when none targets the same file. Any failure to open a file leaves the
// hierarchy untouched.
func (m *Manager) Configure(opts Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir %q: %w", dir, err)
	}
	rootPath, err := filepath.Abs(filepath.Join(dir, RootFile))
	if err != nil {
		return fmt.Errorf("resolve root log path: %w", err)
	}

	type pending struct {
		ch   *Channel
		sink *FileSink
	}
	var plan []pending
	abort := func(err error) error {
		errs := []error{err}
		for _, p := range plan {
			errs = append(errs, p.sink.Close())
		}
		return errors.Join(errs...)
	}

	for _, cat := range categories {
		ch := m.channelLocked(cat.Name)
		if len(ch.Sinks()) > 0 {
			continue
		}
		sink, err := NewFileSink(filepath.Join(dir, cat.File))
		if err != nil {
			return abort(fmt.Errorf("open log sink for %q: %w", cat.Name, err))
		}
		plan = append(plan, pending{ch: ch, sink: sink})
	}
	if !hasFileSink(m.root, rootPath) {
		sink, err := NewFileSink(rootPath)
		if err != nil {
			return abort(fmt.Errorf("open root log sink: %w", err))
		}
		plan = append(plan, pending{ch: m.root, sink: sink})
	}

	for _, p := range plan {
		p.ch.AddSink(p.sink)
		p.ch.SetLevel(opts.Level)
		if p.ch != m.root {
			p.ch.SetPropagate(false)
		}
	}

	if opts.Console && !hasConsoleSink(m.root) {
		m.root.AddSink(NewConsoleSink(os.Stdout, os.Stderr))
	}

	for _, name := range noisyChannels {
		ch := m.channelLocked(name)
		ch.SetLevel(max(ch.Level(), slog.LevelWarn))
	}
	return nil
}

func hasFileSink(c *Channel, path string) bool {
	for _, s := range c.Sinks() {
		if fs, ok := s.(*FileSink); ok && fs.Path() == path {
			return true
		}
	}
	return false
}

func hasConsoleSink(c *Channel) bool {
	for _, s := range c.Sinks() {
		if _, ok := s.(*ConsoleSink); ok {
			return true
		}
	}
	return false
}
