package log

import (
	"io"
	"log/slog"
	"path/filepath"
)

const (
	// MaxFileBytes is the size cap of every file sink.
	MaxFileBytes = 5 << 20
	// FileBackups is the number of rotated generations kept beside the live file.
	FileBackups = 3
)

// FileSink is a rotating file destination for one channel.
type FileSink struct {
	slog.Handler
	file *RotatingFile
}

// NewFileSink opens a rotating sink for path. The path is made absolute so
// that sinks can be compared by target.
func NewFileSink(path string) (*FileSink, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := OpenRotating(abs, MaxFileBytes, FileBackups)
	if err != nil {
		return nil, err
	}
	return &FileSink{Handler: NewLineHandler(f, LevelTrace), file: f}, nil
}

// Path returns the absolute path of the live file.
func (s *FileSink) Path() string { return s.file.Path() }

func (s *FileSink) Close() error { return s.file.Close() }

func (s *FileSink) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &FileSink{Handler: s.Handler.WithAttrs(attrs), file: s.file}
}

func (s *FileSink) WithGroup(name string) slog.Handler {
	return &FileSink{Handler: s.Handler.WithGroup(name), file: s.file}
}

// ConsoleSink mirrors records to the terminal: errors go to stderr, the rest
// to stdout.
type ConsoleSink struct {
	slog.Handler
}

func NewConsoleSink(stdout, stderr io.Writer) *ConsoleSink {
	return &ConsoleSink{Handler: NewMultiHandler(
		NewLevelFilter(func(l slog.Level) bool { return l < slog.LevelError }, NewLineHandler(stdout, slog.LevelDebug)),
		NewLevelFilter(func(l slog.Level) bool { return l >= slog.LevelError }, NewLineHandler(stderr, slog.LevelDebug)),
	)}
}

func (s *ConsoleSink) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleSink{Handler: s.Handler.WithAttrs(attrs)}
}

func (s *ConsoleSink) WithGroup(name string) slog.Handler {
	return &ConsoleSink{Handler: s.Handler.WithGroup(name)}
}
