package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger traces raw terminal traffic as hex dumps.
type RawLogger interface {
	Log(in bool, data []byte)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single-line dump with timestamp and hex bytes.
// in=true means terminal->app (key input), in=false means app->terminal.
func (r *rawLogger) Log(in bool, data []byte) {
	if len(data) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	dir := "APP->TTY"
	if in {
		dir = "TTY->APP"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s %d bytes: %s\n",
		time.Now().Format(lineTimeLayout),
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}

// TraceWriter returns a writer that forwards to w and logs everything written
// as outbound traffic. A nil raw returns w unchanged.
func TraceWriter(w io.Writer, raw RawLogger) io.Writer {
	if raw == nil {
		return w
	}
	return &traceWriter{w: w, raw: raw}
}

type traceWriter struct {
	w   io.Writer
	raw RawLogger
}

func (t *traceWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	t.raw.Log(false, p[:n])
	return n, err
}
