package termhost

import (
	"errors"
	"io"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/log"
)

// Reader decodes host keys from a terminal input stream.
type Reader struct {
	r   io.Reader
	raw log.RawLogger
	dec Decoder
	buf []byte
}

// NewReader returns a Reader over r. Every chunk read is traced through raw.
func NewReader(r io.Reader, raw log.RawLogger) *Reader {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Reader{r: r, raw: raw, buf: make([]byte, 256)}
}

// ReadKeys blocks for one read and returns the keys it completed. At end of
// input any buffered sequence is flushed and io.EOF is returned with it.
func (r *Reader) ReadKeys() ([]keyevent.HostKey, error) {
	n, err := r.r.Read(r.buf)
	var keys []keyevent.HostKey
	if n > 0 {
		r.raw.Log(true, r.buf[:n])
		keys = r.dec.Feed(r.buf[:n])
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			keys = append(keys, r.dec.Flush()...)
		}
		return keys, err
	}
	return keys, nil
}
