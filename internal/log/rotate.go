package log

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// RotatingFile is an append-only file that rolls over once it would grow past
// a byte cap, keeping a fixed number of numbered generations (<path>.1 is the
// most recent).
type RotatingFile struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	backups  int
	f        *os.File
	size     int64
}

// OpenRotating opens (or creates) path for appending. maxBytes <= 0 disables
// rotation.
func OpenRotating(path string, maxBytes int64, backups int) (*RotatingFile, error) {
	r := &RotatingFile{path: path, maxBytes: maxBytes, backups: backups}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	r.f = f
	r.size = st.Size()
	return nil
}

// Path returns the path of the live file.
func (r *RotatingFile) Path() string { return r.path }

// Write appends p, rotating first when the live file is non-empty and the
// write would reach the cap.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.f == nil {
		return 0, fs.ErrClosed
	}
	var rotErr error
	if r.maxBytes > 0 && r.size > 0 && r.size+int64(len(p)) >= r.maxBytes {
		// A failed rollover keeps appending to the live file; the next write
		// tries again.
		if rotErr = r.rotate(); r.f == nil {
			return 0, rotErr
		}
	}
	n, err := r.f.Write(p)
	r.size += int64(n)
	return n, errors.Join(rotErr, err)
}

// Rotate forces a rollover.
func (r *RotatingFile) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return fs.ErrClosed
	}
	return r.rotate()
}

// rotate rolls the generations over and reopens the live file. The live file
// is reopened even when a rename fails.
func (r *RotatingFile) rotate() error {
	err := r.f.Close()
	r.f = nil
	if err == nil {
		err = r.shift()
	}
	if oerr := r.open(); oerr != nil {
		return errors.Join(err, oerr)
	}
	return err
}

func (r *RotatingFile) shift() error {
	if r.backups <= 0 {
		if err := os.Truncate(r.path, 0); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	for i := r.backups - 1; i >= 1; i-- {
		src := r.generation(i)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, r.generation(i+1)); err != nil {
			return fmt.Errorf("rotate %s: %w", src, err)
		}
	}
	if err := os.Rename(r.path, r.generation(1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("rotate %s: %w", r.path, err)
	}
	return nil
}

func (r *RotatingFile) generation(i int) string {
	return fmt.Sprintf("%s.%d", r.path, i)
}

// Close closes the live file. Further writes fail with fs.ErrClosed.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}
