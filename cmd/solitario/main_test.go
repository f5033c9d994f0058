package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/log"
)

func TestRunClosesSinksWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")

	code := run([]string{"--log.dir", dir, "--log.raw", filepath.Join(dir, "raw.log"), "replay", missing})
	require.Equal(t, 1, code)

	content, err := os.ReadFile(filepath.Join(dir, log.RootFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "command failed")

	var sinks int
	for _, s := range log.Default().Root().Sinks() {
		fsink, ok := s.(*log.FileSink)
		if !ok {
			continue
		}
		sinks++
		err := fsink.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "after exit", 0))
		assert.ErrorIs(t, err, fs.ErrClosed, fsink.Path())
	}
	assert.Equal(t, 1, sinks)
}
