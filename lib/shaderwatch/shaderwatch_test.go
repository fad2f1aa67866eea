package shaderwatch

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	triglog "github.com/fosdem/trianglix/lib/log"
	"github.com/fosdem/trianglix/lib/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarksStale(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "default.vert")
	frag := filepath.Join(dir, "default.frag")
	require.NoError(t, os.WriteFile(vert, []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("f1"), 0o644))

	var logs syncBuffer
	prev := slog.Default()
	slog.SetDefault(slog.New(triglog.NewHandlerTo(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	st := stats.New()
	w, err := New(st, vert, frag)
	require.NoError(t, err)
	w.Start()
	defer func() {
		_ = w.Close()
	}()

	assert.False(t, st.Report().ShadersStale)

	require.NoError(t, os.WriteFile(frag, []byte("f2"), 0o644))

	require.Eventually(t, func() bool {
		return st.Report().ShadersStale
	}, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, w.Close())

	assert.Contains(t, logs.String(), frag+" changed on disk")
}

func TestMissingPath(t *testing.T) {
	_, err := New(stats.New(), filepath.Join(t.TempDir(), "missing.vert"))
	assert.Error(t, err)
}

func TestCloseWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.vert")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := New(stats.New(), path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
