package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormatsModule(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandlerTo(&buf, nil))

	logger.Error("error compiling vertex shader: 0:1: syntax error", slog.String("module", "shaders"))

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "ERROR [shaders] error compiling vertex shader: 0:1: syntax error\n"), line)
	assert.NotContains(t, line, "\033[", "no colour when not writing to a terminal")
}

func TestHandlerWithoutModule(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandlerTo(&buf, nil))

	logger.Info("OpenGL version 3.3")

	assert.True(t, strings.HasSuffix(buf.String(), "INFO OpenGL version 3.3\n"), buf.String())
}

func TestHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandlerTo(&buf, nil)).With(slog.String("module", "window"))

	logger.Warn("first")
	logger.Warn("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN [window] first")
	assert.Contains(t, lines[1], "WARN [window] second")
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandlerTo(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
