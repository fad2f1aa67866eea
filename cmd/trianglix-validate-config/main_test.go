package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trianglix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: ok\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"trianglix-validate-config", path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Config valid!")
	assert.Contains(t, stdout.String(), "ok (500x500)")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trianglix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shaders:\n  on_error: sometimes\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"trianglix-validate-config", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Config invalid: shaders are invalid")
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"trianglix-validate-config"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Usage:")
}
