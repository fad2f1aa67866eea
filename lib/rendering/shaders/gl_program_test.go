package shaders

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fosdem/trianglix/lib/metrics"
	"github.com/fosdem/trianglix/lib/rendering/gpu"
	"github.com/fosdem/trianglix/lib/rendering/gpu/gputest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func builtinSources(t *testing.T) (string, string) {
	t.Helper()
	vert, frag, err := LoadSources("", "")
	require.NoError(t, err)
	return vert, frag
}

func TestBuildValidPair(t *testing.T) {
	logs := captureLog(t)
	drv := gputest.New()
	vert, frag := builtinSources(t)

	p, err := Build(drv, vert, frag)
	require.NoError(t, err)

	assert.Equal(t, Linked, p.State)
	assert.Equal(t, gpu.NoStage, p.Stage)
	assert.NotZero(t, p.ID)
	assert.True(t, drv.Programs[p.ID].Linked)
	assert.Empty(t, p.Log)
	assert.Empty(t, logs.String())
}

func TestBuildReleasesShaderObjects(t *testing.T) {
	drv := gputest.New()
	vert, frag := builtinSources(t)

	p, err := Build(drv, vert, frag)
	require.NoError(t, err)

	require.Len(t, drv.Shaders, 2)
	for _, s := range drv.Shaders {
		assert.True(t, s.Deleted)
	}
	assert.False(t, drv.Programs[p.ID].Deleted)
}

func TestBuildVertexSyntaxError(t *testing.T) {
	logs := captureLog(t)
	drv := gputest.New()
	_, frag := builtinSources(t)
	before := testutil.ToFloat64(metrics.ShaderCompileFailures.WithLabelValues("vertex"))

	p, err := Build(drv, "#version 330 core\nSYNTAX_ERROR\n", frag)
	require.Error(t, err)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, gpu.VertexStage, compileErr.Stage)
	assert.Equal(t, drv.CompileLog, compileErr.Log)
	assert.Equal(t, Failed, p.State)
	assert.Equal(t, gpu.VertexStage, p.Stage)
	assert.Zero(t, p.ID)

	assert.Contains(t, logs.String(), "error compiling vertex shader")
	assert.Contains(t, logs.String(), "syntax error, unexpected IDENTIFIER")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ShaderCompileFailures.WithLabelValues("vertex")))

	// the fragment stage is never attempted and nothing is linked
	assert.Len(t, drv.Shaders, 1)
	assert.Empty(t, drv.Programs)
	for _, s := range drv.Shaders {
		assert.True(t, s.Deleted)
	}
}

func TestBuildFragmentSyntaxError(t *testing.T) {
	logs := captureLog(t)
	drv := gputest.New()
	drv.CompileLog = "0:3(5): error: `fragColour' undeclared"
	vert, _ := builtinSources(t)

	p, err := Build(drv, vert, "#version 330 core\nvoid main() { SYNTAX_ERROR }\n")

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "fragment", compileErr.Stage.String())
	assert.Equal(t, "0:3(5): error: `fragColour' undeclared", compileErr.Log)
	assert.Equal(t, Failed, p.State)
	assert.Equal(t, gpu.FragmentStage, p.Stage)
	assert.Contains(t, logs.String(), "error compiling fragment shader")
	assert.NotContains(t, logs.String(), "vertex")

	require.Len(t, drv.Shaders, 2)
	for _, s := range drv.Shaders {
		assert.True(t, s.Deleted)
	}
}

func TestBuildLinkError(t *testing.T) {
	logs := captureLog(t)
	drv := gputest.New()
	drv.LinkFails = true
	drv.LinkLog = "error: vertex shader output `colour' not read by fragment shader"
	vert, frag := builtinSources(t)
	before := testutil.ToFloat64(metrics.ShaderLinkFailures)

	p, err := Build(drv, vert, frag)

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, drv.LinkLog, linkErr.Log)
	assert.Equal(t, Failed, p.State)
	assert.Equal(t, gpu.NoStage, p.Stage)
	assert.Equal(t, "none", p.Stage.String())
	assert.Zero(t, p.ID)
	assert.Contains(t, logs.String(), "error linking program")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ShaderLinkFailures))

	require.Len(t, drv.Programs, 1)
	for _, prog := range drv.Programs {
		assert.True(t, prog.Deleted)
	}
	for _, s := range drv.Shaders {
		assert.True(t, s.Deleted)
	}
}

func TestBuildInfoLogIsBounded(t *testing.T) {
	captureLog(t)
	drv := gputest.New()
	drv.CompileLog = strings.Repeat("x", 4*InfoLogLimit)

	_, err := Build(drv, "SYNTAX_ERROR", "")

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Len(t, compileErr.Log, InfoLogLimit)
}

func TestLoadSourcesFromFiles(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "default.vert")
	fragPath := filepath.Join(dir, "default.frag")
	require.NoError(t, os.WriteFile(vertPath, []byte("vertex source"), 0o644))
	require.NoError(t, os.WriteFile(fragPath, []byte("fragment source"), 0o644))

	vert, frag, err := LoadSources(vertPath, fragPath)
	require.NoError(t, err)
	assert.Equal(t, "vertex source", vert)
	assert.Equal(t, "fragment source", frag)
}

func TestLoadSourcesMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.frag")

	_, _, err := LoadSources("", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not get fragment shader")
	assert.Contains(t, err.Error(), missing)
}
