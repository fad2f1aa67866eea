package mixer

import (
	"testing"

	"github.com/fosdem/trianglix/lib/config"
	"github.com/fosdem/trianglix/lib/rendering/gpu/gputest"
	"github.com/fosdem/trianglix/lib/rendering/shaders"
	"github.com/fosdem/trianglix/lib/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertexSource   = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	fragmentSource = "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

func TestBuildProgramLinked(t *testing.T) {
	st := stats.New()
	program, err := buildProgram(gputest.New(), vertexSource, fragmentSource, config.Default().Shaders, st)

	require.NoError(t, err)
	assert.NotZero(t, program.ID)
	assert.Equal(t, "linked", st.Report().ShaderState)
	assert.Empty(t, st.Report().ShaderLog)
}

func TestBuildProgramAbort(t *testing.T) {
	drv := gputest.New()
	st := stats.New()
	cfg := &config.ShadersCfg{OnError: config.OnErrorAbort}

	program, err := buildProgram(drv, "SYNTAX_ERROR", fragmentSource, cfg, st)

	assert.Nil(t, program)
	require.ErrorIs(t, err, ErrShaderBuild)
	var compileErr *shaders.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, drv.CompileLog, compileErr.Log)
	assert.Equal(t, "failed", st.Report().ShaderState)
	assert.Equal(t, drv.CompileLog, st.Report().ShaderLog)
}

func TestBuildProgramContinue(t *testing.T) {
	drv := gputest.New()
	drv.LinkFails = true
	st := stats.New()
	cfg := &config.ShadersCfg{OnError: config.OnErrorContinue}

	program, err := buildProgram(drv, vertexSource, fragmentSource, cfg, st)

	require.NoError(t, err)
	assert.Zero(t, program.ID)
	assert.Equal(t, shaders.Failed, program.State)
	assert.Equal(t, "failed", st.Report().ShaderState)
	assert.Equal(t, drv.LinkLog, st.Report().ShaderLog)
}
