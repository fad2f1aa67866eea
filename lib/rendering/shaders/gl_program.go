package shaders

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/trianglix/lib/loader"
	"github.com/fosdem/trianglix/lib/metrics"
	"github.com/fosdem/trianglix/lib/rendering/gpu"
)

// InfoLogLimit bounds how much of a driver info log is kept.
const InfoLogLimit = 1024

type State int

const (
	Uncompiled State = iota
	Compiled
	Linked
	Failed
)

func (s State) String() string {
	switch s {
	case Uncompiled:
		return "uncompiled"
	case Compiled:
		return "compiled"
	case Linked:
		return "linked"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Program tracks one build. ID is only valid once State is Linked.
type Program struct {
	ID    uint32
	State State
	// Stage is the stage that failed to compile, gpu.NoStage otherwise.
	Stage gpu.Stage
	Log   string
}

type CompileError struct {
	Stage gpu.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("error compiling %s shader: %s", e.Stage, e.Log)
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("error linking program: %s", e.Log)
}

// Build compiles both stages and links them. The returned Program is
// never nil; on failure it is in the Failed state and the error is a
// *CompileError or *LinkError carrying the driver's info log. Shader
// objects are released before Build returns.
func Build(drv gpu.Driver, vertexSource, fragmentSource string) (*Program, error) {
	p := &Program{State: Uncompiled, Stage: gpu.NoStage}

	vertexShader, err := p.compile(drv, vertexSource, gpu.VertexStage)
	if err != nil {
		return p, err
	}
	defer drv.DeleteShader(vertexShader)

	fragmentShader, err := p.compile(drv, fragmentSource, gpu.FragmentStage)
	if err != nil {
		return p, err
	}
	defer drv.DeleteShader(fragmentShader)

	program := drv.CreateProgram()
	drv.AttachShader(program, vertexShader)
	drv.AttachShader(program, fragmentShader)
	drv.LinkProgram(program)

	if !drv.ProgramLinked(program) {
		p.State = Failed
		p.Log = drv.ProgramInfoLog(program, InfoLogLimit)
		drv.DeleteProgram(program)

		err := &LinkError{Log: p.Log}
		metrics.ShaderLinkFailures.Inc()
		slog.Error(err.Error(), slog.String("module", "shaders"))
		return p, err
	}

	p.ID = program
	p.State = Linked
	return p, nil
}

func (p *Program) compile(drv gpu.Driver, source string, stage gpu.Stage) (uint32, error) {
	shader := drv.CreateShader(stage)
	drv.ShaderSource(shader, source)
	drv.CompileShader(shader)

	if !drv.ShaderCompiled(shader) {
		p.State = Failed
		p.Stage = stage
		p.Log = drv.ShaderInfoLog(shader, InfoLogLimit)
		drv.DeleteShader(shader)

		err := &CompileError{Stage: stage, Log: p.Log}
		metrics.ShaderCompileFailures.WithLabelValues(stage.String()).Inc()
		slog.Error(err.Error(), slog.String("module", "shaders"))
		return 0, err
	}

	p.State = Compiled
	return shader, nil
}

// LoadSources reads the vertex and fragment sources. An empty path
// selects the built-in source for that stage.
func LoadSources(vertexPath, fragmentPath string) (string, string, error) {
	vertexSource, err := loadSource(vertexPath, BuiltinVertex)
	if err != nil {
		return "", "", fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentSource, err := loadSource(fragmentPath, BuiltinFragment)
	if err != nil {
		return "", "", fmt.Errorf("could not get fragment shader: %w", err)
	}

	return vertexSource, fragmentSource, nil
}

func loadSource(path string, builtin string) (string, error) {
	if path != "" {
		return loader.Slurp(path)
	}

	shaderer, err := NewShaderer()
	if err != nil {
		return "", fmt.Errorf("could not get shaders: %w", err)
	}
	return shaderer.GetShaderSource(builtin, DefaultShaderData())
}
