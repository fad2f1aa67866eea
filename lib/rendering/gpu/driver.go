// Package gpu is the narrow set of OpenGL calls trianglix makes. gldriver
// talks to the real driver, gputest records calls for tests.
package gpu

type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

// NoStage is used where no shader stage applies, such as a link failure.
const NoStage Stage = -1

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	case NoStage:
		return "none"
	default:
		return "unknown"
	}
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Driver must only be used from the thread that owns the GL context.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most limit bytes of the shader info log.
	ShaderInfoLog(shader uint32, limit int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, limit int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	// BufferData uploads data with static draw usage to the buffer
	// currently bound to target.
	BufferData(target BufferTarget, data []byte)
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	// DrawTriangles draws count uint32 indices from the bound element
	// buffer as a triangle list.
	DrawTriangles(count int32)
	// ReadPixels returns RGBA bytes of the draw buffer, bottom row first.
	ReadPixels(x, y, width, height int32) []byte

	Version() string
}
