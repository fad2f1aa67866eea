// Package gldriver implements gpu.Driver with the go-gl bindings.
package gldriver

import (
	"fmt"

	"github.com/fosdem/trianglix/lib/rendering/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// GL implements gpu.Driver on top of the OpenGL 3.3 core bindings. The
// context must be current before Init is called.
type GL struct{}

func Init() (*GL, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}
	return &GL{}, nil
}

var _ gpu.Driver = (*GL)(nil)

var shaderTypes = map[gpu.Stage]uint32{
	gpu.VertexStage:   gl.VERTEX_SHADER,
	gpu.FragmentStage: gl.FRAGMENT_SHADER,
}

var bufferTargets = map[gpu.BufferTarget]uint32{
	gpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

func (*GL) CreateShader(stage gpu.Stage) uint32 {
	return gl.CreateShader(shaderTypes[stage])
}

func (*GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ShaderInfoLog(shader uint32, limit int) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	buf := logBuffer(logLength, limit)
	if buf == nil {
		return ""
	}
	var written int32
	gl.GetShaderInfoLog(shader, int32(len(buf)), &written, &buf[0])
	return string(buf[:written])
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*GL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ProgramInfoLog(program uint32, limit int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	buf := logBuffer(logLength, limit)
	if buf == nil {
		return ""
	}
	var written int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &written, &buf[0])
	return string(buf[:written])
}

func (*GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*GL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (*GL) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (*GL) BindBuffer(target gpu.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTargets[target], buffer)
}

func (*GL) BufferData(target gpu.BufferTarget, data []byte) {
	if len(data) == 0 {
		gl.BufferData(bufferTargets[target], 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTargets[target], len(data), gl.Ptr(&data[0]), gl.STATIC_DRAW)
}

func (*GL) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (*GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (*GL) DrawTriangles(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

func (*GL) ReadPixels(x, y, width, height int32) []byte {
	buf := make([]byte, int(width)*int(height)*4)
	if len(buf) == 0 {
		return buf
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&buf[0]))
	return buf
}

func (*GL) Version() string {
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	return fmt.Sprintf("%s / %s / %s", vendor, renderer, version)
}

// logBuffer sizes a buffer for an info log of logLength bytes (including
// the terminating NUL), capped at limit bytes of text.
func logBuffer(logLength int32, limit int) []byte {
	if logLength <= 1 || limit <= 0 {
		return nil
	}
	n := min(int(logLength), limit+1)
	return make([]byte, n)
}
