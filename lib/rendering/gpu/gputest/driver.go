// Package gputest provides a gpu.Driver that records calls instead of
// talking to a GPU.
package gputest

import (
	"fmt"
	"strings"

	"github.com/fosdem/trianglix/lib/rendering/gpu"
)

type Shader struct {
	Stage    gpu.Stage
	Source   string
	Compiled bool
	Deleted  bool
}

type Program struct {
	Shaders []uint32
	Linked  bool
	Deleted bool
}

type Attrib struct {
	Index   uint32
	Size    int32
	Stride  int32
	Offset  uintptr
	Enabled bool
}

type Draw struct {
	Program uint32
	VAO     uint32
	Element uint32
	Count   int32
}

// Driver fakes a GL driver. A shader whose source contains FailToken
// fails to compile with CompileLog; LinkFails makes every link fail.
type Driver struct {
	FailToken  string
	CompileLog string
	LinkFails  bool
	LinkLog    string

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32][]byte
	Attribs  map[uint32]*Attrib

	// Pixels overrides ReadPixels; by default every pixel has the clear
	// colour.
	Pixels func(width, height int32) []byte

	ClearColour [4]float32
	Clears      int
	Draws       []Draw
	Viewports   [][4]int32
	Calls       []string

	nextID   uint32
	program  uint32
	vao      uint32
	bound    map[gpu.BufferTarget]uint32
	vaoElems map[uint32]uint32
}

func New() *Driver {
	return &Driver{
		FailToken:  "SYNTAX_ERROR",
		CompileLog: "0:1(1): error: syntax error, unexpected IDENTIFIER",
		LinkLog:    "error: linking failed",
		Shaders:    make(map[uint32]*Shader),
		Programs:   make(map[uint32]*Program),
		Buffers:    make(map[uint32][]byte),
		Attribs:    make(map[uint32]*Attrib),
		bound:      make(map[gpu.BufferTarget]uint32),
		vaoElems:   make(map[uint32]uint32),
	}
}

var _ gpu.Driver = (*Driver)(nil)

func (d *Driver) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Driver) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Driver) CreateShader(stage gpu.Stage) uint32 {
	id := d.id()
	d.Shaders[id] = &Shader{Stage: stage}
	d.record("CreateShader(%s)", stage)
	return id
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	d.Shaders[shader].Source = source
}

func (d *Driver) CompileShader(shader uint32) {
	s := d.Shaders[shader]
	s.Compiled = d.FailToken == "" || !strings.Contains(s.Source, d.FailToken)
	d.record("CompileShader(%d)", shader)
}

func (d *Driver) ShaderCompiled(shader uint32) bool {
	return d.Shaders[shader].Compiled
}

func (d *Driver) ShaderInfoLog(shader uint32, limit int) string {
	if d.Shaders[shader].Compiled {
		return ""
	}
	return truncate(d.CompileLog, limit)
}

func (d *Driver) DeleteShader(shader uint32) {
	d.Shaders[shader].Deleted = true
	d.record("DeleteShader(%d)", shader)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.id()
	d.Programs[id] = &Program{}
	d.record("CreateProgram")
	return id
}

func (d *Driver) AttachShader(program, shader uint32) {
	p := d.Programs[program]
	p.Shaders = append(p.Shaders, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	p := d.Programs[program]
	p.Linked = !d.LinkFails && len(p.Shaders) == 2
	for _, s := range p.Shaders {
		if !d.Shaders[s].Compiled {
			p.Linked = false
		}
	}
	d.record("LinkProgram(%d)", program)
}

func (d *Driver) ProgramLinked(program uint32) bool {
	return d.Programs[program].Linked
}

func (d *Driver) ProgramInfoLog(program uint32, limit int) string {
	if d.Programs[program].Linked {
		return ""
	}
	return truncate(d.LinkLog, limit)
}

func (d *Driver) UseProgram(program uint32) {
	d.program = program
}

func (d *Driver) DeleteProgram(program uint32) {
	d.Programs[program].Deleted = true
	d.record("DeleteProgram(%d)", program)
}

func (d *Driver) GenVertexArray() uint32 {
	return d.id()
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.vao = vao
	d.bound[gpu.ElementArrayBuffer] = d.vaoElems[vao]
}

func (d *Driver) GenBuffer() uint32 {
	id := d.id()
	d.Buffers[id] = nil
	return id
}

func (d *Driver) BindBuffer(target gpu.BufferTarget, buffer uint32) {
	d.bound[target] = buffer
	if target == gpu.ElementArrayBuffer && d.vao != 0 {
		d.vaoElems[d.vao] = buffer
	}
}

func (d *Driver) BufferData(target gpu.BufferTarget, data []byte) {
	d.Buffers[d.bound[target]] = append([]byte(nil), data...)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	a := d.attrib(index)
	a.Size = size
	a.Stride = stride
	a.Offset = offset
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.attrib(index).Enabled = true
}

func (d *Driver) attrib(index uint32) *Attrib {
	a, ok := d.Attribs[index]
	if !ok {
		a = &Attrib{Index: index}
		d.Attribs[index] = a
	}
	return a
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.Viewports = append(d.Viewports, [4]int32{x, y, width, height})
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.ClearColour = [4]float32{r, g, b, a}
}

func (d *Driver) Clear() {
	d.Clears++
}

func (d *Driver) DrawTriangles(count int32) {
	d.Draws = append(d.Draws, Draw{
		Program: d.program,
		VAO:     d.vao,
		Element: d.bound[gpu.ElementArrayBuffer],
		Count:   count,
	})
}

func (d *Driver) ReadPixels(x, y, width, height int32) []byte {
	d.record("ReadPixels(%d, %d, %d, %d)", x, y, width, height)
	if d.Pixels != nil {
		return d.Pixels(width, height)
	}
	var px [4]byte
	for i, c := range d.ClearColour {
		px[i] = uint8(c*255 + 0.5)
	}
	buf := make([]byte, 0, int(width)*int(height)*4)
	for range int(width) * int(height) {
		buf = append(buf, px[:]...)
	}
	return buf
}

// ElementBuffer returns the index buffer bound when the last draw was
// issued.
func (d *Driver) ElementBuffer() []byte {
	if len(d.Draws) == 0 {
		return nil
	}
	return d.Buffers[d.Draws[len(d.Draws)-1].Element]
}

func (d *Driver) Version() string {
	return "gputest / fake / 3.3"
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
