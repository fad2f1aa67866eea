package rendering

import (
	"encoding/binary"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// Attribute locations, shared with the shader sources.
const (
	PositionLocation = 0
	ColourLocation   = 1
)

const (
	VertexStride = 6 * f32
	ColourOffset = 3 * f32
)

// Vertex is laid out exactly as the GPU reads it: position then colour,
// 24 bytes, no padding.
type Vertex struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
}

// TriangleVertices is the fixed payload: red, green and blue corners.
var TriangleVertices = []Vertex{
	{Position: mgl32.Vec3{-0.5, -0.5, 0.0}, Colour: mgl32.Vec3{1.0, 0.0, 0.0}},
	{Position: mgl32.Vec3{0.5, -0.5, 0.0}, Colour: mgl32.Vec3{0.0, 1.0, 0.0}},
	{Position: mgl32.Vec3{0.0, 0.5, 0.0}, Colour: mgl32.Vec3{0.0, 0.0, 1.0}},
}

var TriangleIndices = []uint32{0, 1, 2}

func EncodeVertices(vertices []Vertex) ([]byte, error) {
	b, err := binary.Append(nil, binary.NativeEndian, vertices)
	if err != nil {
		return nil, fmt.Errorf("could not encode vertices: %w", err)
	}
	return b, nil
}

func EncodeIndices(indices []uint32) ([]byte, error) {
	b, err := binary.Append(nil, binary.NativeEndian, indices)
	if err != nil {
		return nil, fmt.Errorf("could not encode indices: %w", err)
	}
	return b, nil
}
