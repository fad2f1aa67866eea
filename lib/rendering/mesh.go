package rendering

import (
	"github.com/fosdem/trianglix/lib/rendering/gpu"
)

// Mesh holds the GPU buffers for one indexed vertex list. It is uploaded
// once and never resized.
type Mesh struct {
	drv gpu.Driver

	// GL IDs
	VAO uint32
	VBO uint32
	EBO uint32

	IndexCount int32
}

func NewMesh(drv gpu.Driver, vertices []Vertex, indices []uint32) (*Mesh, error) {
	vertexData, err := EncodeVertices(vertices)
	if err != nil {
		return nil, err
	}
	indexData, err := EncodeIndices(indices)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		drv:        drv,
		IndexCount: int32(len(indices)),
	}

	m.VAO = drv.GenVertexArray()
	drv.BindVertexArray(m.VAO)

	m.VBO = drv.GenBuffer()
	drv.BindBuffer(gpu.ArrayBuffer, m.VBO)
	drv.BufferData(gpu.ArrayBuffer, vertexData)

	m.EBO = drv.GenBuffer()
	drv.BindBuffer(gpu.ElementArrayBuffer, m.EBO)
	drv.BufferData(gpu.ElementArrayBuffer, indexData)

	drv.VertexAttribPointer(PositionLocation, 3, VertexStride, 0)
	drv.EnableVertexAttribArray(PositionLocation)

	drv.VertexAttribPointer(ColourLocation, 3, VertexStride, ColourOffset)
	drv.EnableVertexAttribArray(ColourLocation)

	return m, nil
}

func (m *Mesh) Bind() {
	m.drv.BindVertexArray(m.VAO)
	m.drv.BindBuffer(gpu.ElementArrayBuffer, m.EBO)
}

// Draw issues one triangle-list draw over every index. Bind must have
// been called.
func (m *Mesh) Draw() {
	m.drv.DrawTriangles(m.IndexCount)
}
