// Package vao wraps an OpenGL vertex array object holding an indexed
// triangle mesh: positions in attribute 0, optional extra attributes after
// it, and an element buffer.
package vao

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/genome/internal/logger"
)

// ErrAttribSize is returned for attributes outside 1-4 components (float..vec4).
var ErrAttribSize = errors.New("attribute size must be 1-4")

// VAO owns a vertex array object, its vertex buffers, and its index buffer.
type VAO struct {
	id       uint32
	vbos     []uint32
	ebo      uint32
	vertices int
	count    int32
	next     uint32 // next free attribute location
}

// New uploads positions (xyz triples) to attribute 0 and indices to the
// element buffer.
func New(positions []float32, indices []uint32) (*VAO, error) {
	vertices, err := validate(positions, indices)
	if err != nil {
		return nil, err
	}

	v := &VAO{vertices: vertices, count: int32(len(indices))}
	gl.GenVertexArrays(1, &v.id)

	if err := v.AddAttrib(3, positions); err != nil {
		v.Delete()
		return nil, err
	}

	// AddAttrib leaves no VAO bound and the element buffer binding is VAO state.
	gl.BindVertexArray(v.id)
	gl.GenBuffers(1, &v.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	logger.Named("vao").Debug("created",
		zap.Uint32("vao", v.id),
		zap.Int("vertices", vertices),
		zap.Int32("indices", v.count),
	)
	return v, nil
}

// AddAttrib uploads data as the next attribute location with size
// components per vertex. data must hold exactly size values per vertex.
func (v *VAO) AddAttrib(size int32, data []float32) error {
	if size < 1 || size > 4 {
		return fmt.Errorf("%w: got %d", ErrAttribSize, size)
	}
	if len(data) != v.vertices*int(size) {
		return fmt.Errorf("attribute %d: %d values for %d vertices of size %d", v.next, len(data), v.vertices, size)
	}

	gl.BindVertexArray(v.id)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(v.next, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(v.next)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	v.vbos = append(v.vbos, vbo)
	v.next++
	return nil
}

// validate checks the mesh and returns its vertex count.
func validate(positions []float32, indices []uint32) (int, error) {
	if len(positions) == 0 || len(positions)%3 != 0 {
		return 0, fmt.Errorf("positions length %d is not a positive multiple of 3", len(positions))
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return 0, fmt.Errorf("indices length %d is not a positive multiple of 3", len(indices))
	}
	vertices := len(positions) / 3
	for i, idx := range indices {
		if int(idx) >= vertices {
			return 0, fmt.Errorf("index %d at %d out of range for %d vertices", idx, i, vertices)
		}
	}
	return vertices, nil
}

// Render draws the indexed triangles.
func (v *VAO) Render() {
	gl.BindVertexArray(v.id)
	gl.DrawElements(gl.TRIANGLES, v.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Attribs returns the number of attributes bound so far.
func (v *VAO) Attribs() int { return int(v.next) }

// Delete releases all GL objects.
func (v *VAO) Delete() {
	if len(v.vbos) > 0 {
		gl.DeleteBuffers(int32(len(v.vbos)), &v.vbos[0])
		v.vbos = nil
	}
	if v.ebo != 0 {
		gl.DeleteBuffers(1, &v.ebo)
		v.ebo = 0
	}
	if v.id != 0 {
		gl.DeleteVertexArrays(1, &v.id)
		v.id = 0
	}
}
