// Package geometry builds 2D shapes on top of pkg/math and flattens them into
// GPU-ready vertex and index buffers.
package geometry

import (
	"errors"
	"fmt"
	"math"

	gmath "github.com/Faultbox/genome/pkg/math"
)

// ErrTooFewVertices is returned when a polygon would have fewer than 3 vertices.
var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

// Polygon is a closed 2D polygon whose vertices are listed counter-clockwise.
type Polygon[T gmath.Float] struct {
	vertices []gmath.Vec2[T]
}

// NewRegularPolygon returns a regular n-gon inscribed in the unit circle.
// The first vertex is (0, -1) rotated by half a step, so an even-sided
// polygon rests on a flat bottom edge.
func NewRegularPolygon[T gmath.Float](n int) (Polygon[T], error) {
	if n < 3 {
		return Polygon[T]{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}

	step := 2 * math.Pi / float64(n)
	start := gmath.Vec2[T]{0, -1}

	vertices := make([]gmath.Vec2[T], n)
	for i := range n {
		vertices[i] = start.Rotate(step/2 + step*float64(i))
	}
	return Polygon[T]{vertices: vertices}, nil
}

// NewPolygon builds a polygon from explicit vertices. The slice is copied.
func NewPolygon[T gmath.Float](vertices ...gmath.Vec2[T]) (Polygon[T], error) {
	if len(vertices) < 3 {
		return Polygon[T]{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	return Polygon[T]{vertices: append([]gmath.Vec2[T](nil), vertices...)}, nil
}

func (p Polygon[T]) NumVertices() int { return len(p.vertices) }

// Vertex returns vertex i. It panics if i is out of range.
func (p Polygon[T]) Vertex(i int) gmath.Vec2[T] { return p.vertices[i] }

// Vertices returns a copy of the vertex list.
func (p Polygon[T]) Vertices() []gmath.Vec2[T] {
	return append([]gmath.Vec2[T](nil), p.vertices...)
}

// Positions flattens the vertices into xyz triples with z = 0.
func (p Polygon[T]) Positions() []T {
	out := make([]T, 0, 3*len(p.vertices))
	for _, v := range p.vertices {
		out = append(out, v[0], v[1], 0)
	}
	return out
}

// TexCoords maps each vertex from [-1, 1] to [0, 1] texture space, with v
// pointing down so the image is upright.
func (p Polygon[T]) TexCoords() []T {
	out := make([]T, 0, 2*len(p.vertices))
	for _, v := range p.vertices {
		out = append(out, (v[0]+1)/2, (1-v[1])/2)
	}
	return out
}

// Indices triangulates the polygon as a fan around vertex 0.
// Only valid for convex polygons.
func (p Polygon[T]) Indices() []uint32 {
	n := len(p.vertices)
	if n < 3 {
		return nil
	}
	indices := make([]uint32, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint32(i), uint32(i+1))
	}
	return indices
}

// Area returns the signed area (shoelace formula); positive for
// counter-clockwise winding.
func (p Polygon[T]) Area() T {
	var sum T
	for i, a := range p.vertices {
		b := p.vertices[(i+1)%len(p.vertices)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

// Scale returns the polygon with every vertex multiplied by s.
func (p Polygon[T]) Scale(s gmath.Vec2[T]) Polygon[T] {
	out := Polygon[T]{vertices: make([]gmath.Vec2[T], len(p.vertices))}
	for i, v := range p.vertices {
		out.vertices[i] = v.ScaleBy(s)
	}
	return out
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon[T]) Bounds() (lo, hi gmath.Vec2[T]) {
	if len(p.vertices) == 0 {
		return lo, hi
	}
	lo, hi = p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		lo = gmath.Vec2[T]{min(lo[0], v[0]), min(lo[1], v[1])}
		hi = gmath.Vec2[T]{max(hi[0], v[0]), max(hi[1], v[1])}
	}
	return lo, hi
}

// Contains reports whether p lies inside the polygon (even-odd rule).
// Points exactly on an edge may go either way.
func (p Polygon[T]) Contains(pt gmath.Vec2[T]) bool {
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if (a[1] > pt[1]) != (b[1] > pt[1]) &&
			pt[0] < (b[0]-a[0])*(pt[1]-a[1])/(b[1]-a[1])+a[0] {
			inside = !inside
		}
	}
	return inside
}
