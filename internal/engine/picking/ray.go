// Package picking turns screen positions into world-space rays.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/genome/pkg/math"
)

// Ray is a half-line from Origin along the normalized Direction.
type Ray struct {
	Origin    math.Vec3f
	Direction math.Vec3f
}

// ScreenToRay converts pixel coordinates (origin top-left) into a world-space
// ray. invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4f) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := unproject(invViewProj, math.Vec4f{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, math.Vec4f{ndcX, ndcY, 1, 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4f, ndc math.Vec4f) math.Vec3f {
	p := inv.MulVec4(ndc)
	if p[3] != 0 {
		return p.XYZ().DivScalar(p[3])
	}
	return p.XYZ()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3f {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlane hits the plane through point with the given normal.
// Rays parallel to the plane or pointing away from it miss.
func (r Ray) IntersectPlane(point, normal math.Vec3f) (math.Vec3f, bool) {
	denom := r.Direction.Dot(normal)
	if math32.Abs(denom) < 0.001 {
		return math.Vec3f{}, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return math.Vec3f{}, false
	}
	return r.At(t), true
}
