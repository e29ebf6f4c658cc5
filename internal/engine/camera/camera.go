// Package camera builds view and projection matrices for the demo scene.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/genome/pkg/math"
)

// Mode selects the projection.
type Mode int

const (
	Ortho Mode = iota
	Perspective
)

// ParseMode maps "ortho" and "perspective" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ortho":
		return Ortho, nil
	case "perspective":
		return Perspective, nil
	}
	return Ortho, fmt.Errorf("unknown projection %q", s)
}

func (m Mode) String() string {
	if m == Perspective {
		return "perspective"
	}
	return "ortho"
}

// Camera orbits the origin. In ortho mode Zoom is the world height visible
// on the shorter screen side; in perspective mode the eye sits Distance away.
type Camera struct {
	Mode Mode

	FOV  float32 // vertical field of view, radians
	Near float32
	Far  float32
	Zoom float32

	// Spherical coordinates of the eye around the origin
	Distance float32
	Yaw      float32
	Pitch    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New returns a camera looking down -Z at the origin.
func New(mode Mode) *Camera {
	return &Camera{
		Mode:            mode,
		FOV:             math32.Pi / 3,
		Near:            0.1,
		Far:             100,
		Zoom:            3,
		Distance:        3,
		MinDistance:     0.5,
		MaxDistance:     50,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the eye position in world space.
func (c *Camera) Position() math.Vec3f {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return math.Vec3f{
		c.Distance * cp * sy,
		c.Distance * sp,
		c.Distance * cp * cy,
	}
}

// View returns the view matrix.
func (c *Camera) View() math.Mat4f {
	return math.LookAt(c.Position(), math.Vec3f{}, math.Vec3f{0, 1, 0})
}

// Projection returns the projection matrix for a viewport of the given size.
func (c *Camera) Projection(width, height int) math.Mat4f {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	if c.Mode == Perspective {
		return math.Perspective(c.FOV, aspect, c.Near, c.Far)
	}

	halfW, halfH := c.Zoom/2, c.Zoom/2
	if aspect >= 1 {
		halfW *= aspect
	} else {
		halfH /= aspect
	}
	// The ortho eye also orbits, so the depth range is centered on it.
	return math.Ortho(-halfW, halfW, -halfH, halfH, c.Distance-c.Far/2, c.Distance+c.Far/2)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection(width, height int) math.Mat4f {
	return c.Projection(width, height).Mul(c.View())
}

// Toggle switches between ortho and perspective.
func (c *Camera) Toggle() {
	if c.Mode == Ortho {
		c.Mode = Perspective
	} else {
		c.Mode = Ortho
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Camera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = math32.Max(-c.MaxPitch, math32.Min(c.MaxPitch, c.Pitch))
}

// HandleZoom scales distance (perspective) or zoom (ortho) by a wheel delta.
func (c *Camera) HandleZoom(delta float32) {
	f := 1 - delta*c.ZoomSensitivity
	if c.Mode == Ortho {
		c.Zoom = math32.Max(0.1, c.Zoom*f)
		return
	}
	c.Distance = math32.Max(c.MinDistance, math32.Min(c.MaxDistance, c.Distance*f))
}
