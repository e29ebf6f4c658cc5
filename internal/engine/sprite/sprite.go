// Package sprite partitions a texture atlas into a grid of equally sized
// frames and steps through them over time.
package sprite

import (
	"fmt"

	"github.com/Faultbox/genome/pkg/math"
)

// Grid describes an atlas split into Cols x Rows frames, numbered row by row
// from the top-left.
type Grid struct {
	Cols, Rows int
}

// NewGrid validates the grid dimensions.
func NewGrid(cols, rows int) (Grid, error) {
	if cols <= 0 || rows <= 0 {
		return Grid{}, fmt.Errorf("sprite grid %dx%d must be positive", cols, rows)
	}
	return Grid{Cols: cols, Rows: rows}, nil
}

// Frames returns the number of frames in the grid.
func (g Grid) Frames() int { return g.Cols * g.Rows }

// index wraps i into [0, Frames()).
func (g Grid) index(i int) int {
	n := g.Frames()
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Region returns the texture-space transform of frame i as
// (scaleU, scaleV, offsetU, offsetV): uv' = uv*scale + offset.
// i wraps around, so any integer selects a frame.
func (g Grid) Region(i int) math.Vec4f {
	i = g.index(i)
	col, row := i%g.Cols, i/g.Cols
	su, sv := 1/float32(g.Cols), 1/float32(g.Rows)
	return math.Vec4f{su, sv, float32(col) * su, float32(row) * sv}
}

// FrameRect returns frame i in pixels for an atlas of the given size.
// Frames in the last column and row absorb any remainder.
func (g Grid) FrameRect(i, width, height int) (x, y, w, h int) {
	i = g.index(i)
	col, row := i%g.Cols, i/g.Cols
	w, h = width/g.Cols, height/g.Rows
	x, y = col*w, row*h
	if col == g.Cols-1 {
		w = width - x
	}
	if row == g.Rows-1 {
		h = height - y
	}
	return x, y, w, h
}

// Animation advances through a grid's frames at a fixed rate.
type Animation struct {
	grid     Grid
	interval float32 // seconds per frame; 0 disables advancing
	elapsed  float32
	frame    int
	Paused   bool
}

// NewAnimation steps through grid at fps frames per second.
func NewAnimation(grid Grid, fps float32) *Animation {
	a := &Animation{grid: grid}
	if fps > 0 {
		a.interval = 1 / fps
	}
	return a
}

// Update accumulates dt seconds and advances as many frames as elapsed,
// looping at the end.
func (a *Animation) Update(dt float32) {
	if a.Paused || a.interval == 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.interval {
		a.elapsed -= a.interval
		a.frame = (a.frame + 1) % a.grid.Frames()
	}
}

// Step moves by n frames regardless of timing.
func (a *Animation) Step(n int) {
	a.frame = a.grid.index(a.frame + n)
	a.elapsed = 0
}

func (a *Animation) Frame() int { return a.frame }

// Region returns the texture region of the current frame.
func (a *Animation) Region() math.Vec4f {
	return a.grid.Region(a.frame)
}
