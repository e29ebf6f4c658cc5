package sprite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/genome/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestRegion(t *testing.T) {
	g := Grid{Cols: 4, Rows: 2}
	tests := []struct {
		index int
		want  math.Vec4f
	}{
		{0, math.Vec4f{0.25, 0.5, 0, 0}},
		{3, math.Vec4f{0.25, 0.5, 0.75, 0}},
		{4, math.Vec4f{0.25, 0.5, 0, 0.5}},
		{7, math.Vec4f{0.25, 0.5, 0.75, 0.5}},
		{8, math.Vec4f{0.25, 0.5, 0, 0}},       // wraps
		{-1, math.Vec4f{0.25, 0.5, 0.75, 0.5}}, // wraps backwards
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, g.Region(tt.index), approx); diff != "" {
			t.Errorf("Region(%d) mismatch (-want +got):\n%s", tt.index, diff)
		}
	}
}

func TestRegionsTileTheAtlas(t *testing.T) {
	g := Grid{Cols: 3, Rows: 5}
	var area float32
	for i := 0; i < g.Frames(); i++ {
		r := g.Region(i)
		area += r[0] * r[1]
		if r[2]+r[0] > 1+1e-6 || r[3]+r[1] > 1+1e-6 {
			t.Errorf("frame %d region %v leaves the atlas", i, r)
		}
	}
	if area < 0.9999 || area > 1.0001 {
		t.Errorf("frames cover %v of the atlas, want 1", area)
	}
}

func TestNewGrid(t *testing.T) {
	if _, err := NewGrid(0, 3); err == nil {
		t.Error("expected error for zero columns")
	}
	g, err := NewGrid(2, 3)
	if err != nil || g.Frames() != 6 {
		t.Errorf("NewGrid(2, 3) = %v, %v", g, err)
	}
}

func TestFrameRect(t *testing.T) {
	g := Grid{Cols: 3, Rows: 2}
	x, y, w, h := g.FrameRect(5, 100, 51)
	if x != 66 || y != 25 || w != 34 || h != 26 {
		t.Errorf("FrameRect(5) = %d,%d %dx%d", x, y, w, h)
	}
	x, y, w, h = g.FrameRect(0, 100, 51)
	if x != 0 || y != 0 || w != 33 || h != 25 {
		t.Errorf("FrameRect(0) = %d,%d %dx%d", x, y, w, h)
	}
}

func TestAnimation(t *testing.T) {
	a := NewAnimation(Grid{Cols: 2, Rows: 2}, 4) // 0.25s per frame

	a.Update(0.2)
	if a.Frame() != 0 {
		t.Errorf("frame after 0.2s = %d, want 0", a.Frame())
	}
	a.Update(0.1)
	if a.Frame() != 1 {
		t.Errorf("frame after 0.3s = %d, want 1", a.Frame())
	}
	a.Update(0.75) // three more frames, wrapping to 0
	if a.Frame() != 0 {
		t.Errorf("frame after 1.05s = %d, want 0", a.Frame())
	}

	a.Paused = true
	a.Update(10)
	if a.Frame() != 0 {
		t.Error("paused animation advanced")
	}

	a.Step(-1)
	if a.Frame() != 3 {
		t.Errorf("Step(-1) = %d, want 3", a.Frame())
	}
	if a.Region() != (Grid{Cols: 2, Rows: 2}).Region(3) {
		t.Error("Region does not follow the current frame")
	}

	still := NewAnimation(Grid{Cols: 2, Rows: 1}, 0)
	still.Update(5)
	if still.Frame() != 0 {
		t.Error("zero frame rate should not advance")
	}
}
