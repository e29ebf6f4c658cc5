package math

import (
	"errors"
	"testing"
)

func TestSwizzleRoundTrip(t *testing.T) {
	v := Vec3i{1, 2, 3}
	s := v.Swizzle3(AxisZ, AxisY, AxisX)
	if s != (Vec3i{3, 2, 1}) {
		t.Fatalf("zyx = %v, want <3, 2, 1>", s)
	}

	var back Vec3i
	back.SetSwizzle3(AxisZ, AxisY, AxisX, s)
	if back != v {
		t.Errorf("writing zyx back = %v, want %v", back, v)
	}
}

func TestSwizzleDuplicatesAndWidening(t *testing.T) {
	v := Vec2f{5, 7}
	if got := v.Swizzle4(AxisX, AxisX, AxisY, AxisY); got != (Vec4f{5, 5, 7, 7}) {
		t.Errorf("xxyy = %v", got)
	}
	w := Vec4f{1, 2, 3, 4}
	if got := w.Swizzle2(AxisW, AxisX); got != (Vec2f{4, 1}) {
		t.Errorf("wx = %v", got)
	}
}

func TestSetSwizzle2(t *testing.T) {
	v := Vec4i{1, 2, 3, 4}
	v.SetSwizzle2(AxisW, AxisY, Vec2i{9, 8})
	if want := (Vec4i{1, 8, 3, 9}); v != want {
		t.Errorf("SetSwizzle2(w, y) = %v, want %v", v, want)
	}
}

func TestSwizzleOutOfRangePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidSwizzle) {
			t.Errorf("recovered %v, want ErrInvalidSwizzle", r)
		}
	}()
	Vec3f{1, 2, 3}.Swizzle2(AxisW, AxisX)
}

func TestParseSwizzle(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Axis
		wantErr bool
	}{
		{"zyx", []Axis{AxisZ, AxisY, AxisX}, false},
		{"XYZW", []Axis{AxisX, AxisY, AxisZ, AxisW}, false},
		{"bgra", []Axis{AxisZ, AxisY, AxisX, AxisW}, false},
		{"xx", []Axis{AxisX, AxisX}, false},
		{"", nil, true},
		{"xq", nil, true},
		{"xr", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := ParseSwizzle(tt.pattern)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSwizzle) {
					t.Errorf("err = %v, want ErrInvalidSwizzle", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("axis %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestVectorSwizzle(t *testing.T) {
	v := VectorOf[float64](10, 20, 30, 40, 50)
	got := v.Swizzle(4, 0, 2)
	if !got.Equal(VectorOf[float64](50, 10, 30)) {
		t.Errorf("Swizzle(4, 0, 2) = %v", got)
	}

	v.SetSwizzle([]Axis{4, 0}, VectorOf[float64](1, 2))
	if !v.Equal(VectorOf[float64](2, 20, 30, 40, 1)) {
		t.Errorf("SetSwizzle = %v", v)
	}
}
