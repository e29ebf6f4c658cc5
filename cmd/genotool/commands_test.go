package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gmath "github.com/Faultbox/genome/pkg/math"
)

func run(t *testing.T, cmd command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cmd(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestParseVector(t *testing.T) {
	v, err := parseVector("1, 2.5,-3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(gmath.Vectord{1, 2.5, -3}, v); diff != "" {
		t.Errorf("parseVector mismatch (-want +got):\n%s", diff)
	}
	if _, err := parseVector("1,,2"); err == nil {
		t.Error("expected error for empty component")
	}
}

func TestDet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"2x2", "[[1, 2], [3, 4]]", "-2\n"},
		{"block rows", "- [2, 0, 0]\n- [0, 3, 0]\n- [0, 0, 4]\n", "24\n"},
		{"1x1", "[[7]]", "7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, cmdDet, tt.input, "-")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("det = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetFromFileVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.yaml")
	if err := os.WriteFile(path, []byte("[[0, 1], [1, 0]]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, cmdDet, "", "-v", path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[0, 1]\n[1, 0]\n-1\n"; got != want {
		t.Errorf("det -v = %q, want %q", got, want)
	}
}

func TestDetErrors(t *testing.T) {
	if _, err := run(t, cmdDet, "[[1, 2, 3], [4, 5, 6]]", "-"); !errors.Is(err, gmath.ErrNotSquare) {
		t.Errorf("non-square err = %v", err)
	}
	if _, err := run(t, cmdDet, "", "-"); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := run(t, cmdDet, "[[1, 2], [3]]", "-"); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := run(t, cmdDet, ""); !errors.Is(err, errUsage) {
		t.Errorf("missing arg err = %v", err)
	}
}

func TestSwizzle(t *testing.T) {
	tests := []struct {
		pattern, vec, want string
	}{
		{"zyx", "1,2,3", "<3, 2, 1>\n"},
		{"xxyy", "1,2", "<1, 1, 2, 2>\n"},
		{"bgra", "0.1,0.2,0.3,1", "<0.3, 0.2, 0.1, 1>\n"},
	}
	for _, tt := range tests {
		got, err := run(t, cmdSwizzle, "", tt.pattern, tt.vec)
		if err != nil {
			t.Fatalf("swizzle %s %s: %v", tt.pattern, tt.vec, err)
		}
		if got != tt.want {
			t.Errorf("swizzle %s %s = %q, want %q", tt.pattern, tt.vec, got, tt.want)
		}
	}

	if _, err := run(t, cmdSwizzle, "", "xyz", "1,2"); !errors.Is(err, gmath.ErrInvalidSwizzle) {
		t.Errorf("out of range err = %v", err)
	}
	if _, err := run(t, cmdSwizzle, "", "xq", "1,2"); !errors.Is(err, gmath.ErrInvalidSwizzle) {
		t.Errorf("bad letter err = %v", err)
	}
}

func TestConcat(t *testing.T) {
	got, err := run(t, cmdConcat, "", "2", "1,2,3", "1,2", "1")
	if err != nil {
		t.Fatal(err)
	}
	if want := "<2, 1, 2, 3, 1, 2, 1>\n"; got != want {
		t.Errorf("concat = %q, want %q", got, want)
	}
}

func TestProject(t *testing.T) {
	got, err := run(t, cmdProject, "", "3,4", "1,0")
	if err != nil {
		t.Fatal(err)
	}
	if want := "<3, 0>\n"; got != want {
		t.Errorf("project = %q, want %q", got, want)
	}
	if _, err := run(t, cmdProject, "", "1,2,3", "1,0"); !errors.Is(err, gmath.ErrDimensionMismatch) {
		t.Errorf("mismatch err = %v", err)
	}
}

func TestOrtho(t *testing.T) {
	got, err := run(t, cmdOrtho, "", "0", "2", "0", "2", "0", "2")
	if err != nil {
		t.Fatal(err)
	}
	want := "[1, 0, 0, -1]\n[0, 1, 0, -1]\n[0, 0, -1, -1]\n[0, 0, 0, 1]\n"
	if got != want {
		t.Errorf("ortho =\n%s\nwant\n%s", got, want)
	}
	if _, err := run(t, cmdOrtho, "", "1", "2"); !errors.Is(err, errUsage) {
		t.Errorf("short args err = %v", err)
	}
	if _, err := run(t, cmdOrtho, "", "a", "1", "-1", "1", "-1", "1"); err == nil {
		t.Error("expected parse error")
	}
}

func TestPerspective(t *testing.T) {
	got, err := run(t, cmdPerspective, "", "90", "1", "1", "3")
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimSpace(got), "\n")
	if len(rows) != 4 {
		t.Fatalf("perspective printed %d rows", len(rows))
	}
	// far+near / near-far = -2, 2*far*near / near-far = -3
	if want := "[0, 0, -2, -3]"; rows[2] != want {
		t.Errorf("row 2 = %q, want %q", rows[2], want)
	}
	if want := "[0, 0, -1, 0]"; rows[3] != want {
		t.Errorf("row 3 = %q, want %q", rows[3], want)
	}
}

func TestPolygon(t *testing.T) {
	got, err := run(t, cmdPolygon, "", "-uv", "4")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 6 {
		t.Fatalf("polygon printed %d lines:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "uv") {
		t.Errorf("vertex line lacks uv: %q", lines[0])
	}
	if lines[4] != "area    2.000000" {
		t.Errorf("area line = %q", lines[4])
	}
	if lines[5] != "indices [0 1 2 0 2 3]" {
		t.Errorf("indices line = %q", lines[5])
	}

	if _, err := run(t, cmdPolygon, "", "2"); err == nil {
		t.Error("expected error for a 2-gon")
	}
}
