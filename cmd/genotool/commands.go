package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/genome/pkg/geometry"
	gmath "github.com/Faultbox/genome/pkg/math"
)

var errUsage = errors.New("wrong number of arguments")

func usage(line string) error {
	return fmt.Errorf("%w\nUsage: genotool %s", errUsage, line)
}

// parseVector reads a comma separated list such as "1,2.5,-3".
func parseVector(s string) (gmath.Vectord, error) {
	fields := strings.Split(s, ",")
	v := make(gmath.Vectord, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", s, err)
		}
		v = append(v, x)
	}
	return v, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// readMatrix decodes a YAML list of rows, e.g. [[1, 2], [3, 4]].
func readMatrix(r io.Reader) (gmath.Matrixd, error) {
	var rows [][]float64
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return gmath.Matrixd{}, errors.New("no matrix given")
		}
		return gmath.Matrixd{}, fmt.Errorf("decode matrix: %w", err)
	}
	return gmath.MatrixFromRows(rows)
}

func cmdDet(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("det", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Print the matrix before its determinant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usage("det [-v] <file.yaml|->")
	}

	src := in
	if path := fs.Arg(0); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	m, err := readMatrix(src)
	if err != nil {
		return err
	}
	d, err := m.Det()
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprint(out, m)
	}
	fmt.Fprintln(out, d)
	return nil
}

func cmdSwizzle(args []string, _ io.Reader, out io.Writer) error {
	if len(args) != 2 {
		return usage("swizzle <pattern> <v>")
	}
	axes, err := gmath.ParseSwizzle(args[0])
	if err != nil {
		return err
	}
	v, err := parseVector(args[1])
	if err != nil {
		return err
	}
	for _, a := range axes {
		if int(a) >= v.Len() {
			return fmt.Errorf("%w: %q reads %v of a %d-component vector", gmath.ErrInvalidSwizzle, args[0], a, v.Len())
		}
	}
	fmt.Fprintln(out, v.Swizzle(axes...))
	return nil
}

func cmdConcat(args []string, _ io.Reader, out io.Writer) error {
	if len(args) < 1 {
		return usage("concat <v> <v>...")
	}
	parts := make([]gmath.Vectord, len(args))
	for i, a := range args {
		v, err := parseVector(a)
		if err != nil {
			return err
		}
		parts[i] = v
	}
	fmt.Fprintln(out, parts[0].Concat(parts[1:]...))
	return nil
}

func cmdProject(args []string, _ io.Reader, out io.Writer) error {
	if len(args) != 2 {
		return usage("project <v> <onto>")
	}
	v, err := parseVector(args[0])
	if err != nil {
		return err
	}
	onto, err := parseVector(args[1])
	if err != nil {
		return err
	}
	if v.Len() != onto.Len() {
		return fmt.Errorf("%w: %d vs %d components", gmath.ErrDimensionMismatch, v.Len(), onto.Len())
	}
	fmt.Fprintln(out, v.Project(onto))
	return nil
}

func cmdOrtho(args []string, _ io.Reader, out io.Writer) error {
	if len(args) != 6 {
		return usage("ortho <left> <right> <bottom> <top> <near> <far>")
	}
	p, err := parseFloats(args)
	if err != nil {
		return err
	}
	fmt.Fprint(out, gmath.Ortho(p[0], p[1], p[2], p[3], p[4], p[5]))
	return nil
}

func cmdPerspective(args []string, _ io.Reader, out io.Writer) error {
	if len(args) != 4 {
		return usage("perspective <fov_deg> <aspect> <near> <far>")
	}
	p, err := parseFloats(args)
	if err != nil {
		return err
	}
	fov := p[0] * math.Pi / 180
	fmt.Fprint(out, gmath.Perspective(fov, p[1], p[2], p[3]))
	return nil
}

func cmdPolygon(args []string, _ io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("polygon", flag.ContinueOnError)
	uv := fs.Bool("uv", false, "Also print texture coordinates")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usage("polygon [-uv] <sides>")
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return err
	}
	p, err := geometry.NewRegularPolygon[float64](n)
	if err != nil {
		return err
	}

	texCoords := p.TexCoords()
	for i, v := range p.Vertices() {
		fmt.Fprintf(out, "%3d  % .6f % .6f", i, v.X(), v.Y())
		if *uv {
			fmt.Fprintf(out, "  uv %.6f %.6f", texCoords[2*i], texCoords[2*i+1])
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "area    %.6f\n", p.Area())
	fmt.Fprintf(out, "indices %v\n", p.Indices())
	return nil
}
