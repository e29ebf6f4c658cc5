// genotool is a CLI for poking at the genome math library from a shell.
package main

import (
	"fmt"
	"io"
	"os"
)

type command func(args []string, in io.Reader, out io.Writer) error

var commands = map[string]command{
	"det":         cmdDet,
	"swizzle":     cmdSwizzle,
	"concat":      cmdConcat,
	"project":     cmdProject,
	"ortho":       cmdOrtho,
	"perspective": cmdPerspective,
	"polygon":     cmdPolygon,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	switch name {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		printUsage()
		os.Exit(1)
	}
	if err := cmd(os.Args[2:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`genotool - vector and matrix utility

Usage:
  genotool <command> [options]

Commands:
  det <file.yaml|->                   Determinant of a square matrix given as YAML rows
  swizzle <pattern> <v>               Reorder components, e.g. swizzle zyx 1,2,3
  concat <v> <v>...                   Join vectors end to end
  project <v> <onto>                  Projection of v onto another vector
  ortho <l> <r> <b> <t> <n> <f>       Orthographic projection matrix
  perspective <fov> <aspect> <n> <f>  Perspective matrix, fov in degrees
  polygon [-uv] <sides>               Regular polygon vertices and fan indices

Vectors are comma separated: 1,2,3

Examples:
  echo '[[1, 2], [3, 4]]' | genotool det -
  genotool swizzle bgra 0.1,0.2,0.3,1
  genotool concat 1,2 3 4,5
  genotool perspective 60 1.333 0.1 100`)
}
