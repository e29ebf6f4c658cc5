// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SpriteVertexShader transforms polygon positions by uTransform and maps
// texture coordinates into the current sheet frame with uRegion.
//
//go:embed sprite.vert
var SpriteVertexShader string

// SpriteFragmentShader samples the sheet and applies uTint.
//
//go:embed sprite.frag
var SpriteFragmentShader string
