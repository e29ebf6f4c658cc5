package shaders

import (
	"strings"
	"testing"
)

func TestSourcesDeclareUniforms(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"vertex", SpriteVertexShader, []string{"#version 410 core", "uniform mat4 uTransform", "uniform vec4 uRegion"}},
		{"fragment", SpriteFragmentShader, []string{"#version 410 core", "uniform sampler2D uTexture", "uniform vec4 uTint"}},
	}
	for _, tt := range tests {
		for _, w := range tt.want {
			if !strings.Contains(tt.source, w) {
				t.Errorf("%s shader missing %q", tt.name, w)
			}
		}
	}
}
