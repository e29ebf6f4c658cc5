package sprite

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/genome/internal/engine/texture"
	"github.com/Faultbox/genome/internal/logger"
)

// Sheet is an uploaded atlas texture with its frame grid.
type Sheet struct {
	Texture uint32
	Grid    Grid
	Width   int
	Height  int
}

// LoadSheet decodes the image at path and uploads it as a cols x rows sheet.
// A non-nil key makes matching pixels transparent.
func LoadSheet(path string, cols, rows int, key *color.RGBA) (*Sheet, error) {
	img, err := texture.Decode(path)
	if err != nil {
		return nil, err
	}
	rgba := texture.ToRGBA(img)
	if key != nil {
		texture.ApplyColorKey(rgba, *key, 8)
	}
	sheet, err := NewSheet(rgba, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("spritesheet %s: %w", path, err)
	}
	logger.Named("sprite").Info("spritesheet loaded",
		zap.String("path", path),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
	)
	return sheet, nil
}

// NewSheet uploads img as a cols x rows sheet.
func NewSheet(img *image.RGBA, cols, rows int) (*Sheet, error) {
	grid, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w < cols || h < rows {
		return nil, fmt.Errorf("image %dx%d too small for a %dx%d grid", w, h, cols, rows)
	}
	tex, err := texture.Upload(img, texture.Options{Nearest: true})
	if err != nil {
		return nil, err
	}
	return &Sheet{Texture: tex, Grid: grid, Width: w, Height: h}, nil
}

// Bind binds the sheet texture to unit.
func (s *Sheet) Bind(unit uint32) {
	texture.Bind(s.Texture, unit)
}

func (s *Sheet) Delete() {
	texture.Delete(s.Texture)
	s.Texture = 0
}
