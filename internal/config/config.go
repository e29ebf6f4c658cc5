// Package config handles demo configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Projection modes accepted by CameraConfig.Projection.
const (
	ProjectionOrtho       = "ortho"
	ProjectionPerspective = "perspective"
)

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here
}

// CameraConfig selects and parameterizes the projection.
type CameraConfig struct {
	Projection string  `yaml:"projection"` // "ortho" or "perspective"
	FOVDeg     float32 `yaml:"fov_deg"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Zoom       float32 `yaml:"zoom"`     // ortho: world units visible across the shorter screen side
	Distance   float32 `yaml:"distance"` // perspective: eye distance from the origin
}

// SceneConfig describes what the demo draws.
type SceneConfig struct {
	PolygonSides  int        `yaml:"polygon_sides"`
	Spritesheet   string     `yaml:"spritesheet"` // PNG or BMP; empty draws a checkerboard
	Cols          int        `yaml:"cols"`
	Rows          int        `yaml:"rows"`
	FrameRate     float32    `yaml:"frame_rate"`     // sprite frames per second
	RotationSpeed float32    `yaml:"rotation_speed"` // radians per second
	ClearColor    [4]float32 `yaml:"clear_color,flow"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "genome",
			Width:  800,
			Height: 600,
			VSync:  true,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Projection: ProjectionOrtho,
			FOVDeg:     60,
			Near:       0.1,
			Far:        100,
			Zoom:       3,
			Distance:   3,
		},
		Scene: SceneConfig{
			PolygonSides:  6,
			Cols:          4,
			Rows:          4,
			FrameRate:     8,
			RotationSpeed: 0.5,
			ClearColor:    [4]float32{0.1, 0.1, 0.12, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting the demo cannot run with.
func (c *Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Camera.Projection {
	case ProjectionOrtho:
		if c.Camera.Zoom <= 0 {
			err = multierr.Append(err, fmt.Errorf("camera zoom %v must be positive", c.Camera.Zoom))
		}
	case ProjectionPerspective:
		if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
			err = multierr.Append(err, fmt.Errorf("camera fov %v must be in (0, 180)", c.Camera.FOVDeg))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown projection %q", c.Camera.Projection))
	}
	if c.Camera.Near == c.Camera.Far {
		err = multierr.Append(err, fmt.Errorf("camera near and far planes are both %v", c.Camera.Near))
	}
	if c.Scene.PolygonSides < 3 {
		err = multierr.Append(err, fmt.Errorf("polygon needs at least 3 sides, got %d", c.Scene.PolygonSides))
	}
	if c.Scene.Cols <= 0 || c.Scene.Rows <= 0 {
		err = multierr.Append(err, fmt.Errorf("spritesheet grid %dx%d must be positive", c.Scene.Cols, c.Scene.Rows))
	}
	return err
}
