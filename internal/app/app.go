// Package app runs the demo: a textured regular polygon that spins in front
// of an orbit camera while its texture steps through a spritesheet.
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/genome/internal/config"
	"github.com/Faultbox/genome/internal/engine/camera"
	"github.com/Faultbox/genome/internal/engine/input"
	"github.com/Faultbox/genome/internal/engine/picking"
	"github.com/Faultbox/genome/internal/engine/renderer"
	"github.com/Faultbox/genome/internal/engine/screenshot"
	"github.com/Faultbox/genome/internal/engine/shader"
	"github.com/Faultbox/genome/internal/engine/shaders"
	"github.com/Faultbox/genome/internal/engine/sprite"
	"github.com/Faultbox/genome/internal/engine/texture"
	"github.com/Faultbox/genome/internal/engine/vao"
	"github.com/Faultbox/genome/internal/engine/window"
	"github.com/Faultbox/genome/internal/logger"
	"github.com/Faultbox/genome/pkg/geometry"
	"github.com/Faultbox/genome/pkg/math"
)

// Fallback sheet used when no spritesheet is configured.
const (
	fallbackSize  = 256
	fallbackCells = 8
)

var (
	spinAxis = math.Vec3f{0, 0, 1}
	origin   = math.Vec3f{0, 0, 0}

	plainTint = math.Vec4f{1, 1, 1, 1}
	hoverTint = math.Vec4f{1.25, 1.15, 0.9, 1}
)

// App owns the window, GL resources and the per-frame state.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	program *shader.Program
	polygon geometry.Polygon[float32]
	mesh    *vao.VAO
	sheet   *sprite.Sheet
	anim    *sprite.Animation
	camera  *camera.Camera
	shots   *screenshot.Capture
	mouse   drag
	cursor  [2]int
	hovered bool

	angle   float32
	capture bool
	running bool
}

// New opens the window and uploads everything the scene needs.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg, log: logger.Named("app")}

	a.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just made current.
	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbw,
		Height:     fbh,
		ClearColor: cfg.Scene.ClearColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadScene(); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.shots = screenshot.New(cfg.Window.ScreenshotDir, "genome")
	a.log.Info("initialized successfully")
	return a, nil
}

func (a *App) loadScene() error {
	var err error

	a.program, err = shader.New(shaders.SpriteVertexShader, shaders.SpriteFragmentShader)
	if err != nil {
		return fmt.Errorf("sprite shader: %w", err)
	}

	poly, err := geometry.NewRegularPolygon[float32](a.cfg.Scene.PolygonSides)
	if err != nil {
		return err
	}
	a.polygon = poly
	a.mesh, err = vao.New(poly.Positions(), poly.Indices())
	if err != nil {
		return fmt.Errorf("polygon mesh: %w", err)
	}
	if err := a.mesh.AddAttrib(2, poly.TexCoords()); err != nil {
		return fmt.Errorf("polygon texcoords: %w", err)
	}

	a.sheet, err = a.openSheet()
	if err != nil {
		return err
	}
	a.anim = sprite.NewAnimation(a.sheet.Grid, a.cfg.Scene.FrameRate)

	mode, err := camera.ParseMode(a.cfg.Camera.Projection)
	if err != nil {
		return err
	}
	a.camera = camera.New(mode)
	a.camera.FOV = math32.Pi * a.cfg.Camera.FOVDeg / 180
	a.camera.Near = a.cfg.Camera.Near
	a.camera.Far = a.cfg.Camera.Far
	a.camera.Zoom = a.cfg.Camera.Zoom
	a.camera.Distance = a.cfg.Camera.Distance

	a.log.Info("scene loaded",
		zap.Int("sides", poly.NumVertices()),
		zap.Int("frames", a.sheet.Grid.Frames()),
		zap.Stringer("projection", mode),
	)
	return renderer.CheckError("scene setup")
}

func (a *App) openSheet() (*sprite.Sheet, error) {
	s := a.cfg.Scene
	if s.Spritesheet != "" {
		return sprite.LoadSheet(s.Spritesheet, s.Cols, s.Rows, nil)
	}
	a.log.Info("no spritesheet configured, using checkerboard")
	img := texture.Checkerboard(fallbackSize, fallbackCells,
		color.RGBA{R: 230, G: 120, B: 40, A: 255},
		color.RGBA{R: 40, G: 40, B: 50, A: 255},
	)
	return sprite.NewSheet(img, s.Cols, s.Rows)
}

// Run drives the main loop until the window closes or ESC is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	var minFrame time.Duration
	if a.cfg.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(a.cfg.Window.FPSLimit)
	}

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.update(dt)

		if err := a.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.capture {
			a.capture = false
			a.saveScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("frame", a.anim.Frame()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			// Event sizes are in window points; the viewport wants pixels.
			a.renderer.Resize(a.window.DrawableSize())

		case input.EventKeyDown:
			if ev.Repeat {
				continue
			}
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_P:
				a.camera.Toggle()
				a.log.Info("projection", zap.Stringer("mode", a.camera.Mode))
			case sdl.SCANCODE_SPACE:
				a.anim.Paused = !a.anim.Paused
			case sdl.SCANCODE_RIGHT:
				a.anim.Step(1)
			case sdl.SCANCODE_LEFT:
				a.anim.Step(-1)
			case sdl.SCANCODE_R:
				a.camera.Yaw, a.camera.Pitch = 0, 0
			case sdl.SCANCODE_F12:
				a.capture = true
			}

		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				a.mouse.begin(ev.MouseX, ev.MouseY)
			}
		case input.EventMouseUp:
			if ev.Button == sdl.BUTTON_LEFT {
				a.mouse.end()
			}
		case input.EventMouseMove:
			a.cursor = [2]int{ev.MouseX, ev.MouseY}
			if dx, dy, ok := a.mouse.move(ev.MouseX, ev.MouseY); ok {
				a.camera.HandleDrag(float32(dx), float32(dy))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(ev.Wheel))
		}
	}
}

func (a *App) update(dt float32) {
	a.anim.Update(dt)
	a.angle = advanceAngle(a.angle, a.cfg.Scene.RotationSpeed, dt)

	// The cursor is in window points while the viewport is in pixels; the
	// ratio cancels once both are normalized.
	w, h := a.window.Size()
	hovered := hitsPolygon(a.polygon, a.angle, a.camera.ViewProjection(w, h),
		float32(a.cursor[0]), float32(a.cursor[1]), float32(w), float32(h))
	if hovered != a.hovered {
		a.hovered = hovered
		a.log.Debug("hover", zap.Bool("over", hovered))
	}
}

func (a *App) render() error {
	a.renderer.Begin()

	w, h := a.renderer.Size()
	transform := a.camera.ViewProjection(w, h).Mul(model(a.angle))

	a.program.Use()
	a.sheet.Bind(0)
	a.program.SetInt("uTexture", 0)
	a.program.SetMat4("uTransform", transform)
	a.program.SetVec4("uRegion", a.anim.Region())
	tint := plainTint
	if a.hovered {
		tint = hoverTint
	}
	a.program.SetVec4("uTint", tint)
	a.mesh.Render()

	a.renderer.End()
	return nil
}

func (a *App) saveScreenshot() {
	path, err := a.shots.Frame(a.renderer.Size())
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources before the context goes away.
func (a *App) Close() {
	a.log.Info("closing")

	if a.mesh != nil {
		a.mesh.Delete()
	}
	if a.sheet != nil {
		a.sheet.Delete()
	}
	if a.program != nil {
		a.program.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// model spins the polygon about Z by angle radians.
func model(angle float32) math.Mat4f {
	return math.QuatFromAxisAngle(spinAxis, angle).Mat4()
}

// hitsPolygon casts the cursor into the scene and tests the point where it
// meets the polygon's plane in model space.
func hitsPolygon(p geometry.Polygon[float32], angle float32, viewProj math.Mat4f, x, y, w, h float32) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	ray := picking.ScreenToRay(x, y, w, h, viewProj.Inverse())
	hit, ok := ray.IntersectPlane(origin, spinAxis)
	if !ok {
		return false
	}
	local := model(-angle).TransformPoint(hit)
	return p.Contains(local.XY())
}

// advanceAngle keeps the angle in [0, 2π) so float32 precision holds up
// over long runs.
func advanceAngle(angle, speed, dt float32) float32 {
	angle = math32.Mod(angle+speed*dt, 2*math32.Pi)
	if angle < 0 {
		angle += 2 * math32.Pi
	}
	return angle
}

// drag turns absolute mouse positions into deltas while a button is held.
type drag struct {
	active bool
	x, y   int
}

func (d *drag) begin(x, y int) {
	d.active = true
	d.x, d.y = x, y
}

func (d *drag) end() { d.active = false }

func (d *drag) move(x, y int) (dx, dy int, ok bool) {
	if !d.active {
		return 0, 0, false
	}
	dx, dy = x-d.x, y-d.y
	d.x, d.y = x, y
	return dx, dy, true
}
