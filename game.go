package dragbubble

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor Color
}

// Game hosts a Bubble in an Ebitengine game loop: it feeds pointer input,
// ticks animations with the frame time, resizes the bubble to the layout
// size and draws it.
//
// For full control, skip Game and call Bubble.Press/Move/Release,
// Bubble.Update and Bubble.Draw from your own ebiten.Game.
type Game struct {
	Bubble  *Bubble
	Pointer *Pointer

	ClearColor    Color
	ShowFPS       bool
	ScreenshotDir string

	// OnUpdate runs after input and animations each tick.
	OnUpdate func(dt float32) error
	// OnDraw runs after the bubble is drawn.
	OnDraw func(screen *ebiten.Image)

	surface *EbitenSurface
	raster  *RasterSurface
	fps     *fpsOverlay
	runner  *ScriptRunner
	w, h    int

	screenshotQueue []string
}

// NewGame creates a host for b with a pointer adapter attached.
func NewGame(b *Bubble) *Game {
	return &Game{
		Bubble:        b,
		Pointer:       NewPointer(b),
		ScreenshotDir: "screenshots",
		surface:       NewEbitenSurface(),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.step(float32(1.0 / float64(ebiten.TPS())))
}

// step advances one tick of dt seconds: scripted steps, pointer input, then
// animations.
func (g *Game) step(dt float32) error {
	if g.runner != nil {
		if err := g.runner.step(g); err != nil {
			return fmt.Errorf("dragbubble: script: %w", err)
		}
	}
	g.Pointer.Update()
	g.Bubble.Update(dt)
	if g.OnUpdate != nil {
		return g.OnUpdate(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor.RGBA())
	g.surface.SetTarget(screen)
	g.Bubble.Draw(g.surface)
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
	if g.ShowFPS {
		if g.fps == nil {
			g.fps = newFPSOverlay()
		}
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// DrawRaster renders the bubble headlessly at the current layout size and
// flushes queued screenshots from the result. Scripted runs without a window
// use this in place of Draw.
func (g *Game) DrawRaster() *RasterSurface {
	if g.raster == nil || g.raster.Image().Bounds().Dx() != g.w || g.raster.Image().Bounds().Dy() != g.h {
		g.raster = NewRasterSurface(g.w, g.h)
	}
	g.raster.Clear(g.ClearColor)
	g.Bubble.Draw(g.raster)
	g.flushRasterScreenshots(g.raster)
	return g.raster
}

// Layout implements ebiten.Game. A size change resizes the bubble, which
// resets it to StateDefault.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// SetSize resizes the bubble if the size changed.
func (g *Game) SetSize(w, h int) {
	if w == g.w && h == g.h {
		return
	}
	g.w, g.h = w, h
	g.Bubble.Resize(w, h)
}

// Run opens a window and runs g until the window closes or Update fails.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = g.Bubble.NaturalSize()
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	g.ShowFPS = g.ShowFPS || cfg.ShowFPS
	if cfg.ClearColor != (Color{}) {
		g.ClearColor = cfg.ClearColor
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("dragbubble: run: %w", err)
	}
	return nil
}
