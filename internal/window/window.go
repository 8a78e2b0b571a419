// Package window hosts the scene in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/spiralmatrix/internal/config"
	"github.com/olivier-w/spiralmatrix/internal/render"
	"github.com/olivier-w/spiralmatrix/internal/scene"
	"github.com/olivier-w/spiralmatrix/internal/util"
)

const (
	defaultWidth  = 900
	defaultHeight = 900
)

var (
	background = color.RGBA{render.DefaultBackground.R, render.DefaultBackground.G, render.DefaultBackground.B, 0xff}
	gridLine   = color.RGBA{render.DefaultGridLine.R, render.DefaultGridLine.G, render.DefaultGridLine.B, 0xff}
)

// Game implements ebiten.Game. Rotation is polled from Update, so the
// scene's timer runs on the game's tick rather than a Bubble Tea command.
type Game struct {
	scene    *scene.Scene
	margin   int
	showGrid bool
	showInfo bool

	width  int
	height int
	images map[string]*ebiten.Image
	frame  time.Duration
	slow   bool
}

// Run opens a window for cfg and blocks until it is closed.
func Run(cfg config.Config, refs []string) error {
	s := scene.New(cfg, refs)
	s.LoadSync()
	s.Start()
	defer s.Dispose()

	g := &Game{
		scene:    s,
		margin:   cfg.WindowMargin(),
		showGrid: cfg.Grid,
		width:    defaultWidth,
		height:   defaultHeight,
		images:   make(map[string]*ebiten.Image),
	}

	ebiten.SetWindowTitle("spiralmatrix")
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	now := time.Now()
	f := g.scene.Loop.Step(now)
	g.frame, g.slow = f.Delta, f.Slow

	switch {
	case justPressed(ebiten.KeyEscape, ebiten.KeyQ):
		return ebiten.Termination
	case justPressed(ebiten.KeySpace, ebiten.KeyP):
		g.scene.TogglePause()
	case justPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd, ebiten.KeyArrowRight):
		g.scene.Faster()
	case justPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract, ebiten.KeyArrowLeft):
		g.scene.Slower()
	case justPressed(ebiten.KeyBracketRight, ebiten.KeyArrowUp):
		if g.scene.Grow() {
			g.scene.LoadSync()
		}
	case justPressed(ebiten.KeyBracketLeft, ebiten.KeyArrowDown):
		g.scene.Shrink()
	case justPressed(ebiten.KeyG):
		g.showGrid = !g.showGrid
	case justPressed(ebiten.KeyE):
		g.scene.ToggleEasing()
	case justPressed(ebiten.KeyTab, ebiten.KeySlash):
		g.showInfo = !g.showInfo
	}

	if !g.scene.Paused() {
		g.scene.Driver.Poll(now)
	}
	return nil
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	now := time.Now()
	l := render.Layout{Width: g.width, Height: g.height, Margin: g.margin, GridSize: g.scene.Grid.Size()}
	cell := l.CellLen()
	if cell <= 0 {
		return
	}

	for _, c := range g.scene.Grid.WithImage() {
		img := g.image(c.Image)
		if img == nil {
			continue
		}
		b := img.Bounds()
		sx, sy := c.Smooth(now)
		x, y := l.Position(sx, sy)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cell/float64(b.Dx()), cell/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	if g.showGrid {
		g.drawGrid(screen, l)
	}
	if g.showInfo {
		ebitenutil.DebugPrint(screen, g.info())
	}
}

func (g *Game) drawGrid(screen *ebiten.Image, l render.Layout) {
	cx, cy := float32(g.width)/2, float32(g.height)/2
	half := float32(l.Extent() / 2)
	for _, p := range l.Lines() {
		o := float32(p)
		vector.StrokeLine(screen, cx+o, cy-half, cx+o, cy+half, 1, gridLine, false)
		vector.StrokeLine(screen, cx-half, cy+o, cx+half, cy+o, 1, gridLine, false)
	}
}

// image returns the GPU copy of ref, creating it on first use.
func (g *Game) image(ref string) *ebiten.Image {
	if img, ok := g.images[ref]; ok {
		return img
	}
	src := g.scene.Gallery.Image(ref)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	g.images[ref] = img
	return img
}

func (g *Game) info() string {
	state := "running"
	if g.scene.Paused() {
		state = "paused"
	}
	if g.slow {
		state += " (slow)"
	}
	return fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nSize: %d\nEvery: %v\nEasing: %s\nRotations: %d\nUp: %s\nFrame: %v\nState: %s",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.scene.Grid.Size(),
		g.scene.Interval(),
		g.scene.Grid.Easing(),
		g.scene.Driver.Rotations(),
		util.FormatDuration(g.scene.Loop.Total()),
		g.frame.Round(time.Millisecond),
		state,
	)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
