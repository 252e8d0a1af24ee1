// Package ebitenview is a rendering backend for cadence scenes built on
// [Ebitengine]. It draws every element node as a tinted rectangle sized by
// the node's dimensions and scale, which is enough to preview layouts and
// timelines while a production backend handles real shapes and text.
//
// [Ebitengine]: https://ebitengine.org
package ebitenview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/cadence"
)

// whitePixel is a 1x1 white image scaled per node for solid rectangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(toRGBA(cadence.ColorWhite, 1))
}

// Config controls the preview window and the scene-to-screen mapping.
type Config struct {
	Title  string
	Width  int // window width in pixels (default 1280)
	Height int // window height in pixels (default 720)

	// PixelsPerUnit maps scene units to pixels (default 80). The scene origin
	// lands at the window center with Y up, matching scene coordinates.
	PixelsPerUnit float64

	// Background fill color.
	Background cadence.Color
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 720
	}
	if c.PixelsPerUnit == 0 {
		c.PixelsPerUnit = 80
	}
	return c
}

// View implements ebiten.Game: it ticks the player once per frame and draws
// the scene's current state. A nil player just renders the static scene.
type View struct {
	scene  *cadence.Scene
	player *cadence.Player
	cfg    Config
}

// New creates a view of the scene driven by the player.
func New(scene *cadence.Scene, player *cadence.Player, cfg Config) *View {
	return &View{scene: scene, player: player, cfg: cfg.withDefaults()}
}

// Update advances the player by one frame's worth of virtual time.
func (v *View) Update() error {
	if v.player != nil && !v.player.Done() && !v.player.Cancelled() {
		v.player.Tick(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw renders every element node as a rectangle, parents before children.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(v.cfg.Background, 1))

	ppu := v.cfg.PixelsPerUnit
	cx := float64(v.cfg.Width) / 2
	cy := float64(v.cfg.Height) / 2

	v.scene.Walk(func(n *cadence.Node) bool {
		w := n.Width() * n.ScaleX * ppu
		h := n.Height() * n.ScaleY * ppu
		if w <= 0 || h <= 0 || n.Alpha <= 0 {
			return true // containers and invisible nodes draw nothing
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(cx+n.X*ppu-w/2, cy-n.Y*ppu-h/2)
		a := n.Alpha * n.Color.A
		op.ColorScale.Scale(
			float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a),
		)
		screen.DrawImage(whitePixel, op)
		return true
	})
}

// Layout reports the fixed logical screen size.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

// Run opens a window and drives the view until it is closed.
func Run(v *View) error {
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height)
	ebiten.SetWindowTitle(v.cfg.Title)
	return ebiten.RunGame(v)
}

// toRGBA premultiplies a cadence color into an image/color value.
func toRGBA(c cadence.Color, alpha float64) color.RGBA {
	a := c.A * alpha
	return color.RGBA{
		R: uint8(clamp01(c.R*a) * 255),
		G: uint8(clamp01(c.G*a) * 255),
		B: uint8(clamp01(c.B*a) * 255),
		A: uint8(clamp01(a) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
