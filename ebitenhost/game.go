package ebitenhost

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/phanxgames/scrollfx"
)

// Overlay is a screen-space layer drawn above the document.
type Overlay interface {
	// Root returns the overlay tree. Nothing is drawn and no clicks are
	// taken while the root is invisible.
	Root() *scrollfx.Node
	// Update advances the overlay's own animations.
	Update(dt float64)
}

// Config holds the window and input settings for Run.
type Config struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	Background scrollfx.Color

	// WheelStep is the scroll distance of one wheel notch. Default 60.
	WheelStep float64
	// PageDuration is the smooth scroll time for Page Up/Down, Home and End.
	// Default 0.6 seconds.
	PageDuration float32
	// CaptureDir receives the PNGs written by Capture and the F12 key.
	// Default "captures".
	CaptureDir string
}

func (c *Config) defaults() {
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.WheelStep <= 0 {
		c.WheelStep = 60
	}
	if c.PageDuration <= 0 {
		c.PageDuration = 0.6
	}
	if c.CaptureDir == "" {
		c.CaptureDir = "captures"
	}
}

// Game implements ebiten.Game for an Observer and its document.
type Game struct {
	obs     *scrollfx.Observer
	cfg     Config
	overlay Overlay
	log     *zap.Logger

	items     []drawItem
	textCache map[string]*ebiten.Image
	captures  []string
}

// NewGame creates a game for obs. overlay may be nil.
func NewGame(obs *scrollfx.Observer, cfg Config, overlay Overlay) *Game {
	cfg.defaults()
	obs.Viewport().Width = float64(cfg.Width)
	obs.Viewport().Height = float64(cfg.Height)
	return &Game{
		obs:       obs,
		cfg:       cfg,
		overlay:   overlay,
		log:       obs.Logger().Named("host"),
		textCache: make(map[string]*ebiten.Image),
	}
}

// Run opens a window and runs the game until it is closed.
func Run(obs *scrollfx.Observer, cfg Config, overlay Overlay) error {
	g := NewGame(obs, cfg, overlay)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	g.log.Info("window opened", zap.Int("width", g.cfg.Width), zap.Int("height", g.cfg.Height))
	return ebiten.RunGame(g)
}

// Update handles input, then advances the overlay and the observer by one
// tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.handleKeys()
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.wheel(wy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(float64(x), float64(y))
	}
	if g.overlay != nil {
		g.overlay.Update(dt)
	}
	return g.obs.Update(dt)
}

func (g *Game) handleKeys() {
	vp := g.obs.Viewport()
	page := vp.Height * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.smoothTo(vp.ScrollY + page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.smoothTo(vp.ScrollY - page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.smoothTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.smoothTo(vp.MaxScroll())
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.Capture(fmt.Sprintf("y%.0f", vp.ScrollY))
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.obs.ScrollBy(g.cfg.WheelStep / 4)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.obs.ScrollBy(-g.cfg.WheelStep / 4)
	}
}

// wheel scrolls by wy notches. Positive wy scrolls up, as ebiten reports it.
func (g *Game) wheel(wy float64) {
	g.obs.ScrollBy(-wy * g.cfg.WheelStep)
}

func (g *Game) smoothTo(y float64) {
	g.obs.Viewport().SmoothScrollTo(y, g.cfg.PageDuration, ease.OutCubic)
}

// click routes a screen-space click to the overlay when it is showing,
// otherwise to the document. Returns the node that handled it.
func (g *Game) click(x, y float64) *scrollfx.Node {
	if g.overlay != nil {
		if root := g.overlay.Root(); root != nil && root.Visible {
			hit := scrollfx.HitTest(root, x, y)
			if hit != nil {
				hit.OnClick(scrollfx.ClickContext{Node: hit, GlobalX: x, GlobalY: y})
			}
			return hit
		}
	}
	hit := g.obs.Click(x, y)
	if hit != nil {
		g.log.Debug("click", zap.String("node", hit.Name), zap.Float64("x", x), zap.Float64("y", y))
	}
	return hit
}

// Draw paints the document through the viewport, then the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.cfg.Background))

	vp := g.obs.Viewport()
	g.items = drawList(g.items[:0], g.obs.Root(), vp.VisibleBounds(), vp.ScrollY)
	if g.overlay != nil {
		if root := g.overlay.Root(); root != nil && root.Visible {
			screenRect := scrollfx.Rect{Width: vp.Width, Height: vp.Height}
			g.items = drawList(g.items, root, screenRect, 0)
		}
	}
	for i := range g.items {
		g.drawItem(screen, &g.items[i])
	}

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  y %.0f", ebiten.ActualFPS(), vp.ScrollY), 4, 4)
	}
	g.flushCaptures(screen)
}

func (g *Game) drawItem(screen *ebiten.Image, it *drawItem) {
	r := it.rect
	if it.text == "" {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), toRGBA(it.color), false)
		return
	}
	img := g.textImage(it.text)
	op := &ebiten.DrawImageOptions{}
	// Rotation is a flip around the horizontal axis, drawn as a vertical
	// squash around the glyph's middle.
	sx := it.node.Scale
	sy := sx * math.Cos(it.node.Rotation*math.Pi/180)
	if sx <= 0 || sy <= 0 {
		return
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(r.X, r.Y+r.Height*(1-sy)/2)
	op.ColorScale.Scale(float32(it.color.R), float32(it.color.G), float32(it.color.B), 1)
	op.ColorScale.ScaleAlpha(float32(it.color.A))
	screen.DrawImage(img, op)
}

// textImage returns a cached image of s drawn with the debug font.
func (g *Game) textImage(s string) *ebiten.Image {
	if img, ok := g.textCache[s]; ok {
		return img
	}
	w, h := scrollfx.DefaultMeasurer.MeasureString(s)
	if w < 1 {
		w = 1
	}
	img := ebiten.NewImage(int(w)+1, int(h))
	ebitenutil.DebugPrint(img, s)
	g.textCache[s] = img
	return img
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func toRGBA(c scrollfx.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	a := clamp(c.A)
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: a,
	}
}
