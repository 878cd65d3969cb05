package ebitenhost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Capture queues a PNG of the next drawn frame, written to
// Config.CaptureDir. Safe to call from Update or Draw.
func (g *Game) Capture(label string) {
	g.captures = append(g.captures, label)
}

// flushCaptures writes every queued capture of screen. Called at the end of
// Draw.
func (g *Game) flushCaptures(screen *ebiten.Image) {
	if len(g.captures) == 0 {
		return
	}
	defer func() { g.captures = g.captures[:0] }()

	if err := os.MkdirAll(g.cfg.CaptureDir, 0o755); err != nil {
		g.log.Error("capture failed", zap.String("dir", g.cfg.CaptureDir), zap.Error(err))
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.captures {
		path := filepath.Join(g.cfg.CaptureDir, stamp+"_"+fileLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			g.log.Error("capture failed", zap.Error(err))
			continue
		}
		g.log.Info("frame captured", zap.String("path", path))
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to a
// straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// fileLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'.
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
