package site

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/scrollfx"
)

const lightboxFade = 0.5

// Lightbox is the full-screen gallery viewer. It lives in screen space above
// the document; any click on it closes it.
type Lightbox struct {
	root    *scrollfx.Node
	image   *scrollfx.Node
	caption *scrollfx.Node
	close   *scrollfx.Node

	width, height float64
	selected      *GalleryImage
	tweens        []*scrollfx.TweenGroup
	closing       bool
}

// NewLightbox builds a hidden lightbox covering a width x height screen.
func NewLightbox(width, height float64, closeLabel string) *Lightbox {
	l := &Lightbox{width: width, height: height}

	l.root = scrollfx.NewDocument(width)
	l.root.Name = "lightbox"
	l.root.Height = height
	l.root.Fill = true
	l.root.Color = scrollfx.Color{R: 0.04, G: 0.04, B: 0.04, A: 0.96}
	l.root.Visible = false
	l.root.OnClick = func(scrollfx.ClickContext) { l.Close() }

	l.image = scrollfx.NewImage("lightbox-img", "", "")
	l.image.Width, l.image.Height = width*0.8, height*0.7
	l.image.X = (width - l.image.Width) / 2
	l.image.Y = height * 0.1
	l.root.AddChild(l.image)

	l.caption = scrollfx.NewText("lightbox-caption", "")
	l.caption.Color = colorGold
	l.caption.Y = l.image.Y + l.image.Height + 32
	l.root.AddChild(l.caption)

	l.close = scrollfx.NewText("lightbox-close", closeLabel)
	l.close.Color = colorText
	l.close.Width, l.close.Height = scrollfx.MeasureText(l.close)
	l.close.X, l.close.Y = width-l.close.Width-32, 32
	l.root.AddChild(l.close)
	return l
}

// Root returns the overlay tree.
func (l *Lightbox) Root() *scrollfx.Node { return l.root }

// IsOpen reports whether an image is selected.
func (l *Lightbox) IsOpen() bool { return l.selected != nil }

// Selected returns the image being shown.
func (l *Lightbox) Selected() (GalleryImage, bool) {
	if l.selected == nil {
		return GalleryImage{}, false
	}
	return *l.selected, true
}

// Open shows img, fading the lightbox in and sliding the caption up.
func (l *Lightbox) Open(img GalleryImage) {
	l.stop()
	l.selected = &img
	l.closing = false

	l.image.Source, l.image.Alt = img.Source, img.Alt
	l.image.Color = photoTones[len(img.Source)%len(photoTones)]
	l.caption.Text = img.Caption
	l.caption.Width, l.caption.Height = scrollfx.MeasureText(l.caption)
	l.caption.X = (l.width - l.caption.Width) / 2

	l.root.Visible = true
	l.root.Alpha = 0
	l.image.Scale, l.image.Alpha = 0.9, 0
	l.caption.OffsetY, l.caption.Alpha = 20, 0

	l.tweens = []*scrollfx.TweenGroup{
		scrollfx.TweenProps(l.root, scrollfx.Props{scrollfx.PropOpacity: 1}, lightboxFade, 0, ease.OutQuad),
		scrollfx.TweenProps(l.image, scrollfx.Props{scrollfx.PropScale: 1, scrollfx.PropOpacity: 1}, lightboxFade, 0, ease.OutQuad),
		scrollfx.TweenProps(l.caption, scrollfx.Props{scrollfx.PropY: 0, scrollfx.PropOpacity: 1}, lightboxFade, 0.2, ease.OutQuad),
	}
}

// Close fades the lightbox out. The root is hidden once the fade ends.
func (l *Lightbox) Close() {
	if l.selected == nil {
		return
	}
	l.stop()
	l.selected = nil
	l.closing = true
	l.tweens = []*scrollfx.TweenGroup{
		scrollfx.TweenProps(l.root, scrollfx.Props{scrollfx.PropOpacity: 0}, lightboxFade, 0, ease.OutQuad),
		scrollfx.TweenProps(l.image, scrollfx.Props{scrollfx.PropScale: 0.9, scrollfx.PropOpacity: 0}, lightboxFade, 0, ease.OutQuad),
	}
}

// Update advances the fade tweens.
func (l *Lightbox) Update(dt float64) {
	done := true
	for _, tw := range l.tweens {
		tw.Update(float32(dt))
		if !tw.Done {
			done = false
		}
	}
	if !done {
		return
	}
	l.tweens = nil
	if l.closing {
		l.closing = false
		l.root.Visible = false
	}
}

func (l *Lightbox) stop() {
	for _, tw := range l.tweens {
		tw.Stop()
	}
	l.tweens = nil
}
