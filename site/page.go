package site

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/phanxgames/scrollfx"
)

// Palette.
var (
	colorBackground = scrollfx.Color{R: 0.04, G: 0.04, B: 0.04, A: 1}
	colorPanel      = scrollfx.Color{R: 0.09, G: 0.08, B: 0.07, A: 1}
	colorGold       = scrollfx.Color{R: 0.79, G: 0.66, B: 0.38, A: 1}
	colorText       = scrollfx.Color{R: 0.96, G: 0.94, B: 0.9, A: 1}
	colorMuted      = scrollfx.Color{R: 0.62, G: 0.6, B: 0.56, A: 1}
	colorShade      = scrollfx.Color{R: 0, G: 0, B: 0, A: 0.55}
)

// Stand-in tones for the photographs, in the order they appear.
var photoTones = []scrollfx.Color{
	{R: 0.23, G: 0.3, B: 0.38, A: 1},
	{R: 0.36, G: 0.27, B: 0.2, A: 1},
	{R: 0.3, G: 0.22, B: 0.16, A: 1},
	{R: 0.24, G: 0.2, B: 0.18, A: 1},
	{R: 0.5, G: 0.34, B: 0.24, A: 1},
	{R: 0.55, G: 0.6, B: 0.66, A: 1},
	{R: 0.48, G: 0.3, B: 0.22, A: 1},
	{R: 0.27, G: 0.33, B: 0.24, A: 1},
	{R: 0.32, G: 0.36, B: 0.42, A: 1},
}

// Fragments the footer links scroll to, in FooterNav order. Link nodes are
// named after the section they target.
var navFragments = []string{"storia", "ambienti", "menu", "contatti"}

// Anchors maps the public fragment of a section to its node name.
var Anchors = map[string]string{
	"hero":     "hero",
	"storia":   "storia",
	"ambienti": "sale",
	"menu":     "menu",
	"contatti": "contatti",
	"footer":   "footer",
}

// Page is the laid-out restaurant page: a document tree with one container
// per section, plus the lightbox overlay opened from the gallery.
type Page struct {
	Doc      *scrollfx.Node
	Lang     Lang
	Copy     Copy
	Lightbox *Lightbox

	width, viewportH float64
	sections         []*scrollfx.Node
	controllers      []*scrollfx.Controller
	obs              *scrollfx.Observer
	log              *zap.Logger
	tone             int
}

// Build lays out the page for a viewport of the given size.
func Build(lang Lang, width, viewportH float64) *Page {
	p := &Page{
		Doc:       scrollfx.NewDocument(width),
		Lang:      lang,
		Copy:      CopyFor(lang),
		width:     width,
		viewportH: viewportH,
		log:       zap.NewNop(),
	}
	p.Lightbox = NewLightbox(width, viewportH, p.Copy.Close)

	y := 0.0
	for _, build := range []func(*scrollfx.Node) float64{
		p.buildHero, p.buildStoria, p.buildSale, p.buildMenu, p.buildContatti, p.buildFooter,
	} {
		s := scrollfx.NewContainer("")
		s.Y = y
		s.Width = width
		s.Height = build(s)
		p.Doc.AddChild(s)
		p.sections = append(p.sections, s)
		y += s.Height
	}
	p.Doc.Height = y
	return p
}

// Sections returns the section containers from top to bottom.
func (p *Page) Sections() []*scrollfx.Node { return p.sections }

// Section returns the section container named name, or nil.
func (p *Page) Section(name string) *scrollfx.Node {
	for _, s := range p.sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// AnchorY returns the document Y of the section behind a public fragment
// such as "ambienti" or "#contatti".
func (p *Page) AnchorY(fragment string) (float64, bool) {
	if len(fragment) > 0 && fragment[0] == '#' {
		fragment = fragment[1:]
	}
	name, ok := Anchors[fragment]
	if !ok {
		return 0, false
	}
	s := p.Section(name)
	if s == nil {
		return 0, false
	}
	return scrollfx.LayoutBounds(s).Y, true
}

// Mount mounts one controller per spec on the section its Section field
// names. On failure every controller mounted so far is unmounted again.
func (p *Page) Mount(obs *scrollfx.Observer, specs []scrollfx.Spec) error {
	if len(p.controllers) > 0 {
		return fmt.Errorf("page already mounted")
	}
	p.obs = obs
	p.log = obs.Logger().Named("site")
	for _, spec := range specs {
		root := p.Section(spec.Section)
		if root == nil {
			p.Unmount()
			return fmt.Errorf("mount page: no section %q", spec.Section)
		}
		c, err := scrollfx.Mount(obs, root, spec)
		if err != nil {
			p.Unmount()
			return fmt.Errorf("mount page: %w", err)
		}
		p.controllers = append(p.controllers, c)
	}
	p.log.Info("page mounted",
		zap.String("lang", string(p.Lang)),
		zap.Int("sections", len(p.controllers)),
		zap.Int("bindings", obs.Len()))
	return nil
}

// Unmount tears the controllers down, last mounted first.
func (p *Page) Unmount() {
	for i := len(p.controllers) - 1; i >= 0; i-- {
		p.controllers[i].Unmount()
	}
	p.controllers = nil
}

// Controllers returns the mounted controllers in page order.
func (p *Page) Controllers() []*scrollfx.Controller { return p.controllers }

// ScrollToAnchor smooth scrolls the mounted observer to a section.
func (p *Page) ScrollToAnchor(fragment string) bool {
	y, ok := p.AnchorY(fragment)
	if !ok || p.obs == nil {
		return false
	}
	p.obs.Viewport().SmoothScrollTo(y, 1.2, ease.InOutCubic)
	return true
}

func (p *Page) pad() float64 {
	return math.Max(24, math.Round(p.width*0.08))
}

func (p *Page) nextTone() scrollfx.Color {
	c := photoTones[p.tone%len(photoTones)]
	p.tone++
	return c
}

// --- Section builders. Each returns the section height. ---

func (p *Page) buildHero(s *scrollfx.Node) float64 {
	s.Name = "hero"
	c := p.Copy
	h := math.Max(p.viewportH, 640)

	frame := scrollfx.NewContainer("hero-frame")
	frame.Width, frame.Height = p.width, h
	s.AddChild(frame)
	img := scrollfx.NewImage("hero-img", "hero-dolomiti.webp", c.HeroTitle)
	img.Width, img.Height = p.width, h
	img.Color = p.nextTone()
	frame.AddChild(img)
	shade := scrollfx.NewContainer("hero-shade")
	shade.Width, shade.Height = p.width, h
	shade.Fill, shade.Color = true, colorShade
	frame.AddChild(shade)
	overlay := scrollfx.NewContainer("hero-overlay")
	overlay.Width, overlay.Height = p.width, h
	overlay.Fill, overlay.Color = true, colorBackground
	s.AddChild(overlay)

	col := newColumn(s, p.pad(), h-280, p.width-2*p.pad())
	col.text("hero-kicker", "kicker", c.HeroKicker, colorGold)
	col.gap(24)
	col.text("hero-title", "display", c.HeroTitle, colorText)
	col.gap(20)
	line := col.box("hero-line", "rule", 2)
	line.Width = 192
	line.Fill, line.Color = true, colorGold
	col.gap(24)
	col.text("hero-subtitle", "subtitle", c.HeroSubtitle, colorText)

	cta := newColumn(s, p.pad(), h-64, p.width-2*p.pad()).text("hero-cta", "cta", c.HeroCTA, colorGold)
	cta.OnClick = func(scrollfx.ClickContext) { p.ScrollToAnchor("contatti") }
	return h
}

// titleBlock lays out the kicker, split title and full-bleed photo frame
// every content section opens with.
func (p *Page) titleBlock(s *scrollfx.Node, col *column, kicker, title, caption, source, alt string, frameH float64) {
	name := s.Name
	col.text(name+"-kicker", "kicker", kicker, colorGold)
	col.gap(32)
	t := col.text(name+"-title", "title", title, colorText)
	t.WrapWidth = math.Round(p.width * 0.66)
	t.Width, t.Height = scrollfx.MeasureText(t)
	col.y = t.Y + t.Height
	col.gap(96)

	frame := scrollfx.NewContainer(name + "-frame")
	frame.Y = col.y
	frame.Width, frame.Height = p.width, frameH
	s.AddChild(frame)
	img := scrollfx.NewImage(name+"-img", source, alt)
	img.Width, img.Height = p.width, frameH*1.3
	img.Color = p.nextTone()
	frame.AddChild(img)
	if caption != "" {
		cc := newColumn(frame, p.pad(), frameH-64, p.width-2*p.pad())
		cc.text(name+"-caption", "caption", caption, colorText)
	}
	col.y += frameH
	col.gap(128)
}

func (p *Page) buildStoria(s *scrollfx.Node) float64 {
	s.Name = "storia"
	c := p.Copy
	col := newColumn(s, p.pad(), 160, p.width-2*p.pad())
	p.titleBlock(s, col, c.StoriaKicker, c.StoriaTitle, c.StoriaCaption,
		"baita-esterno-inverno.webp", "Baita Paradiso", p.viewportH*0.85)

	top := col.y
	left := newColumn(s, p.pad(), top, math.Round(p.width*0.42))
	left.text("storia-lead", "lead", c.StoriaLead, colorText)
	left.gap(32)
	left.text("storia-body", "body", c.StoriaBody, colorMuted)

	dw := math.Round(p.width * 0.34)
	detail := scrollfx.NewContainer("storia-detail")
	detail.X, detail.Y = p.width-p.pad()-dw, top
	detail.Width, detail.Height = dw, dw*4/3
	s.AddChild(detail)
	dimg := scrollfx.NewImage("storia-detail-img", "dettaglio-inverno.webp", c.StoriaDetail)
	dimg.Width, dimg.Height = dw, dw*4/3
	dimg.Color = p.nextTone()
	detail.AddChild(dimg)

	col.y = math.Max(left.y, detail.Y+detail.Height)
	col.gap(160)
	q := col.text("storia-quote", "quote", c.StoriaQuote, colorText)
	q.WrapWidth = math.Round(p.width * 0.8)
	q.Width, q.Height = scrollfx.MeasureText(q)
	col.y = q.Y + q.Height
	col.gap(200)
	return col.y
}

func (p *Page) buildSale(s *scrollfx.Node) float64 {
	s.Name = "sale"
	c := p.Copy
	col := newColumn(s, p.pad(), 160, p.width-2*p.pad())
	p.titleBlock(s, col, c.SaleKicker, c.SaleTitle, c.SaleCaption,
		"sala-panoramica.webp", c.SaleCaption, p.viewportH*0.9)

	col.text("sale-lead", "lead", c.SaleLead, colorText)
	col.gap(32)
	body := col.text("sale-body", "body", c.SaleBody, colorMuted)
	body.WrapWidth = math.Round(p.width * 0.6)
	body.Width, body.Height = scrollfx.MeasureText(body)
	col.y = body.Y + body.Height
	col.gap(128)

	col.y += p.buildGallery(s, col.x, col.y, col.width)
	col.gap(128)
	col.y += p.buildFeatures(s, col.x, col.y, col.width)
	col.gap(160)
	return col.y
}

// buildGallery places the gallery grid: a wide first photo next to one
// regular photo, then a row of three. Returns the grid height.
func (p *Page) buildGallery(s *scrollfx.Node, x, y, width float64) float64 {
	const gap = 32
	grid := scrollfx.NewContainer("sale-gallery")
	grid.X, grid.Y, grid.Width = x, y, width
	s.AddChild(grid)

	colW := (width - 2*gap) / 3
	type cell struct{ x, y, w, h float64 }
	row0 := colW * 3 / 4
	row1 := row0 + gap
	cells := []cell{
		{0, 0, 2*colW + gap, row0},
		{2 * (colW + gap), 0, colW, row0},
		{0, row1, colW, row0},
		{colW + gap, row1, colW, colW},
		{2 * (colW + gap), row1, colW, row0},
	}
	for i, g := range p.Copy.Gallery {
		if i >= len(cells) {
			break
		}
		cl := cells[i]
		item := scrollfx.NewContainer(fmt.Sprintf("gallery-item-%d", i))
		item.Class = "gallery-item"
		item.X, item.Y, item.Width, item.Height = cl.x, cl.y, cl.w, cl.h
		img := scrollfx.NewImage(fmt.Sprintf("gallery-img-%d", i), g.Source, g.Alt)
		img.Class = "gallery-img"
		img.Width, img.Height = cl.w, cl.h*1.2
		img.Color = p.nextTone()
		item.AddChild(img)
		label := newColumn(item, 24, cl.h-48, cl.w-48)
		label.text(fmt.Sprintf("gallery-caption-%d", i), "caption", g.Caption, colorText)
		image := g
		item.OnClick = func(scrollfx.ClickContext) { p.Lightbox.Open(image) }
		grid.AddChild(item)
	}
	grid.Height = row1 + colW
	return grid.Height
}

func (p *Page) buildFeatures(s *scrollfx.Node, x, y, width float64) float64 {
	const gap = 32
	list := scrollfx.NewContainer("sale-features")
	list.X, list.Y, list.Width = x, y, width
	s.AddChild(list)

	n := float64(len(p.Copy.Features))
	w := (width - (n-1)*gap) / n
	var h float64
	for i, f := range p.Copy.Features {
		item := scrollfx.NewContainer(fmt.Sprintf("feature-%d", i))
		item.Class = "feature-item"
		item.X, item.Width = float64(i)*(w+gap), w
		col := newColumn(item, 0, 0, w)
		col.text(item.Name+"-num", "num", f.Num, colorGold)
		col.gap(12)
		col.text(item.Name+"-name", "name", f.Name, colorText)
		col.gap(8)
		col.text(item.Name+"-desc", "desc", f.Desc, colorMuted)
		item.Height = col.y
		h = math.Max(h, col.y)
		list.AddChild(item)
	}
	list.Height = h
	return h
}

func (p *Page) buildMenu(s *scrollfx.Node) float64 {
	s.Name = "menu"
	c := p.Copy
	col := newColumn(s, p.pad(), 160, p.width-2*p.pad())
	p.titleBlock(s, col, c.MenuKicker, c.MenuTitle, "",
		"tavola-imbandita.webp", c.MenuTitle, p.viewportH*0.8)

	col.text("menu-lead", "lead", c.MenuLead, colorText)
	col.gap(96)

	const gap = 32
	n := float64(len(c.MenuCards))
	w := (col.width - (n-1)*gap) / n
	var h float64
	cards := make([]*scrollfx.Node, 0, len(c.MenuCards))
	for i, mc := range c.MenuCards {
		card := scrollfx.NewContainer(fmt.Sprintf("menu-card-%d", i))
		card.Class = "menu-card"
		card.X, card.Y, card.Width = col.x+float64(i)*(w+gap), col.y, w
		card.Fill, card.Color = true, colorPanel
		inner := newColumn(card, 32, 40, w-64)
		inner.text(card.Name+"-label", "label", mc.Label, colorGold)
		inner.gap(12)
		inner.text(card.Name+"-title", "card-title", mc.Title, colorText)
		inner.gap(24)
		for j, dish := range mc.Dishes {
			inner.text(fmt.Sprintf("%s-dish-%d", card.Name, j), "dish", dish, colorMuted)
			inner.gap(10)
		}
		inner.gap(30)
		h = math.Max(h, inner.y)
		cards = append(cards, card)
		s.AddChild(card)
	}
	for _, card := range cards {
		card.Height = h
	}
	col.y += h
	col.gap(64)
	col.text("menu-note", "note", c.MenuNote, colorMuted)
	col.gap(160)
	return col.y
}

func (p *Page) buildContatti(s *scrollfx.Node) float64 {
	s.Name = "contatti"
	c := p.Copy
	col := newColumn(s, p.pad(), 160, p.width-2*p.pad())
	p.titleBlock(s, col, c.ContattiKicker, c.ContattiTitle, "",
		"baita-estate.webp", c.ContattiTitle, p.viewportH*0.8)

	const gap = 48
	n := float64(len(c.ContactItems))
	w := (col.width - (n-1)*gap) / n
	var h float64
	for i, ci := range c.ContactItems {
		item := scrollfx.NewContainer(fmt.Sprintf("contact-%d", i))
		item.Class = "contact-item"
		item.X, item.Y, item.Width = col.x+float64(i)*(w+gap), col.y, w
		inner := newColumn(item, 0, 0, w)
		inner.text(item.Name+"-label", "label", ci.Label, colorGold)
		inner.gap(16)
		for j, line := range ci.Lines {
			inner.text(fmt.Sprintf("%s-line-%d", item.Name, j), "line", line, colorText)
			inner.gap(6)
		}
		item.Height = inner.y
		h = math.Max(h, inner.y)
		s.AddChild(item)
	}
	col.y += h
	col.gap(96)

	booking := col.box("booking", "booking", 0)
	booking.Fill, booking.Color = true, colorPanel
	inner := newColumn(booking, 48, 48, col.width-96)
	inner.text("booking-title", "card-title", c.BookingTitle, colorText)
	inner.gap(24)
	cta := inner.text("booking-cta", "cta", c.HeroCTA, colorGold)
	cta.OnClick = func(scrollfx.ClickContext) {
		p.log.Info("booking requested", zap.String("lang", string(p.Lang)))
	}
	inner.gap(48)
	booking.Height = inner.y
	col.y = booking.Y + booking.Height
	col.gap(160)
	return col.y
}

func (p *Page) buildFooter(s *scrollfx.Node) float64 {
	s.Name = "footer"
	c := p.Copy
	const gap = 48
	width := p.width - 2*p.pad()
	w := (width - 3*gap) / 4
	top := 120.0

	columns := make([]*column, 4)
	for i := range columns {
		el := scrollfx.NewContainer(fmt.Sprintf("footer-%d", i))
		el.Class = "footer-element"
		el.X, el.Y, el.Width = p.pad()+float64(i)*(w+gap), top, w
		s.AddChild(el)
		columns[i] = newColumn(el, 0, 0, w)
	}

	columns[0].text("footer-brand", "brand", c.HeroTitle, colorText)
	columns[0].gap(16)
	columns[0].text("footer-tagline", "tagline", c.FooterTagline, colorMuted)

	for i, label := range c.FooterNav {
		if i >= len(navFragments) {
			break
		}
		target := navFragments[i]
		link := columns[1].text("footer-nav-"+Anchors[target], "nav", label, colorText)
		link.OnClick = func(scrollfx.ClickContext) { p.ScrollToAnchor(target) }
		columns[1].gap(10)
	}

	email := c.ContactItems[len(c.ContactItems)-1]
	columns[2].text("footer-email-label", "label", email.Label, colorGold)
	columns[2].gap(12)
	columns[2].text("footer-email", "line", email.Lines[0], colorText)

	hours := c.ContactItems[1]
	columns[3].text("footer-hours-label", "label", hours.Label, colorGold)
	columns[3].gap(12)
	for j, line := range hours.Lines {
		columns[3].text(fmt.Sprintf("footer-hours-%d", j), "line", line, colorText)
		columns[3].gap(6)
	}

	var h float64
	for _, col := range columns {
		col.parent.Height = col.y
		h = math.Max(h, col.y)
	}
	return top + h + 120
}

// column stacks children vertically inside parent, advancing y past each.
type column struct {
	parent      *scrollfx.Node
	x, y, width float64
}

func newColumn(parent *scrollfx.Node, x, y, width float64) *column {
	return &column{parent: parent, x: x, y: y, width: width}
}

func (c *column) gap(h float64) { c.y += h }

// text adds a text node wrapped to the column width and sized to its content.
func (c *column) text(name, class, content string, color scrollfx.Color) *scrollfx.Node {
	n := scrollfx.NewText(name, content)
	n.Class = class
	n.X, n.Y = c.x, c.y
	n.WrapWidth = c.width
	n.Color = color
	n.Width, n.Height = scrollfx.MeasureText(n)
	c.parent.AddChild(n)
	c.y += n.Height
	return n
}

// box adds a column-wide container of height h.
func (c *column) box(name, class string, h float64) *scrollfx.Node {
	n := scrollfx.NewContainer(name)
	n.Class = class
	n.X, n.Y = c.x, c.y
	n.Width, n.Height = c.width, h
	c.parent.AddChild(n)
	c.y += h
	return n
}
