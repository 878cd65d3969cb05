package scrollfx

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Handle identifies a registered Binding. The zero Handle is never issued.
type Handle uint64

// DefaultWatchMargin extends the viewport above and below when deciding
// which parallax bindings to recompute, as a fraction of viewport height.
const DefaultWatchMargin = 0.5

// Observer owns the scroll position and every registered Binding. Construct
// one per application and hand it to each Controller.
//
// Scroll changes are only recorded by ScrollTo/ScrollBy; bindings are
// evaluated once per Update, so many scroll events in one frame cost one
// pass.
type Observer struct {
	root     *Node
	viewport *Viewport
	log      *zap.Logger
	sink     EventSink
	debug    bool

	bindings   map[Handle]*Binding
	order      []Handle
	nextHandle Handle
	orderBuf   []Handle

	now         float64
	watchMargin float64

	injectQueue []syntheticEvent
	testRunner  *TestRunner
	updateFunc  func() error
}

// Option configures an Observer.
type Option func(*Observer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *Observer) {
		if l != nil {
			o.log = l
		}
	}
}

// WithEventSink forwards playback state changes to sink.
func WithEventSink(sink EventSink) Option {
	return func(o *Observer) { o.sink = sink }
}

// WithWatchMargin sets the parallax watch margin as a fraction of viewport
// height.
func WithWatchMargin(fraction float64) Option {
	return func(o *Observer) {
		if fraction >= 0 {
			o.watchMargin = fraction
		}
	}
}

// NewObserver creates an observer for the document rooted at root, seen
// through viewport. A nil viewport gets an 800x600 default.
func NewObserver(root *Node, viewport *Viewport, opts ...Option) *Observer {
	if viewport == nil {
		viewport = NewViewport(800, 600)
	}
	o := &Observer{
		root:        root,
		viewport:    viewport,
		log:         zap.NewNop(),
		bindings:    make(map[Handle]*Binding),
		watchMargin: DefaultWatchMargin,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Root returns the document root.
func (o *Observer) Root() *Node { return o.root }

// Viewport returns the observer's viewport.
func (o *Observer) Viewport() *Viewport { return o.viewport }

// Logger returns the observer's logger.
func (o *Observer) Logger() *zap.Logger { return o.log }

// Now returns the observer clock in seconds: the sum of every dt passed to
// Update.
func (o *Observer) Now() float64 { return o.now }

// ScrollY returns the current scroll offset.
func (o *Observer) ScrollY() float64 { return o.viewport.ScrollY }

// ScrollTo sets the scroll offset. Bindings see it on the next Update.
func (o *Observer) ScrollTo(y float64) { o.viewport.ScrollTo(y) }

// ScrollBy moves the scroll offset by dy.
func (o *Observer) ScrollBy(dy float64) { o.viewport.ScrollBy(dy) }

// SetEventSink sets the sink that receives playback state changes.
func (o *Observer) SetEventSink(sink EventSink) { o.sink = sink }

// SetUpdateFunc sets a callback run at the end of every Update.
func (o *Observer) SetUpdateFunc(fn func() error) { o.updateFunc = fn }

// Len returns the number of registered bindings.
func (o *Observer) Len() int { return len(o.bindings) }

// Binding returns the binding registered under h, or nil.
func (o *Observer) Binding(h Handle) *Binding { return o.bindings[h] }

// Bindings returns the registered bindings in registration order.
func (o *Observer) Bindings() []*Binding {
	out := make([]*Binding, 0, len(o.order))
	for _, h := range o.order {
		out = append(out, o.bindings[h])
	}
	return out
}

// Register adds b to the observer. The trigger and every target must be
// attached to a document. Reveal targets are put in their From state
// immediately; nothing else happens until the next Update.
func (o *Observer) Register(b *Binding) (Handle, error) {
	if b == nil {
		return 0, ErrNilBinding
	}
	if b.obs != nil {
		return 0, fmt.Errorf("register %q: already registered", b.Name)
	}
	if len(b.Targets) == 0 {
		return 0, fmt.Errorf("register %q: %w", b.Name, ErrNoTargets)
	}
	if !b.Kind.Valid() {
		return 0, fmt.Errorf("register %q: %w", b.Name, ErrBadKind)
	}
	if b.Trigger == nil {
		b.Trigger = b.Targets[0]
	}
	for _, t := range b.Targets {
		if t == nil {
			return 0, fmt.Errorf("register %q: %w", b.Name, ErrNoTargets)
		}
	}
	if !b.live() {
		return 0, fmt.Errorf("register %q: %w", b.Name, ErrDetached)
	}

	o.nextHandle++
	h := o.nextHandle
	b.obs = o
	b.handle = h
	b.prime()
	o.bindings[h] = b
	o.order = append(o.order, h)
	o.log.Debug("binding registered",
		zap.Uint64("handle", uint64(h)),
		zap.String("name", b.Name),
		zap.Stringer("kind", b.Kind),
		zap.Int("targets", len(b.Targets)))
	return h, nil
}

// Unregister removes the binding. It receives no further updates, including
// later in an Update pass that is already running. Unknown handles are
// ignored.
func (o *Observer) Unregister(h Handle) {
	b, ok := o.bindings[h]
	if !ok {
		return
	}
	delete(o.bindings, h)
	for i, oh := range o.order {
		if oh == h {
			copy(o.order[i:], o.order[i+1:])
			o.order = o.order[:len(o.order)-1]
			break
		}
	}
	for _, g := range b.groups {
		g.Stop()
	}
	b.groups = nil
	b.obs = nil
	b.handle = 0
	if f, ok := o.sink.(BindingForgetter); ok {
		f.ForgetBinding(h)
	}
	o.log.Debug("binding unregistered", zap.Uint64("handle", uint64(h)), zap.String("name", b.Name))
}

// watchRegion returns the viewport grown by the watch margin above and below.
func (o *Observer) watchRegion() Rect {
	vb := o.viewport.VisibleBounds()
	m := o.watchMargin * vb.Height
	return Rect{X: -1e12, Y: vb.Y - m, Width: 2e12, Height: vb.Height + 2*m}
}

// Update advances the frame by dt seconds: consumes one injected event,
// steps smooth scrolling and running tweens, then evaluates every binding
// once against the current scroll position.
func (o *Observer) Update(dt float64) error {
	var t0 time.Time
	if o.debug {
		t0 = time.Now()
	}

	if o.testRunner != nil {
		o.testRunner.step(o)
	}
	o.processInjected()

	if o.root != nil && o.root.Height > 0 {
		o.viewport.ContentHeight = o.root.Height
	}
	o.viewport.update(float32(dt))
	o.now += dt

	stats := o.dispatch(dt)

	if o.debug {
		stats.frameTime = time.Since(t0)
		o.debugLog(stats)
	}
	if o.updateFunc != nil {
		return o.updateFunc()
	}
	return nil
}

// Refresh evaluates every binding against the current scroll position
// without advancing time.
func (o *Observer) Refresh() {
	o.dispatch(0)
}

// dispatch runs one evaluation pass. Handles are snapshotted first and
// re-checked before each call so a binding unregistered by a callback earlier
// in the pass is skipped.
func (o *Observer) dispatch(dt float64) debugStats {
	var stats debugStats
	o.orderBuf = append(o.orderBuf[:0], o.order...)
	scrollY := o.viewport.ScrollY
	vh := o.viewport.Height
	watch := o.watchRegion()

	for _, h := range o.orderBuf {
		b, ok := o.bindings[h]
		if !ok {
			continue
		}
		if !b.live() {
			stats.stale++
			continue
		}
		stats.evaluated++
		switch b.Kind {
		case KindParallax:
			if b.evaluateParallax(scrollY, vh, dt, watch) {
				stats.dispatched++
			}
		default:
			b.advance(float32(dt), o.now)
			if _, ok := o.bindings[h]; !ok {
				continue
			}
			before := b.state
			b.evaluateReveal(scrollY, vh, o.now)
			if b.state != before {
				stats.dispatched++
			}
		}
	}
	return stats
}

func (o *Observer) emit(e BindingEvent) {
	if o.sink != nil {
		o.sink.EmitEvent(e)
	}
}
