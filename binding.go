package scrollfx

import (
	"errors"
	"math"

	"github.com/tanema/gween/ease"
)

// Errors returned by Observer.Register.
var (
	ErrNilBinding = errors.New("scrollfx: nil binding")
	ErrNoTargets  = errors.New("scrollfx: binding has no targets")
	ErrBadKind    = errors.New("scrollfx: binding kind is unset or unknown")
)

// Binding is one scroll-driven effect: it watches a trigger element and
// writes visual props on its targets.
//
// reveal and stagger-reveal toggle: crossing the zone start downward plays
// every target toward To, crossing it upward plays back toward From. Targets
// after the first start Stagger seconds apart. parallax maps the scroll
// progress through the zone linearly onto From..To every frame.
//
// A nil From means "the values the targets had when registered", a nil To
// means the same for the destination, so a binding can animate to or from
// the resting layout.
type Binding struct {
	Name    string
	Kind    Kind
	Targets []*Node
	Trigger *Node // defaults to Targets[0]
	Zone    Zone

	From Props
	To   Props

	Duration        float64 // seconds
	ReverseDuration float64 // 0 = Duration
	Delay           float64 // seconds before the first target starts
	Stagger         float64 // seconds between consecutive targets
	Ease            ease.TweenFunc
	Scrub           float64 // parallax lag in seconds; 0 follows scroll exactly

	// OnUpdate is called with the binding's progress whenever the observer
	// pushes a new value: every changed frame for parallax, each toggle
	// (1 entered, 0 left) for reveals.
	OnUpdate func(b *Binding, progress float64)
	// OnToggle is called on every playback state change.
	OnToggle func(b *Binding, state PlayState)

	obs       *Observer
	handle    Handle
	state     PlayState
	progress  float64
	applied   bool
	saved     []Props
	groups    []*TweenGroup
	scheduled []float64
	startedAt []float64
}

// State returns the playback state.
func (b *Binding) State() PlayState { return b.state }

// Progress returns the last progress pushed to the binding.
func (b *Binding) Progress() float64 { return b.progress }

// Handle returns the registration handle, or 0 when not registered.
func (b *Binding) Handle() Handle { return b.handle }

// Schedule returns, per target, the observer time at which the most recent
// play (forward or reverse) was scheduled to start that target.
func (b *Binding) Schedule() []float64 {
	return append([]float64(nil), b.scheduled...)
}

// StartTimes returns, per target, the observer time of the frame in which
// that target actually began moving in the most recent play. Entries are -1
// until the target starts.
func (b *Binding) StartTimes() []float64 {
	return append([]float64(nil), b.startedAt...)
}

// propKeys returns the union of props the binding touches.
func (b *Binding) propKeys() Props {
	keys := make(Props, len(b.From)+len(b.To))
	for p := range b.From {
		keys[p] = 0
	}
	for p := range b.To {
		keys[p] = 0
	}
	return keys
}

// fromFor returns the start values for target i.
func (b *Binding) fromFor(i int) Props {
	if b.From != nil {
		return b.From
	}
	return b.saved[i]
}

// toFor returns the end values for target i.
func (b *Binding) toFor(i int) Props {
	if b.To != nil {
		return b.To
	}
	return b.saved[i]
}

// prime records the pre-registration values of every touched prop and, for
// reveals, puts the targets in their From state straight away so nothing
// flashes before the first crossing.
func (b *Binding) prime() {
	keys := b.propKeys()
	b.saved = make([]Props, len(b.Targets))
	for i, t := range b.Targets {
		b.saved[i] = t.snapshotProps(keys)
	}
	b.state = StateIdle
	b.progress = 0
	b.applied = false
	b.groups = nil
	b.scheduled = nil
	b.startedAt = nil
	if b.Kind == KindParallax {
		return
	}
	for i, t := range b.Targets {
		t.applyProps(b.fromFor(i))
	}
}

// revert stops any running tweens and restores the values recorded by prime.
func (b *Binding) revert() {
	for _, g := range b.groups {
		g.Stop()
	}
	b.groups = nil
	for i, t := range b.Targets {
		if t.IsDisposed() || i >= len(b.saved) {
			continue
		}
		t.applyProps(b.saved[i])
	}
}

// live reports whether the trigger and every target are still attached.
func (b *Binding) live() bool {
	if !b.Trigger.IsAttached() {
		return false
	}
	for _, t := range b.Targets {
		if !t.IsAttached() {
			return false
		}
	}
	return true
}

// --- reveal ---

// evaluateReveal toggles playback when the scroll position has moved to the
// other side of the zone start.
func (b *Binding) evaluateReveal(scrollY, viewportH, now float64) {
	start := b.Zone.Start.ScrollPosition(LayoutBounds(b.Trigger), viewportH)
	entered := scrollY >= start
	switch {
	case entered && !b.state.Forward():
		b.play(true, now)
	case !entered && b.state.Forward():
		b.play(false, now)
	}
}

// play starts a forward or reverse run from wherever the targets are now.
// Reverse runs stagger from the last target back to the first.
func (b *Binding) play(forward bool, now float64) {
	for _, g := range b.groups {
		g.Stop()
	}
	n := len(b.Targets)
	b.groups = make([]*TweenGroup, n)
	b.scheduled = make([]float64, n)
	b.startedAt = make([]float64, n)

	fn := b.Ease
	if fn == nil {
		fn = ease.Linear
	}
	dur := b.Duration
	if !forward && b.ReverseDuration > 0 {
		dur = b.ReverseDuration
	}
	for i, t := range b.Targets {
		var delay float64
		var to Props
		if forward {
			delay = b.Delay + float64(i)*b.Stagger
			to = b.toFor(i)
		} else {
			delay = float64(n-1-i) * b.Stagger
			to = b.fromFor(i)
		}
		b.groups[i] = TweenProps(t, to, float32(dur), float32(delay), fn)
		b.scheduled[i] = now + delay
		b.startedAt[i] = -1
	}

	if forward {
		b.progress = 1
		b.setState(StatePlayingForward, now)
	} else {
		b.progress = 0
		b.setState(StatePlayingReverse, now)
	}
	if b.OnUpdate != nil {
		b.OnUpdate(b, b.progress)
	}
}

// advance steps running tweens by dt. now is the observer time at the end of
// the step. Settles the state once every target has arrived.
func (b *Binding) advance(dt float32, now float64) {
	if len(b.groups) == 0 {
		return
	}
	allDone := true
	for i, g := range b.groups {
		g.Update(dt)
		if g.Started() && b.startedAt[i] < 0 {
			b.startedAt[i] = now
		}
		if !g.Done {
			allDone = false
		}
	}
	if !allDone {
		return
	}
	b.groups = nil
	switch b.state {
	case StatePlayingForward:
		b.setState(StateSettledForward, now)
	case StatePlayingReverse:
		b.setState(StateSettledReverse, now)
	}
}

// --- parallax ---

// evaluateParallax writes the interpolated props for the current scroll
// position. Outside the watch region the target snaps to its clamped end and
// is left alone after that. Returns true when values were written.
func (b *Binding) evaluateParallax(scrollY, viewportH, dt float64, watch Rect) bool {
	bounds := LayoutBounds(b.Trigger)
	start, end := b.Zone.Resolve(bounds, viewportH)
	target := Progress(scrollY, start, end)

	p := target
	if bounds.Intersects(watch) && b.Scrub > 0 && b.applied {
		k := 1 - math.Exp(-4*dt/b.Scrub)
		p = b.progress + (target-b.progress)*k
		if math.Abs(target-p) < 1e-4 {
			p = target
		}
	}
	if b.applied && p == b.progress {
		return false
	}
	b.setProgress(p)
	return true
}

// setProgress applies parallax progress p to every target.
func (b *Binding) setProgress(p float64) {
	for i, t := range b.Targets {
		from, to := b.fromFor(i), b.toFor(i)
		for prop, end := range to {
			begin, ok := from[prop]
			if !ok {
				begin = b.saved[i][prop]
			}
			t.SetProp(prop, begin+(end-begin)*p)
		}
	}
	b.progress = p
	b.applied = true
	if b.OnUpdate != nil {
		b.OnUpdate(b, p)
	}
}

func (b *Binding) setState(s PlayState, now float64) {
	if b.state == s {
		return
	}
	b.state = s
	if b.OnToggle != nil {
		b.OnToggle(b, s)
	}
	if b.obs != nil {
		b.obs.emit(BindingEvent{
			Handle:   b.handle,
			Name:     b.Name,
			Kind:     b.Kind,
			State:    s,
			Progress: b.progress,
			Time:     now,
		})
	}
}
