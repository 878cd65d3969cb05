package scrollfx

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates any number of visual props on one Node simultaneously,
// optionally after a delay. Call Update(dt) each frame; the group writes the
// values straight into the node. If the target node is disposed, the group
// stops immediately.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	ends   []float64
	target *Node
	delay  float32

	started bool
	Done    bool
}

// TweenProps creates a TweenGroup that animates every prop in to, from the
// node's current values, over duration seconds after delay seconds.
// A non-positive duration jumps to the end values on the first Update that
// follows the delay.
func TweenProps(node *Node, to Props, duration, delay float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{target: node, delay: delay}
	// Map order is random; keep field order stable for reproducible writes.
	keys := make([]string, 0, len(to))
	for p := range to {
		keys = append(keys, string(p))
	}
	sort.Strings(keys)
	for _, k := range keys {
		p := Prop(k)
		field := node.propField(p)
		if field == nil {
			continue
		}
		g.fields = append(g.fields, field)
		g.ends = append(g.ends, to[p])
		if duration > 0 {
			g.tweens = append(g.tweens, gween.New(float32(*field), float32(to[p]), duration, fn))
		}
	}
	return g
}

// Update advances the group by dt seconds. Time left over after the delay
// runs out in the middle of a frame is applied to the tweens in that same
// frame.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		dt = -g.delay
		g.delay = 0
	}
	g.started = true

	if len(g.tweens) == 0 {
		for i, f := range g.fields {
			*f = g.ends[i]
		}
		g.Done = true
		return
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		// gween works in float32; land exactly on the requested values.
		for i, f := range g.fields {
			*f = g.ends[i]
		}
	}
	g.Done = allDone
}

// Started reports whether the delay has elapsed and values are being written.
func (g *TweenGroup) Started() bool {
	return g.started
}

// Stop ends the group where it is.
func (g *TweenGroup) Stop() {
	g.Done = true
}
