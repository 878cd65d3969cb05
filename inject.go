package scrollfx

type syntheticKind uint8

const (
	syntheticScroll syntheticKind = iota
	syntheticClick
)

// syntheticEvent represents a single injected scroll or click. Click
// coordinates are screen coordinates and converted through the viewport,
// identical to real pointer input.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectScroll queues a jump to the absolute scroll offset y. Each queued
// event is consumed by one Update.
func (o *Observer) InjectScroll(y float64) {
	o.injectQueue = append(o.injectQueue, syntheticEvent{kind: syntheticScroll, y: y})
}

// InjectSmoothScroll queues a scroll from fromY to toY spread linearly over
// frames frames, the last one landing exactly on toY. Minimum frames is 1.
func (o *Observer) InjectSmoothScroll(fromY, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		o.InjectScroll(fromY + (toY-fromY)*t)
	}
}

// InjectClick queues a click at the given screen coordinates.
func (o *Observer) InjectClick(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// Pending returns the number of injected events not yet consumed.
func (o *Observer) Pending() int {
	return len(o.injectQueue)
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (o *Observer) processInjected() bool {
	if len(o.injectQueue) == 0 {
		return false
	}
	evt := o.injectQueue[0]
	copy(o.injectQueue, o.injectQueue[1:])
	o.injectQueue = o.injectQueue[:len(o.injectQueue)-1]

	switch evt.kind {
	case syntheticScroll:
		o.ScrollTo(evt.y)
	case syntheticClick:
		o.Click(evt.x, evt.y)
	}
	return true
}

// Click delivers a click at screen coordinates to the top-most node under
// it that has an OnClick handler. Returns the node that handled it, or nil.
func (o *Observer) Click(screenX, screenY float64) *Node {
	if o.root == nil {
		return nil
	}
	x, y := o.viewport.ScreenToDocument(screenX, screenY)
	hit := HitTest(o.root, x, y)
	if hit == nil {
		return nil
	}
	b := VisualBounds(hit)
	hit.OnClick(ClickContext{
		Node:    hit,
		GlobalX: x,
		GlobalY: y,
		LocalX:  x - b.X,
		LocalY:  y - b.Y,
	})
	return hit
}
