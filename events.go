package scrollfx

// EventSink receives binding state changes. When set on an Observer, every
// playback transition is forwarded to it (see package ecs for a Donburi
// adapter).
type EventSink interface {
	EmitEvent(event BindingEvent)
}

// BindingForgetter is implemented by sinks that keep per-binding state.
// Observer.Unregister calls ForgetBinding once the binding is removed.
type BindingForgetter interface {
	ForgetBinding(h Handle)
}

// BindingEvent describes one playback state change.
type BindingEvent struct {
	Handle   Handle
	Name     string
	Kind     Kind
	State    PlayState
	Progress float64
	Time     float64 // observer clock, seconds
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(BindingEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event BindingEvent) {
	f(event)
}
