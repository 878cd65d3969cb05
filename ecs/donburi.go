// Package ecs provides ECS adapters for scrollfx.
package ecs

import (
	"github.com/phanxgames/scrollfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// BindingEventType is the Donburi event type for binding state changes.
// Subscribe to this in your ECS systems to react to sections revealing.
var BindingEventType = events.NewEventType[scrollfx.BindingEvent]()

// BindingStatusData mirrors the latest state of one binding.
type BindingStatusData struct {
	Handle   scrollfx.Handle
	Name     string
	Kind     scrollfx.Kind
	State    scrollfx.PlayState
	Progress float64
	Changed  float64 // observer time of the last transition
}

// BindingStatus is the component attached to every mirrored binding.
var BindingStatus = donburi.NewComponentType[BindingStatusData]()

var statusQuery = donburi.NewQuery(filter.Contains(BindingStatus))

// DonburiSink is a scrollfx.EventSink backed by a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[scrollfx.Handle]donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to BindingEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[scrollfx.Handle]donburi.Entity)}
}

// EmitEvent publishes event and updates the binding's status entity,
// creating it on the first event.
func (s *DonburiSink) EmitEvent(event scrollfx.BindingEvent) {
	BindingEventType.Publish(s.world, event)

	e, ok := s.entities[event.Handle]
	if !ok || !s.world.Valid(e) {
		e = s.world.Create(BindingStatus)
		s.entities[event.Handle] = e
	}
	BindingStatus.SetValue(s.world.Entry(e), BindingStatusData{
		Handle:   event.Handle,
		Name:     event.Name,
		Kind:     event.Kind,
		State:    event.State,
		Progress: event.Progress,
		Changed:  event.Time,
	})
}

// Entity returns the status entity of the binding registered under h.
func (s *DonburiSink) Entity(h scrollfx.Handle) (donburi.Entity, bool) {
	e, ok := s.entities[h]
	if !ok || !s.world.Valid(e) {
		return 0, false
	}
	return e, true
}

// ForgetBinding removes the status entity of h. The observer calls it when
// the binding is unregistered.
func (s *DonburiSink) ForgetBinding(h scrollfx.Handle) {
	if e, ok := s.entities[h]; ok {
		if s.world.Valid(e) {
			s.world.Remove(e)
		}
		delete(s.entities, h)
	}
}

// CountState returns how many mirrored bindings are in state.
func CountState(world donburi.World, state scrollfx.PlayState) int {
	n := 0
	statusQuery.Each(world, func(entry *donburi.Entry) {
		if BindingStatus.Get(entry).State == state {
			n++
		}
	})
	return n
}
