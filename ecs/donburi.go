package ecs

import (
	"github.com/phanxgames/aspen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CompleteEvent is the Donburi event published when an observed tween
// finishes a cycle. Subscribe to CompleteEventType in your ECS systems to
// react to animation completions without wiring per-tween callbacks.
type CompleteEvent struct {
	Tween *aspen.Tween
}

// CompleteEventType is the Donburi event type for tween completions.
// Consume it with events.Subscribe; events are delivered during
// [System.Update].
var CompleteEventType = events.NewEventType[CompleteEvent]()

// System drives an aspen Manager inside a Donburi world's update cycle and
// bridges tween completions onto the world's event bus.
type System struct {
	world   donburi.World
	manager *aspen.Manager
}

// NewSystem creates a System that advances manager and delivers its
// completion events into world.
func NewSystem(world donburi.World, manager *aspen.Manager) *System {
	return &System{world: world, manager: manager}
}

// Manager returns the aspen manager this system advances.
func (s *System) Manager() *aspen.Manager {
	return s.manager
}

// Observe chains onto the settings' on-complete callback so every cycle
// completion of tweens driven by it publishes a [CompleteEvent]. Any
// callback already set keeps firing first.
func (s *System) Observe(settings *aspen.Settings) {
	prev := settings.OnComplete()
	settings.SetOnComplete(func(t *aspen.Tween) {
		if prev != nil {
			prev(t)
		}
		CompleteEventType.Publish(s.world, CompleteEvent{Tween: t})
	})
}

// Update advances the manager by elapsed seconds, then processes the
// world's pending events so completion subscribers run in the same tick.
func (s *System) Update(elapsed float64) {
	s.manager.Update(elapsed)
	events.ProcessAllEvents(s.world)
}
