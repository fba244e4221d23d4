// Package aspen is a time-based tween engine for animating numeric values.
//
// Aspen interpolates float64 values over time with configurable easing,
// start/loop delays, framerate quantization, and lifecycle callbacks. It is
// renderer-agnostic: the engine never touches your objects directly, it only
// calls the setters and callbacks you hand it, so it works equally well
// driving [Ebitengine] sprites, terminal cells, or audio parameters.
//
// Full documentation and examples are available at:
//
// https://phanxgames.github.io/aspen/
//
// # Quick start
//
// Create one [Manager], call [Manager.Update] once per frame with the
// elapsed seconds, and spawn tweens through the manager's factories:
//
//	manager := aspen.NewManager()
//
//	settings := aspen.NewSettings(aspen.Oneshot, ease.OutQuad).
//		SetDuration(0.8)
//	manager.Num(0, 100, settings, func(v float64) {
//		sprite.X = v
//	})
//
//	// each frame:
//	manager.Update(dt)
//
// # Tween kinds
//
// Three binding strategies cover the common cases, all created through the
// manager: [Manager.Num] interpolates a single value between two endpoints
// and feeds it to a callback, [Manager.Prop] drives getter/setter pairs
// registered with [Settings.AddPropGoal] so setter side effects fire on
// every step, and [Manager.Var] resolves named goals from
// [Settings.AddGoal] against a [Fields] table and delivers the whole batch
// of interpolated values to one callback per step. Custom strategies plug
// in through [Manager.Animate] and the [Binding] interface.
//
// # Lifecycle
//
// A tween runs until its elapsed time reaches duration plus delay, then its
// [Policy] decides what happens: [Oneshot] tweens are recycled into the
// manager's pool, [Persist] and [Backward] tweens stay dormant until
// restarted, and [Looping]/[PingPong] tweens are rewound by the manager and
// keep playing. Finished or cancelled tweens return to an internal [Pool]
// so steady-state animation allocates nothing.
//
// The engine is single-threaded by design: all lifecycle calls and the
// per-frame update must come from the goroutine that owns the animated
// objects.
//
// Easing curves live in the [aspen/ease] subpackage; ECS integration (via
// [Donburi]) lives in aspen/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package aspen
