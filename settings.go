package aspen

import "github.com/phanxgames/aspen/ease"

// Callback observes a tween lifecycle event. The tween passed in is the one
// that fired the event; it is valid to call lifecycle methods on it from
// inside the callback (e.g. Restart from an on-complete).
type Callback func(*Tween)

// minDuration is the floor applied to SetDuration so progress division is
// always defined.
const minDuration = 1e-6

// namedGoal is a field-name goal resolved against a Fields table at start.
type namedGoal struct {
	name  string
	value float64
}

// propGoal is a getter/setter goal. The getter runs once at start, the
// setter on every sampled step.
type propGoal struct {
	get   func() float64
	value float64
	set   func(float64)
}

// Settings configures how a tween animates: duration, delays, easing,
// framerate quantization, lifecycle callbacks, and the set of goals to
// interpolate toward. One Settings value may be shared across sequential
// tweens, but must not be mutated while a tween using it is mid-flight;
// each tween snapshots its own start values at Start.
//
// All setters return the receiver for chaining:
//
//	s := aspen.NewSettings(aspen.Oneshot, ease.OutQuad).
//		SetDuration(0.5).
//		SetStartDelay(0.1)
type Settings struct {
	duration   float64
	startDelay float64
	loopDelay  float64
	framerate  float64
	policy     Policy
	ease       ease.Func
	onStart    Callback
	onUpdate   Callback
	onComplete Callback
	goals      []namedGoal
	propGoals  []propGoal
}

// NewSettings creates a Settings value with the given completion policy and
// easing function. A nil easing function means identity (linear) easing.
// Duration defaults to one second; delays and framerate default to zero.
func NewSettings(p Policy, fn ease.Func) *Settings {
	return &Settings{
		duration: 1,
		policy:   p,
		ease:     fn,
	}
}

// SetDuration sets how long one tween cycle lasts, in seconds. Values at or
// below zero clamp to a minimal positive duration.
func (s *Settings) SetDuration(d float64) *Settings {
	if d < minDuration {
		d = minDuration
	}
	s.duration = d
	return s
}

// SetStartDelay sets the delay in seconds before the first cycle begins
// sampling. Negative values clamp to zero.
func (s *Settings) SetStartDelay(d float64) *Settings {
	s.startDelay = max(d, 0)
	return s
}

// SetLoopDelay sets the delay in seconds before every cycle after the
// first. Negative values clamp to zero.
func (s *Settings) SetLoopDelay(d float64) *Settings {
	s.loopDelay = max(d, 0)
	return s
}

// SetFramerate quantizes sampled time to f samples per second, producing
// stepped, frame-jitter-independent animation. Zero (the default) disables
// quantization; negative values clamp to zero.
func (s *Settings) SetFramerate(f float64) *Settings {
	s.framerate = max(f, 0)
	return s
}

// SetEase sets the easing function. Nil means identity easing.
func (s *Settings) SetEase(fn ease.Func) *Settings {
	s.ease = fn
	return s
}

// SetPolicy sets the completion policy.
func (s *Settings) SetPolicy(p Policy) *Settings {
	s.policy = p
	return s
}

// SetOnStart sets the callback fired once per Start, on the first update
// that passes the delay gate. Nil clears it.
func (s *Settings) SetOnStart(fn Callback) *Settings {
	s.onStart = fn
	return s
}

// SetOnUpdate sets the callback fired on every update that advances the
// sampled time. Nil clears it.
func (s *Settings) SetOnUpdate(fn Callback) *Settings {
	s.onUpdate = fn
	return s
}

// SetOnComplete sets the callback fired when a cycle reaches its terminal
// progress, after the final value has been applied. Looping tweens fire it
// once per cycle. Nil clears it.
func (s *Settings) SetOnComplete(fn Callback) *Settings {
	s.onComplete = fn
	return s
}

// AddGoal registers a named goal: the field registered under name in the
// target's Fields table is tweened to value. Used by [Manager.Var] tweens.
// Adding a name twice overwrites the earlier goal in place.
func (s *Settings) AddGoal(name string, value float64) *Settings {
	for i := range s.goals {
		if s.goals[i].name == name {
			s.goals[i].value = value
			return s
		}
	}
	s.goals = append(s.goals, namedGoal{name: name, value: value})
	return s
}

// AddPropGoal registers a getter/setter goal. The getter supplies the start
// value once at tween start; the setter receives the interpolated value on
// every sampled step, so any side effects behind it fire continuously.
// Used by [Manager.Prop] tweens. Nil getters or setters are ignored.
func (s *Settings) AddPropGoal(get func() float64, value float64, set func(float64)) *Settings {
	if get == nil || set == nil {
		return s
	}
	s.propGoals = append(s.propGoals, propGoal{get: get, value: value, set: set})
	return s
}

// ClearGoals removes all named and getter/setter goals, e.g. before
// reconfiguring a Settings value for reuse.
func (s *Settings) ClearGoals() {
	s.goals = s.goals[:0]
	s.propGoals = s.propGoals[:0]
}

// Duration returns the cycle duration in seconds.
func (s *Settings) Duration() float64 { return s.duration }

// StartDelay returns the first-cycle delay in seconds.
func (s *Settings) StartDelay() float64 { return s.startDelay }

// LoopDelay returns the delay applied to cycles after the first.
func (s *Settings) LoopDelay() float64 { return s.loopDelay }

// Framerate returns the quantization rate, or zero when disabled.
func (s *Settings) Framerate() float64 { return s.framerate }

// Ease returns the easing function, which may be nil (identity).
func (s *Settings) Ease() ease.Func { return s.ease }

// Policy returns the completion policy.
func (s *Settings) Policy() Policy { return s.policy }

// OnStart returns the on-start callback, which may be nil.
func (s *Settings) OnStart() Callback { return s.onStart }

// OnUpdate returns the on-update callback, which may be nil.
func (s *Settings) OnUpdate() Callback { return s.onUpdate }

// OnComplete returns the on-complete callback, which may be nil.
func (s *Settings) OnComplete() Callback { return s.onComplete }

// Goal returns the target value registered under name and whether the name
// is registered.
func (s *Settings) Goal(name string) (float64, bool) {
	for i := range s.goals {
		if s.goals[i].name == name {
			return s.goals[i].value, true
		}
	}
	return 0, false
}

// EachGoal visits the named goals in registration order.
func (s *Settings) EachGoal(visit func(name string, value float64)) {
	for i := range s.goals {
		visit(s.goals[i].name, s.goals[i].value)
	}
}

// GoalCount returns the number of named goals.
func (s *Settings) GoalCount() int { return len(s.goals) }

// PropGoalCount returns the number of getter/setter goals.
func (s *Settings) PropGoalCount() int { return len(s.propGoals) }
