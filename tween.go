package aspen

import "math"

// Tween is the animatable unit: a small state machine that accumulates
// elapsed time, computes an eased interpolation factor, and hands it to a
// [Binding] to write values out. Obtain tweens through the [Manager]
// factories ([Manager.Num], [Manager.Prop], [Manager.Var],
// [Manager.Animate]) rather than constructing them directly; the manager
// pools and recycles instances.
//
// Tweens are not safe for concurrent use. All lifecycle calls and the
// per-frame update must come from the same goroutine.
type Tween struct {
	settings *Settings
	manager  *Manager
	binding  Binding

	// scale is the post-easing interpolation factor. Nominally in [0,1]
	// but overshoot easing may leave the range.
	scale float64
	// elapsed is seconds accumulated since the current cycle (re)started.
	elapsed float64
	// executions counts completed cycles; cycle 0 gates on the start
	// delay, later cycles on the loop delay.
	executions int

	paused   bool
	running  bool
	finished bool
	backward bool
	// started tracks the one-shot onStart dispatch. Reset only by Start
	// and Reset, never by loop rewinds.
	started bool
}

// Start resets all transient state, marks the tween running, and snapshots
// start values through the binding. Calling Start on an already running
// tween is an idempotent reset.
//
// If a named goal references a field that is not registered on the target,
// Start returns the configuration error, no start values are retained, and
// the tween is left stopped.
func (t *Tween) Start() error {
	if debugMode {
		debugCheckSettings(t, "Start")
	}
	t.resetTransient()
	t.running = true
	if t.settings != nil && t.settings.policy == Backward {
		t.backward = true
	}
	if t.binding != nil {
		if err := t.binding.Capture(); err != nil {
			t.running = false
			return err
		}
	}
	return nil
}

// Update advances the tween by elapsed seconds. It is a silent no-op on a
// paused, finished, stopped, or unowned tween. Normally called by the
// owning manager's update pass.
func (t *Tween) Update(elapsed float64) {
	if t.paused || t.finished || !t.running || t.manager == nil || t.settings == nil {
		return
	}
	s := t.settings

	preTick := t.elapsed
	t.elapsed += elapsed
	postTick := t.elapsed

	delay := s.startDelay
	if t.executions > 0 {
		delay = s.loopDelay
	}
	if t.elapsed < delay {
		return
	}

	if s.framerate > 0 {
		preTick = math.Round(preTick*s.framerate) / s.framerate
		postTick = math.Round(postTick*s.framerate) / s.framerate
	}

	t.scale = math.Max(postTick-delay, 0) / s.duration
	if s.ease != nil {
		t.scale = s.ease(t.scale)
	}
	if t.backward {
		t.scale = 1 - t.scale
	}

	if !t.started {
		t.started = true
		if s.onStart != nil {
			s.onStart(t)
		}
	}

	if t.elapsed >= s.duration+delay {
		if t.backward {
			t.scale = 0
		} else {
			t.scale = 1
		}
		t.apply()
		t.finished = true
		if s.onComplete != nil {
			s.onComplete(t)
		}
		return
	}

	t.apply()
	// Under quantization the sampled time may not have moved even though
	// real time did; only report updates that advanced a sample.
	if postTick > preTick && s.onUpdate != nil {
		s.onUpdate(t)
	}
}

func (t *Tween) apply() {
	if t.binding != nil {
		t.binding.Apply(t.scale)
	}
}

// rewind prepares the next cycle of a looping tween: elapsed time restarts,
// the finished flag clears, and the cycle counter advances so the loop
// delay gates subsequent cycles. PingPong additionally flips direction.
// The started flag is deliberately left set: onStart fires once per Start,
// not once per cycle.
func (t *Tween) rewind(flip bool) {
	t.elapsed = 0
	t.finished = false
	t.executions++
	if flip {
		t.backward = !t.backward
	}
}

// Pause suspends the tween until Resume. Updates become no-ops.
func (t *Tween) Pause() *Tween {
	t.paused = true
	t.running = false
	return t
}

// Resume reactivates a paused tween.
func (t *Tween) Resume() *Tween {
	t.paused = false
	t.running = true
	return t
}

// Stop halts the tween without removing it from its manager or recycling
// it. A stopped tween stays idle until Start is called again.
func (t *Tween) Stop() *Tween {
	t.running = false
	return t
}

// Restart starts the tween over from the beginning, re-snapshotting start
// values. It is a silent no-op (returning nil) on a tween with no manager
// or settings.
func (t *Tween) Restart() error {
	if t.manager == nil || t.settings == nil {
		return nil
	}
	return t.Start()
}

// Cancel detaches the tween from its manager and recycles it into the
// manager's pool, regardless of completion policy. After Cancel the caller
// must not use the tween again.
func (t *Tween) Cancel() {
	m := t.manager
	if m == nil {
		t.Reset()
		return
	}
	m.detach(t)
	m.pool.Free(t)
}

// Reset returns the tween to its blank pooled state: all transient fields
// zeroed and the settings, binding, and manager references cleared. Called
// by the pool on release; callers normally use Cancel instead.
func (t *Tween) Reset() {
	t.resetTransient()
	t.settings = nil
	t.binding = nil
	t.manager = nil
}

// resetTransient zeroes per-cycle state while keeping settings, binding,
// and manager wiring intact.
func (t *Tween) resetTransient() {
	t.scale = 0
	t.elapsed = 0
	t.executions = 0
	t.paused = false
	t.running = false
	t.finished = false
	t.backward = false
	t.started = false
}

// Paused reports whether the tween is paused.
func (t *Tween) Paused() bool { return t.paused }

// Running reports whether the tween is actively advancing.
func (t *Tween) Running() bool { return t.running }

// Finished reports whether the current cycle reached terminal progress.
func (t *Tween) Finished() bool { return t.finished }

// Backward reports whether progress currently runs 1 → 0.
func (t *Tween) Backward() bool { return t.backward }

// Scale returns the post-easing interpolation factor of the last update.
func (t *Tween) Scale() float64 { return t.scale }

// Elapsed returns seconds accumulated since the current cycle started.
func (t *Tween) Elapsed() float64 { return t.elapsed }

// Executions returns the number of completed loop cycles.
func (t *Tween) Executions() int { return t.executions }

// Settings returns the settings driving this tween, or nil for a pooled
// blank.
func (t *Tween) Settings() *Settings { return t.settings }

// SetSettings replaces the settings used on the next Start. Swapping
// settings mid-flight is not supported; Stop or let the tween finish
// first.
func (t *Tween) SetSettings(s *Settings) *Tween {
	t.settings = s
	return t
}

// Manager returns the manager that owns this tween, or nil.
func (t *Tween) Manager() *Manager { return t.manager }

// SetManager transfers the tween to a new manager. If the tween already
// belongs to one it is first detached from that manager's active set; it is
// then registered active in the new manager. Passing nil is a no-op.
func (t *Tween) SetManager(m *Manager) *Tween {
	if m == nil || m == t.manager {
		return t
	}
	if t.manager != nil {
		t.manager.detach(t)
	}
	m.attach(t)
	return t
}
