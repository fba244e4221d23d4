package aspen

// Stepper converts variable real-frame time into fixed-size simulation
// steps, for hosts that want deterministic tween playback regardless of
// frame jitter:
//
//	stepper := aspen.NewStepper(60)
//	// each frame:
//	stepper.Advance(realDt, func(dt float64) { manager.Update(dt) })
//
// Leftover time below one step is carried into the next Advance call.
type Stepper struct {
	// Rate is the number of fixed steps per second. A non-positive rate
	// disables stepping: Advance passes real time straight through.
	Rate float64
	// MaxSteps caps the steps run per Advance call so a long stall cannot
	// trigger an unbounded catch-up burst. Zero means no cap.
	MaxSteps int

	accum float64
}

// NewStepper creates a Stepper running at rate fixed steps per second.
func NewStepper(rate float64) *Stepper {
	return &Stepper{Rate: rate}
}

// Advance accumulates real elapsed seconds and invokes fn once per whole
// fixed step that fits, returning the number of steps run. When MaxSteps
// truncates a catch-up burst the remaining backlog is dropped.
func (st *Stepper) Advance(elapsed float64, fn func(step float64)) int {
	if st.Rate <= 0 {
		fn(elapsed)
		return 1
	}
	st.accum += elapsed
	dt := 1 / st.Rate
	steps := 0
	for st.accum >= dt {
		st.accum -= dt
		fn(dt)
		steps++
		if st.MaxSteps > 0 && steps >= st.MaxSteps {
			st.accum = 0
			break
		}
	}
	return steps
}

// Pending returns the accumulated time not yet consumed by a full step.
func (st *Stepper) Pending() float64 {
	return st.accum
}
