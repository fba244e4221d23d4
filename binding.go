package aspen

// Binding is the extension point that connects a tween to external state.
// Capture runs once inside [Tween.Start], after validation and before the
// first update, to snapshot start values. Apply runs on every sampled
// update with the current interpolation factor and writes values out.
//
// The built-in strategies (scalar, getter/setter, named-field) cover the
// common cases; custom implementations plug in via [Manager.Animate].
type Binding interface {
	Capture() error
	Apply(progress float64)
}

// numBinding interpolates a single value between two fixed endpoints and
// feeds each step to a callback.
type numBinding struct {
	start float64
	end   float64
	value float64
	fn    func(float64)
}

func (b *numBinding) Capture() error {
	b.value = b.start
	return nil
}

func (b *numBinding) Apply(progress float64) {
	if b.fn == nil {
		return
	}
	b.value = b.start + (b.end-b.start)*progress
	b.fn(b.value)
}

// propBinding drives the getter/setter goals registered on a Settings
// value. Getters run once at capture; setters run on every sampled step so
// their side effects fire continuously.
type propBinding struct {
	settings *Settings
	goals    []propGoal
	starts   []float64
}

func (b *propBinding) Capture() error {
	b.goals = b.goals[:0]
	b.starts = b.starts[:0]
	if b.settings == nil {
		return nil
	}
	for i := range b.settings.propGoals {
		g := b.settings.propGoals[i]
		b.goals = append(b.goals, g)
		b.starts = append(b.starts, g.get())
	}
	return nil
}

func (b *propBinding) Apply(progress float64) {
	for i := range b.goals {
		start := b.starts[i]
		b.goals[i].set(start + (b.goals[i].value-start)*progress)
	}
}
