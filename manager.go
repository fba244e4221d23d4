package aspen

// Manager owns a set of active tweens, advances them once per frame, and
// enforces each tween's completion policy. It also owns the reuse pool all
// of its tweens are drawn from, so steady-state animation allocates
// nothing.
//
// Create one manager at startup and pass it to the call sites that spawn
// tweens; there is no hidden global instance. Managers are not safe for
// concurrent use — drive Update and all tween lifecycle calls from one
// goroutine.
type Manager struct {
	active  []*Tween
	scratch []*Tween
	pool    Pool[*Tween]
}

// NewManager creates an empty manager with its own tween pool.
func NewManager() *Manager {
	m := &Manager{}
	m.pool.New = func() *Tween { return &Tween{} }
	return m
}

// Update advances every active tween by elapsed seconds and then applies
// completion policies: finished [Oneshot] tweens are recycled into the
// pool, [Looping] and [PingPong] tweens are rewound for their next cycle,
// and retained policies are left dormant. Call once per host frame.
//
// The pass iterates over a snapshot of the active set, so tweens may be
// cancelled, restarted, or spawned from inside callbacks without skipping
// or double-processing entries.
func (m *Manager) Update(elapsed float64) {
	m.scratch = append(m.scratch[:0], m.active...)
	recycled := 0
	for _, t := range m.scratch {
		t.Update(elapsed)

		// Re-check after callbacks: an onComplete may have restarted,
		// cancelled, or transferred the tween.
		if !t.finished || t.manager != m || t.settings == nil {
			continue
		}
		switch p := t.settings.policy; {
		case p.loops():
			t.rewind(p == PingPong)
		case p.retained():
			// Leave it dormant until Restart or Cancel.
		default:
			m.detach(t)
			m.pool.Free(t)
			recycled++
		}
	}
	debugCheckActiveCount(m)
	debugLogRecycle(m, recycled)
}

// Num creates and starts a tween that interpolates a single value from
// from to to over the settings' duration, feeding every sampled step to fn.
func (m *Manager) Num(from, to float64, s *Settings, fn func(float64)) *Tween {
	t := m.pool.Obtain()
	t.settings = s
	t.binding = &numBinding{start: from, end: to, fn: fn}
	m.attach(t)
	// Scalar capture cannot fail.
	_ = t.Start()
	return t
}

// Prop creates and starts a tween that drives the getter/setter goals
// registered on s via [Settings.AddPropGoal].
func (m *Manager) Prop(s *Settings) *Tween {
	t := m.pool.Obtain()
	t.settings = s
	t.binding = &propBinding{settings: s}
	m.attach(t)
	// Getter capture cannot fail.
	_ = t.Start()
	return t
}

// Var creates and starts a tween that resolves the named goals on s
// against target and delivers the whole batch of interpolated values to fn
// on every sampled step. If any goal names an unregistered field the
// configuration error is returned and no tween is registered.
func (m *Manager) Var(target Fields, s *Settings, fn func(map[string]float64)) (*Tween, error) {
	return m.Animate(s, &varBinding{settings: s, target: target, fn: fn})
}

// Animate creates and starts a tween with a caller-supplied binding
// strategy. If the binding's Capture fails the error is returned and no
// tween is registered.
func (m *Manager) Animate(s *Settings, b Binding) (*Tween, error) {
	t := m.pool.Obtain()
	t.settings = s
	t.binding = b
	m.attach(t)
	if err := t.Start(); err != nil {
		m.detach(t)
		m.pool.Free(t)
		return nil, err
	}
	return t, nil
}

// Len returns the number of tweens in the active set, including paused,
// stopped, and retained-finished ones.
func (m *Manager) Len() int {
	return len(m.active)
}

// Pool returns the manager's tween pool, mainly for tests and diagnostics.
func (m *Manager) Pool() *Pool[*Tween] {
	return &m.pool
}

// attach registers t as active in this manager.
func (m *Manager) attach(t *Tween) {
	t.manager = m
	m.active = append(m.active, t)
}

// detach removes t from the active set and clears its manager reference.
// Safe to call mid-Update; the pass iterates a snapshot.
func (m *Manager) detach(t *Tween) {
	for i, cur := range m.active {
		if cur == t {
			last := len(m.active) - 1
			m.active[i] = m.active[last]
			m.active[last] = nil
			m.active = m.active[:last]
			break
		}
	}
	t.manager = nil
}
