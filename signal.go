package aspen

// Signal dispatches a value to any number of listeners. Use it to fan one
// tween lifecycle event out to several subscribers, or to chain tweens
// (add an AddOnce listener that starts the next one).
//
// Listeners added or cleared during a dispatch take effect on the next
// dispatch; the running dispatch iterates a snapshot. Signals are not safe
// for concurrent use.
type Signal[T any] struct {
	handlers []func(T)
	once     []func(T)
	scratch  []func(T)
}

// Add registers a listener invoked on every Dispatch. Nil is ignored.
func (s *Signal[T]) Add(fn func(T)) {
	if fn != nil {
		s.handlers = append(s.handlers, fn)
	}
}

// AddOnce registers a listener invoked on the next Dispatch only, after
// which it is removed. Nil is ignored.
func (s *Signal[T]) AddOnce(fn func(T)) {
	if fn != nil {
		s.once = append(s.once, fn)
	}
}

// Clear removes all listeners.
func (s *Signal[T]) Clear() {
	s.handlers = s.handlers[:0]
	s.once = s.once[:0]
}

// Len returns the number of registered listeners, once-listeners included.
func (s *Signal[T]) Len() int {
	return len(s.handlers) + len(s.once)
}

// Dispatch invokes every listener with v. Persistent listeners run first
// in registration order, then once-listeners, which are removed before
// they run so a listener re-adding itself survives to the next dispatch.
func (s *Signal[T]) Dispatch(v T) {
	s.scratch = append(s.scratch[:0], s.handlers...)
	for _, fn := range s.scratch {
		fn(v)
	}

	if len(s.once) == 0 {
		return
	}
	s.scratch = append(s.scratch[:0], s.once...)
	s.once = s.once[:0]
	for _, fn := range s.scratch {
		fn(v)
	}
}
