package aspen

// Poolable is implemented by values that can be recycled through a [Pool].
// Reset must return the value to its blank state; the pool calls it on
// every release.
type Poolable interface {
	Reset()
}

// Pool is a reuse pool for Poolable values. Obtain hands exclusive
// ownership of a value to the caller; Free takes it back, resets it, and
// stores it for reuse. The pool never shrinks.
//
// Pools are not safe for concurrent use.
type Pool[T Poolable] struct {
	// New produces a blank value when the pool is empty. Must be non-nil
	// before the first Obtain.
	New func() T

	free []T
}

// Obtain returns a pooled value, or a freshly made one when the pool is
// empty. The caller owns the value exclusively until it is passed back to
// Free.
func (p *Pool[T]) Obtain() T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		return v
	}
	return p.New()
}

// Free resets v and returns it to the pool. The caller must not use v
// afterward.
func (p *Pool[T]) Free(v T) {
	v.Reset()
	p.free = append(p.free, v)
}

// Len returns the number of values currently held for reuse.
func (p *Pool[T]) Len() int {
	return len(p.free)
}
