package aspen

// Policy controls what happens to a tween once it reaches its terminal
// progress. It is attached to a [Settings] value and read by the [Manager]
// after each completed cycle.
type Policy uint8

const (
	// Oneshot removes the tween from its manager and recycles it into the
	// pool as soon as it finishes.
	Oneshot Policy = iota
	// Persist leaves the finished tween in the manager, dormant, until it
	// is explicitly restarted or cancelled.
	Persist
	// Backward plays the tween in reverse (progress runs 1 → 0). Finished
	// Backward tweens are retained like Persist.
	Backward
	// Looping rewinds the tween and plays it again as soon as it finishes.
	// The manager drives the restart; the tween is never recycled on its own.
	Looping
	// PingPong loops like Looping but flips direction every cycle, playing
	// forward then backward then forward again.
	PingPong
)

// String returns the policy name for diagnostics.
func (p Policy) String() string {
	switch p {
	case Oneshot:
		return "Oneshot"
	case Persist:
		return "Persist"
	case Backward:
		return "Backward"
	case Looping:
		return "Looping"
	case PingPong:
		return "PingPong"
	default:
		return "Policy(invalid)"
	}
}

// retained reports whether a finished tween with this policy stays in the
// manager instead of being recycled.
func (p Policy) retained() bool {
	return p == Persist || p == Backward
}

// loops reports whether the manager rewinds a finished tween with this
// policy instead of letting it rest.
func (p Policy) loops() bool {
	return p == Looping || p == PingPong
}
