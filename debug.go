package aspen

import (
	"fmt"
	"io"
	"os"
)

// debugMode enables extra invariant checks and stderr warnings. Off by
// default; flip it with SetDebug during development.
var debugMode bool

// debugOut is where warnings go. Swapped out by tests.
var debugOut io.Writer = os.Stderr

func debugOutDefault() io.Writer { return os.Stderr }

// SetDebug toggles debug mode. In debug mode the engine panics on hard API
// misuse (starting a tween with no settings) and warns on stderr when the
// active set grows suspiciously large, which usually means finished tweens
// are being leaked with the Persist policy.
func SetDebug(enabled bool) {
	debugMode = enabled
}

// debugCheckSettings panics when op is attempted on a tween with no
// settings. Release mode treats this as a silent no-op instead.
func debugCheckSettings(t *Tween, op string) {
	if t.settings == nil {
		panic(fmt.Sprintf("aspen debug: %s on tween with nil settings", op))
	}
}

// debugMaxActive is the active-set size above which the manager warns.
const debugMaxActive = 100_000

func debugCheckActiveCount(m *Manager) {
	if !debugMode {
		return
	}
	if n := len(m.active); n > debugMaxActive {
		_, _ = fmt.Fprintf(debugOut,
			"[aspen] warning: %d active tweens exceeds %d; check for leaked Persist tweens\n",
			n, debugMaxActive)
	}
}

// debugLogRecycle reports pool churn per update pass when debug mode is on.
func debugLogRecycle(m *Manager, recycled int) {
	if !debugMode || recycled == 0 {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[aspen] recycled %d tweens | active: %d | pooled: %d\n",
		recycled, len(m.active), m.pool.Len())
}
