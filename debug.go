package scrollfx

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame dispatch metrics.
// Only logged when the observer is in debug mode.
type debugStats struct {
	evaluated  int
	dispatched int
	stale      int
	frameTime  time.Duration
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed nodes panic and per-frame dispatch stats are logged at debug
// level.
func (o *Observer) SetDebugMode(enabled bool) {
	o.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Observer debug flag so that node
// operations (which lack an Observer pointer) can check it cheaply.
var globalDebug bool

// debugLog writes one frame's stats.
func (o *Observer) debugLog(stats debugStats) {
	if !o.debug {
		return
	}
	o.log.Debug("frame",
		zap.Float64("now", o.now),
		zap.Float64("scrollY", o.viewport.ScrollY),
		zap.Int("bindings", len(o.bindings)),
		zap.Int("evaluated", stats.evaluated),
		zap.Int("dispatched", stats.dispatched),
		zap.Int("stale", stats.stale),
		zap.Duration("frameTime", stats.frameTime))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scrollfx debug: %s on disposed node %q", op, n.Name))
	}
}
