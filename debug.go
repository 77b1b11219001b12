package tween

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-tick timing and active-set metrics.
// Only populated when Engine.debug is true.
type debugStats struct {
	tick      int64
	fixed     bool
	tickTime  time.Duration
	active    int
	advanced  int
	timeScale float64
}

// debugOut is where debug output goes; tests swap it out.
var debugOut io.Writer = os.Stderr

// debugLog prints timing and tween counts to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	kind := "tick"
	if stats.fixed {
		kind = "fixed"
	}
	_, _ = fmt.Fprintf(debugOut,
		"[tween] %s %d: %v | active: %d | advanced: %d | timescale: %.3g\n",
		kind, stats.tick, stats.tickTime, stats.active, stats.advanced, stats.timeScale)
}

// debugMaxActive is the active-set size past which a warning is printed,
// usually a sign of tweens being played every frame and never stopped.
const debugMaxActive = 4096

func debugCheckActiveCount(e *Engine) {
	if len(e.running) == debugMaxActive+1 {
		_, _ = fmt.Fprintf(debugOut, "[tween] warning: %d tweens playing (threshold %d)\n",
			len(e.running), debugMaxActive)
	}
}
