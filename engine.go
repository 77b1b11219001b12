package tween

import (
	"time"
)

// EventSink is the interface for optional lifecycle forwarding. When set on
// an Engine, every tween event (play, start, pause, repeat, end) of tweens
// registered with that engine is forwarded to the sink.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// LifecycleEvent carries a tween lifecycle transition to an EventSink.
type LifecycleEvent struct {
	Type  EventType
	ID    int
	Tween *Tweenable
}

const defaultRunningCap = 64

// Engine is the registry of playing tweens. It subscribes to one Runner at a
// time and advances every playing tween from the runner's tick callbacks, in
// the order the tweens started playing.
//
// Tweens may stop, pause or play themselves or each other from inside their
// callbacks. Removal during a tick leaves a hole that is compacted once the
// tick finishes, so no other tween is skipped or advanced twice. Tweens
// started during a tick are first advanced on the next tick.
//
// An Engine is not safe for concurrent use; drive it from the goroutine that
// owns the runner.
type Engine struct {
	runner      Runner
	tickHandle  CallbackHandle
	fixedHandle CallbackHandle
	exitHandle  CallbackHandle
	running     []*Tweenable
	iterating   int
	holes       bool
	sink        EventSink
	debug       bool
	ticks       int64
}

// NewEngine creates an engine with no runner bound. Tweens bound to it via
// SetEngine do not advance until SetRunner is called.
func NewEngine() *Engine {
	return &Engine{
		running: make([]*Tweenable, 0, defaultRunningCap),
	}
}

var defaultEngine = NewEngine()

// Default returns the process-wide engine used by tweens that were never
// bound to another engine.
func Default() *Engine {
	return defaultEngine
}

// SetRunner subscribes the engine to r, replacing any previous runner. The
// engine subscribes exactly once per runner; passing the current runner again
// is a no-op. Passing nil detaches the engine. When the runner fires Exit the
// engine detaches itself.
func (e *Engine) SetRunner(r Runner) {
	if e.runner == r {
		return
	}
	e.tickHandle.Remove()
	e.fixedHandle.Remove()
	e.exitHandle.Remove()
	e.tickHandle = CallbackHandle{}
	e.fixedHandle = CallbackHandle{}
	e.exitHandle = CallbackHandle{}

	e.runner = r
	if r == nil {
		return
	}
	ev := r.Events()
	e.tickHandle = ev.Tick.Add(func(r Runner) { e.advance(r, false) })
	if r.SupportsFixedTick() {
		e.fixedHandle = ev.FixedTick.Add(func(r Runner) { e.advance(r, true) })
	}
	e.exitHandle = ev.Exit.Add(func(Runner) { e.SetRunner(nil) })
}

// Runner returns the bound runner, or nil.
func (e *Engine) Runner() Runner {
	return e.runner
}

// SetEventSink sets the optional lifecycle bridge.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick timing
// and active-set stats are logged to stderr along with size warnings.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// ObjectID maps obj to a correlation ID through the bound runner, or through
// IdentityID when no runner is bound.
func (e *Engine) ObjectID(obj any) int {
	if e.runner == nil {
		return IdentityID(obj)
	}
	return e.runner.ObjectID(obj)
}

// Len returns the number of playing tweens.
func (e *Engine) Len() int {
	n := 0
	for _, tw := range e.running {
		if tw != nil {
			n++
		}
	}
	return n
}

// Running returns a snapshot of the playing tweens in advance order.
func (e *Engine) Running() []*Tweenable {
	out := make([]*Tweenable, 0, len(e.running))
	for _, tw := range e.running {
		if tw != nil {
			out = append(out, tw)
		}
	}
	return out
}

// Contains reports whether tw is registered with e.
func (e *Engine) Contains(tw *Tweenable) bool {
	return tw != nil && tw.slot > 0 && tw.slot <= len(e.running) && e.running[tw.slot-1] == tw
}

// StopAll stops every playing tween.
func (e *Engine) StopAll() {
	for _, tw := range e.Running() {
		tw.Stop()
	}
}

// PauseAll pauses every playing tween.
func (e *Engine) PauseAll() {
	for _, tw := range e.Running() {
		tw.Pause()
	}
}

// StopByID stops every playing tween whose ID equals id and returns how many
// were stopped.
func (e *Engine) StopByID(id int) int {
	n := 0
	for _, tw := range e.Running() {
		if tw.id == id {
			tw.Stop()
			n++
		}
	}
	return n
}

// StopByObject stops every playing tween correlated with obj.
func (e *Engine) StopByObject(obj any) int {
	return e.StopByID(e.ObjectID(obj))
}

// add registers tw. A tween already registered is left in place.
func (e *Engine) add(tw *Tweenable) {
	if e.Contains(tw) {
		return
	}
	e.running = append(e.running, tw)
	tw.slot = len(e.running)
	if e.debug {
		debugCheckActiveCount(e)
	}
}

// remove unregisters tw. During a tick the slot is cleared and compacted
// after the tick; otherwise the slice is compacted immediately.
func (e *Engine) remove(tw *Tweenable) {
	if !e.Contains(tw) {
		return
	}
	e.running[tw.slot-1] = nil
	tw.slot = 0
	if e.iterating > 0 {
		e.holes = true
		return
	}
	e.compact()
}

func (e *Engine) compact() {
	n := 0
	for _, tw := range e.running {
		if tw == nil {
			continue
		}
		e.running[n] = tw
		n++
		tw.slot = n
	}
	clear(e.running[n:])
	e.running = e.running[:n]
	e.holes = false
}

// advance ticks every registered tween whose tick type matches fixed.
// Tweens that asked for fixed ticks run on the variable tick when the runner
// has no fixed tick.
func (e *Engine) advance(r Runner, fixed bool) {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	unscaled := r.UnscaledDeltaTime()
	if fixed {
		if rate := r.FixedTickRate(); rate > 0 {
			unscaled = 1 / float64(rate)
		}
	}
	scale := r.TimeScale()
	supportsFixed := r.SupportsFixedTick()

	e.iterating++
	advanced := 0
	n := len(e.running)
	for i := 0; i < n; i++ {
		tw := e.running[i]
		if tw == nil {
			continue
		}
		if (tw.startTickType == TickFixed && supportsFixed) != fixed {
			continue
		}
		dt := unscaled
		if !tw.ignoreTimeScale {
			dt *= scale
		}
		tw.tick(dt)
		advanced++
	}
	e.iterating--

	if e.iterating == 0 && e.holes {
		e.compact()
	}

	if e.debug {
		e.ticks++
		e.debugLog(debugStats{
			tick:      e.ticks,
			fixed:     fixed,
			tickTime:  time.Since(t0),
			active:    len(e.running),
			advanced:  advanced,
			timeScale: scale,
		})
	}
}
