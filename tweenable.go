package tween

// evaluator is implemented by the typed context that owns a Tweenable. The
// state machine decides when and at what progress to evaluate; the evaluator
// decides what that means for its value type.
type evaluator interface {
	valid() bool
	evaluate(t float64)
	switchTargets()
	beforePlay()
}

// Tweenable is the timing state machine shared by every typed Context. It
// tracks duration, delay, loops, speed and easing, fires lifecycle events and
// decides the normalized progress handed to the context on each tick.
//
// Lifecycle methods (Play, Pause, Stop, Reset) silently do nothing while
// IsValid reports false. Configuration setters always apply.
//
// A Tweenable is driven by exactly one owner; none of its methods are safe
// for concurrent use.
type Tweenable struct {
	// Events fire synchronously from Play, Pause, Stop and the engine tick.
	OnPlay   Event[*Tweenable]
	OnStart  Event[*Tweenable]
	OnTick   Event[*Tweenable]
	OnPause  Event[*Tweenable]
	OnRepeat Event[*Tweenable]
	OnEnd    Event[*Tweenable]

	// TickCondition, when set, is consulted before every tick.
	TickCondition func(tw *Tweenable) TickSuspend

	duration        float64
	delay           float64
	loopCount       int
	loopType        LoopType
	waitDelayOnLoop bool
	ease            EaseKind
	easeFunc        EaseFunc
	curve           *Curve
	useCurve        bool
	clampEasing     bool
	speed           float64
	relative        bool
	tickType        TickType
	ignoreTimeScale bool
	id              int
	idObject        any

	// Snapshot taken by Play; the run loop reads these, not the fields above.
	startDuration  float64
	startDelay     float64
	startLoopCount int
	startTickType  TickType

	// Elapsed values are seconds; fractions are derived on read.
	delayWaited    float64
	elapsed        float64
	remainingLoops int
	playing        bool
	paused         bool
	started        bool
	playedOnce     bool
	switched       bool

	engine *Engine
	slot   int // 1-based index in engine.running, 0 when not registered
	impl   evaluator
}

func (tw *Tweenable) init(impl evaluator) {
	tw.impl = impl
	tw.speed = 1
}

// --- Lifecycle ---

// Play starts the tween, or resumes it when paused. Playing an already
// playing tween stops it first and starts over.
func (tw *Tweenable) Play() {
	if !tw.IsValid() {
		return
	}
	if tw.playing {
		tw.Stop()
		// OnEnd already restarted it.
		if tw.playing {
			return
		}
	}

	resume := tw.paused
	tw.paused = false
	if !resume {
		tw.Reset()
		tw.startDuration = tw.duration
		tw.startDelay = tw.delay
		tw.startLoopCount = tw.loopCount
		tw.startTickType = tw.tickType
		tw.remainingLoops = tw.loopCount
		tw.started = false
		// A resumed tween keeps its resolved targets, which may be switched.
		tw.impl.beforePlay()
	}

	tw.playing = true
	tw.playedOnce = true
	tw.Engine().add(tw)
	tw.OnPlay.Invoke(tw)
	tw.emit(EventPlay)

	if !resume && tw.playing && tw.isInstant() {
		tw.runInstant()
	}
}

// Pause halts a playing tween without resetting its progress. Call Play to
// resume.
func (tw *Tweenable) Pause() {
	if !tw.IsValid() || !tw.playing {
		return
	}
	tw.playing = false
	tw.paused = true
	tw.Engine().remove(tw)
	tw.OnPause.Invoke(tw)
	tw.emit(EventPause)
}

// Stop ends a playing or paused tween, fires OnEnd and resets its progress.
// Stopping an idle tween does nothing. A tween that became invalid while
// playing is unregistered without firing OnEnd.
func (tw *Tweenable) Stop() {
	if !tw.playing && !tw.paused {
		return
	}
	if !tw.IsValid() {
		tw.drop()
		return
	}
	tw.playing = false
	tw.paused = false
	tw.Engine().remove(tw)
	tw.OnEnd.Invoke(tw)
	tw.emit(EventEnd)

	// OnEnd may have restarted the tween.
	if !tw.playing && !tw.paused {
		tw.Reset()
	}
}

// drop unregisters the tween without events or touching its values.
func (tw *Tweenable) drop() {
	tw.playing = false
	tw.paused = false
	tw.Engine().remove(tw)
}

// Reset zeroes the delay and duration progress and restores the original
// target orientation. RemainingLoops is restored only while not playing.
func (tw *Tweenable) Reset() {
	if !tw.IsValid() {
		return
	}
	tw.delayWaited = 0
	tw.elapsed = 0
	if !tw.playing {
		tw.remainingLoops = tw.loopCount
	}
	tw.setTargetValuesSwitched(false)
}

// --- Tick ---

// tick advances the tween by dt seconds, already scaled by the runner's time
// scale where applicable. Called by the engine only.
func (tw *Tweenable) tick(dt float64) {
	if !tw.IsValid() {
		tw.drop()
		return
	}
	if tw.TickCondition != nil {
		switch tw.TickCondition(tw) {
		case TickSkip:
			return
		case TickPause:
			tw.Pause()
			return
		case TickStop:
			tw.Stop()
			return
		}
	}

	dt *= tw.speed
	if !tw.delayDone() {
		tw.delayWaited += dt
		if tw.delayWaited < tw.startDelay {
			return
		}
		dt = tw.delayWaited - tw.startDelay
		tw.delayWaited = tw.startDelay
	}

	if !tw.started {
		tw.started = true
		tw.OnStart.Invoke(tw)
		tw.emit(EventStart)
		if !tw.playing {
			return
		}
	}

	tw.elapsed += dt
	if tw.elapsed > tw.startDuration {
		tw.elapsed = tw.startDuration
	}
	tw.impl.evaluate(tw.progress())
	tw.OnTick.Invoke(tw)
	if !tw.playing {
		return
	}

	if tw.elapsed >= tw.startDuration {
		tw.completeLoop()
	}
}

func (tw *Tweenable) completeLoop() {
	if tw.remainingLoops == 0 {
		tw.Stop()
		return
	}
	if tw.remainingLoops > 0 {
		tw.remainingLoops--
	}
	tw.elapsed = 0
	if tw.waitDelayOnLoop {
		tw.delayWaited = 0
	}
	if tw.loopType == LoopYoyo {
		tw.setTargetValuesSwitched(!tw.switched)
	}
	tw.OnRepeat.Invoke(tw)
	tw.emit(EventRepeat)
}

func (tw *Tweenable) isInstant() bool {
	return tw.startDuration <= 0 && tw.startDelay <= DelayEpsilon
}

// runInstant applies the end value immediately and stops. Loops are ignored:
// a zero-length run has nothing to repeat.
func (tw *Tweenable) runInstant() {
	tw.started = true
	tw.OnStart.Invoke(tw)
	tw.emit(EventStart)
	if !tw.playing {
		return
	}
	tw.impl.evaluate(1)
	tw.OnTick.Invoke(tw)
	tw.Stop()
}

func (tw *Tweenable) delayDone() bool {
	return tw.startDelay <= DelayEpsilon || tw.delayWaited >= tw.startDelay
}

func (tw *Tweenable) progress() float64 {
	if tw.startDuration <= 0 {
		return 1
	}
	p := tw.elapsed / tw.startDuration
	if p > 1 {
		return 1
	}
	return p
}

func (tw *Tweenable) setTargetValuesSwitched(v bool) {
	if tw.switched == v {
		return
	}
	tw.switched = v
	tw.impl.switchTargets()
}

func (tw *Tweenable) emit(t EventType) {
	e := tw.Engine()
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(LifecycleEvent{Type: t, ID: tw.id, Tween: tw})
}

// EvaluateEasing maps normalized progress t through the configured curve or
// ease function, clamping to [0, 1] when clamp easing is enabled.
func (tw *Tweenable) EvaluateEasing(t float64) float64 {
	var v float64
	switch {
	case tw.useCurve && tw.curve != nil:
		v = tw.curve.Evaluate(t)
	case tw.easeFunc != nil:
		v = tw.easeFunc(t)
	default:
		v = tw.ease.Apply(t)
	}
	if tw.clampEasing {
		v = clamp01(v)
	}
	return v
}

// --- State ---

// IsValid reports whether the owning context has everything it needs to
// play: getter, setter, lerp and add functions, and non-nil endpoints for
// nilable value types.
func (tw *Tweenable) IsValid() bool {
	return tw.impl != nil && tw.impl.valid()
}

// IsPlaying reports whether the tween is registered and advancing.
func (tw *Tweenable) IsPlaying() bool { return tw.playing }

// IsPaused reports whether the tween was paused and not yet resumed or stopped.
func (tw *Tweenable) IsPaused() bool { return tw.paused }

// HasPlayedOnce reports whether Play has ever succeeded.
func (tw *Tweenable) HasPlayedOnce() bool { return tw.playedOnce }

// IsTargetValuesSwitched reports whether start and end are currently swapped
// by a yoyo loop.
func (tw *Tweenable) IsTargetValuesSwitched() bool { return tw.switched }

// DelayElapsed returns how much of the delay has been waited, in [0, 1].
// With no delay it reports 1.
func (tw *Tweenable) DelayElapsed() float64 {
	d := tw.startDelay
	if !tw.playing && !tw.paused {
		d = tw.delay
	}
	if d <= DelayEpsilon {
		return 1
	}
	if tw.delayWaited >= d {
		return 1
	}
	return tw.delayWaited / d
}

// CurrentElapsed returns the progress of the current loop, in [0, 1].
func (tw *Tweenable) CurrentElapsed() float64 {
	if tw.startDuration <= 0 {
		if tw.started && (tw.playing || tw.paused) {
			return 1
		}
		return 0
	}
	return tw.progress()
}

// RemainingLoops returns the loops left in the current run. Negative means
// infinite.
func (tw *Tweenable) RemainingLoops() int { return tw.remainingLoops }

// ID returns the correlation ID used for group cancellation.
func (tw *Tweenable) ID() int { return tw.id }

// IDObject returns the object the ID was derived from, if any.
func (tw *Tweenable) IDObject() any { return tw.idObject }

func (tw *Tweenable) Duration() float64        { return tw.duration }
func (tw *Tweenable) Delay() float64           { return tw.delay }
func (tw *Tweenable) LoopCount() int           { return tw.loopCount }
func (tw *Tweenable) LoopType() LoopType       { return tw.loopType }
func (tw *Tweenable) WaitDelayOnLoop() bool    { return tw.waitDelayOnLoop }
func (tw *Tweenable) Ease() EaseKind           { return tw.ease }
func (tw *Tweenable) Curve() *Curve            { return tw.curve }
func (tw *Tweenable) UseCurve() bool           { return tw.useCurve }
func (tw *Tweenable) ClampEasing() bool        { return tw.clampEasing }
func (tw *Tweenable) Speed() float64           { return tw.speed }
func (tw *Tweenable) IsEndValueRelative() bool { return tw.relative }
func (tw *Tweenable) TickType() TickType       { return tw.tickType }
func (tw *Tweenable) IgnoreTimeScale() bool    { return tw.ignoreTimeScale }

// Engine returns the engine the tween registers with while playing.
func (tw *Tweenable) Engine() *Engine {
	if tw.engine == nil {
		return Default()
	}
	return tw.engine
}

// --- Configuration ---

// SetDuration sets the loop duration in seconds. Negative values are treated
// as zero. Takes effect on the next Play.
func (tw *Tweenable) SetDuration(seconds float64) *Tweenable {
	if seconds < 0 {
		seconds = 0
	}
	tw.duration = seconds
	return tw
}

// SetDelay sets the delay before the first tick is applied. Values at or
// below DelayEpsilon mean no delay. While the delay is still being waited the
// change applies live: the seconds already waited are kept, clamped to the
// new delay.
func (tw *Tweenable) SetDelay(seconds float64) *Tweenable {
	if seconds <= DelayEpsilon {
		seconds = 0
	}
	tw.delay = seconds
	if (tw.playing || tw.paused) && !tw.delayDone() {
		tw.startDelay = seconds
		if tw.delayWaited > seconds {
			tw.delayWaited = seconds
		}
	}
	return tw
}

// SetLoopCount sets how many times the tween repeats: 0 for none, negative
// for infinite. Takes effect on the next Play.
func (tw *Tweenable) SetLoopCount(n int) *Tweenable {
	if n < -1 {
		n = -1
	}
	tw.loopCount = n
	if !tw.playing && !tw.paused {
		tw.remainingLoops = n
	}
	return tw
}

// SetLoopType selects yoyo or reset looping. Applies live.
func (tw *Tweenable) SetLoopType(t LoopType) *Tweenable {
	tw.loopType = t
	return tw
}

// SetWaitDelayOnLoop makes every repeat wait the delay again. Applies live.
func (tw *Tweenable) SetWaitDelayOnLoop(wait bool) *Tweenable {
	tw.waitDelayOnLoop = wait
	return tw
}

// SetEase selects a built-in ease and disables the curve. Applies live.
func (tw *Tweenable) SetEase(kind EaseKind) *Tweenable {
	tw.ease = kind
	tw.easeFunc = nil
	tw.useCurve = false
	return tw
}

// SetEaseFunc installs a custom ease function and disables the curve.
// Applies live. A nil fn restores the built-in ease.
func (tw *Tweenable) SetEaseFunc(fn EaseFunc) *Tweenable {
	tw.easeFunc = fn
	tw.useCurve = false
	return tw
}

// SetEaseCurve installs c and enables curve easing. Applies live.
func (tw *Tweenable) SetEaseCurve(c *Curve) *Tweenable {
	tw.curve = c
	tw.useCurve = c != nil
	return tw
}

// SetUseCurve toggles between the curve and the ease function.
func (tw *Tweenable) SetUseCurve(use bool) *Tweenable {
	tw.useCurve = use
	return tw
}

// SetClampEasing clamps eased progress to [0, 1], cutting off overshoot from
// elastic and back eases. Applies live.
func (tw *Tweenable) SetClampEasing(clamp bool) *Tweenable {
	tw.clampEasing = clamp
	return tw
}

// SetSpeed multiplies elapsed time. Zero freezes progress without stopping;
// negative values are floored to zero. Applies live.
func (tw *Tweenable) SetSpeed(speed float64) *Tweenable {
	if speed < 0 {
		speed = 0
	}
	tw.speed = speed
	return tw
}

// SetTickType selects variable or fixed ticking. Takes effect on the next Play.
func (tw *Tweenable) SetTickType(t TickType) *Tweenable {
	tw.tickType = t
	return tw
}

// SetIgnoreTimeScale makes the tween advance by unscaled runner time.
// Applies live.
func (tw *Tweenable) SetIgnoreTimeScale(ignore bool) *Tweenable {
	tw.ignoreTimeScale = ignore
	return tw
}

// SetID sets the correlation ID directly and clears any ID object.
func (tw *Tweenable) SetID(id int) *Tweenable {
	tw.id = id
	tw.idObject = nil
	return tw
}

// SetIDObject derives the correlation ID from obj through the engine's
// runner, falling back to IdentityID when no runner is bound.
func (tw *Tweenable) SetIDObject(obj any) *Tweenable {
	tw.idObject = obj
	tw.id = tw.Engine().ObjectID(obj)
	return tw
}

// SetEngine binds the tween to e instead of the default engine. Ignored
// while the tween is playing or paused.
func (tw *Tweenable) SetEngine(e *Engine) *Tweenable {
	if tw.playing || tw.paused {
		return tw
	}
	tw.engine = e
	return tw
}
