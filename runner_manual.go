package tween

// ManualRunner is a Runner advanced explicitly by the host, typically a test
// or a loop that already measures its own frame time. Each Step fires one
// variable tick and as many fixed ticks as the accumulated time covers.
type ManualRunner struct {
	ObjectRegistry

	events     RunnerEvents
	delta      float64
	timeScale  float64
	ticks      int64
	fixedRate  int
	fixedAccum float64
	started    bool
	killed     bool
}

// NewManualRunner creates a runner with a time scale of 1. A fixedRate of
// zero or less disables fixed ticks.
func NewManualRunner(fixedRate int) *ManualRunner {
	return &ManualRunner{timeScale: 1, fixedRate: fixedRate}
}

func (r *ManualRunner) UnscaledDeltaTime() float64 { return r.delta }
func (r *ManualRunner) TimeScale() float64         { return r.timeScale }
func (r *ManualRunner) ElapsedTickCount() int64    { return r.ticks }
func (r *ManualRunner) SupportsFixedTick() bool    { return r.fixedRate > 0 }
func (r *ManualRunner) FixedTickRate() int         { return r.fixedRate }
func (r *ManualRunner) Events() *RunnerEvents      { return &r.events }

// SetTimeScale sets the multiplier applied to scaled tweens. Negative values
// are treated as zero.
func (r *ManualRunner) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	r.timeScale = scale
}

// Step advances the runner by dt unscaled seconds. The first Step fires
// Start. Does nothing after Kill.
func (r *ManualRunner) Step(dt float64) {
	if r.killed {
		return
	}
	if !r.started {
		r.started = true
		r.events.Start.Invoke(r)
	}
	if dt < 0 {
		dt = 0
	}
	r.delta = dt
	r.ticks++

	if r.fixedRate > 0 {
		step := 1 / float64(r.fixedRate)
		r.fixedAccum += dt
		for r.fixedAccum >= step {
			r.fixedAccum -= step
			r.events.FixedTick.Invoke(r)
		}
	}
	r.events.Tick.Invoke(r)
}

// StepN calls Step n times with the same dt.
func (r *ManualRunner) StepN(n int, dt float64) {
	for i := 0; i < n; i++ {
		r.Step(dt)
	}
}

// Kill fires Exit once and stops accepting steps.
func (r *ManualRunner) Kill() {
	if r.killed {
		return
	}
	r.killed = true
	r.events.Exit.Invoke(r)
}
