package tween

import (
	"context"
	"sync"
	"time"
)

// TickerRunner is a wall-clock Runner for headless hosts. Run blocks, firing
// Tick at the configured frame rate on the calling goroutine until the
// context is cancelled or Kill is called. Fixed ticks fire at FixedTickRate
// from the same loop, catching up when frames run long.
type TickerRunner struct {
	ObjectRegistry

	events     RunnerEvents
	frameRate  int
	fixedRate  int
	timeScale  float64
	delta      float64
	ticks      int64
	fixedAccum float64
	kill       chan struct{}
	killOnce   sync.Once
	now        func() time.Time
}

// NewTickerRunner creates a runner ticking frameRate times per second.
// fixedRate of zero or less disables fixed ticks.
func NewTickerRunner(frameRate, fixedRate int) *TickerRunner {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &TickerRunner{
		frameRate: frameRate,
		fixedRate: fixedRate,
		timeScale: 1,
		kill:      make(chan struct{}),
		now:       time.Now,
	}
}

func (r *TickerRunner) UnscaledDeltaTime() float64 { return r.delta }
func (r *TickerRunner) TimeScale() float64         { return r.timeScale }
func (r *TickerRunner) ElapsedTickCount() int64    { return r.ticks }
func (r *TickerRunner) SupportsFixedTick() bool    { return r.fixedRate > 0 }
func (r *TickerRunner) FixedTickRate() int         { return r.fixedRate }
func (r *TickerRunner) Events() *RunnerEvents      { return &r.events }

// SetTimeScale sets the multiplier applied to scaled tweens. Call it from a
// tick callback; the runner is not safe for concurrent use.
func (r *TickerRunner) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	r.timeScale = scale
}

// Run fires Start, then ticks until ctx is done or Kill is called, then
// fires Exit. The returned error is ctx.Err() when the context ended the run.
func (r *TickerRunner) Run(ctx context.Context) error {
	if r.killed() {
		return nil
	}
	r.events.Start.Invoke(r)

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()

	last := r.now()
	for {
		select {
		case <-ctx.Done():
			r.exit()
			return ctx.Err()
		case <-r.kill:
			r.exit()
			return nil
		case <-ticker.C:
			// Kill from inside a tick callback wins over a pending tick.
			if r.killed() {
				r.exit()
				return nil
			}
			now := r.now()
			r.step(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (r *TickerRunner) step(dt float64) {
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

// Kill ends Run. It is the one method safe to call from another goroutine;
// calling it more than once is a no-op.
func (r *TickerRunner) Kill() {
	r.killOnce.Do(func() { close(r.kill) })
}

func (r *TickerRunner) killed() bool {
	select {
	case <-r.kill:
		return true
	default:
		return false
	}
}

func (r *TickerRunner) exit() {
	r.events.Exit.Invoke(r)
}
