// Package ebitenrunner binds the tween engine to an [Ebitengine] game loop.
//
// Call [Runner.Update] once from your game's Update, or let [Run] drive a
// window for you:
//
//	r := ebitenrunner.New(ebitenrunner.Config{})
//	tween.Default().SetRunner(r)
//
//	func (g *Game) Update() error {
//		r.Update()
//		// ...
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenrunner

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/tween"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Config configures a Runner.
type Config struct {
	// FixedTickRate enables fixed ticks at this many per second. Zero disables
	// them; tweens asking for fixed ticks then run on the regular tick.
	FixedTickRate int
	// TimeScale is the initial time scale. Zero means 1.
	TimeScale float64
}

// Runner is a tween.Runner driven by ebiten's Update. Delta time is derived
// from ebiten.TPS, so each Update covers exactly one game tick.
type Runner struct {
	tween.ObjectRegistry

	events     tween.RunnerEvents
	delta      float64
	timeScale  float64
	ticks      int64
	fixedRate  int
	fixedAccum float64
	started    bool
	killed     bool

	scaleTween *gween.Tween
}

// New creates a runner from cfg.
func New(cfg Config) *Runner {
	scale := cfg.TimeScale
	if scale <= 0 {
		scale = 1
	}
	return &Runner{timeScale: scale, fixedRate: cfg.FixedTickRate}
}

func (r *Runner) UnscaledDeltaTime() float64  { return r.delta }
func (r *Runner) TimeScale() float64          { return r.timeScale }
func (r *Runner) ElapsedTickCount() int64     { return r.ticks }
func (r *Runner) SupportsFixedTick() bool     { return r.fixedRate > 0 }
func (r *Runner) FixedTickRate() int          { return r.fixedRate }
func (r *Runner) Events() *tween.RunnerEvents { return &r.events }
func (r *Runner) Killed() bool                { return r.killed }

// SetTimeScale sets the time scale immediately, cancelling any ramp started
// by TweenTimeScale.
func (r *Runner) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	r.scaleTween = nil
	r.timeScale = scale
}

// TweenTimeScale ramps the time scale to the given value over duration
// unscaled seconds, e.g. for slow-motion effects.
func (r *Runner) TweenTimeScale(to float64, duration float32, fn ease.TweenFunc) {
	if to < 0 {
		to = 0
	}
	r.scaleTween = gween.New(float32(r.timeScale), float32(to), duration, fn)
}

// Update advances the runner by one ebiten tick. The first call fires Start.
// Does nothing after Kill.
func (r *Runner) Update() {
	if r.killed {
		return
	}
	if !r.started {
		r.started = true
		r.events.Start.Invoke(r)
	}

	r.delta = tickDelta()
	r.ticks++

	if r.scaleTween != nil {
		v, done := r.scaleTween.Update(float32(r.delta))
		r.timeScale = float64(v)
		if done {
			r.scaleTween = nil
		}
	}

	if r.fixedRate > 0 {
		step := 1 / float64(r.fixedRate)
		r.fixedAccum += r.delta
		for r.fixedAccum >= step {
			r.fixedAccum -= step
			r.events.FixedTick.Invoke(r)
		}
	}
	r.events.Tick.Invoke(r)
}

// Kill fires Exit once. A Game driven by this runner terminates on its next
// Update.
func (r *Runner) Kill() {
	if r.killed {
		return
	}
	r.killed = true
	r.events.Exit.Invoke(r)
}

func tickDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		// SyncWithFPS: one tick per frame.
		if fps := ebiten.ActualFPS(); fps > 0 {
			return 1 / fps
		}
		return 1.0 / ebiten.DefaultTPS
	}
	return 1 / float64(tps)
}
