package tween

import (
	"errors"
	"math"
	"testing"
)

// newTestEngine returns an isolated engine bound to a manual runner without
// fixed ticks.
func newTestEngine() (*Engine, *ManualRunner) {
	e := NewEngine()
	r := NewManualRunner(0)
	e.SetRunner(r)
	return e, r
}

// newTestFloat creates a float context over *v bound to e.
func newTestFloat(e *Engine, v *float64) *Context[float64] {
	return NewFloat(func() float64 { return *v }, func(x float64) { *v = x }).SetEngine(e)
}

func TestProgressIsMonotonic(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)

	var seen []float64
	c.OnTick.Add(func(tw *Tweenable) { seen = append(seen, tw.CurrentElapsed()) })
	c.Play()

	// Exact binary fractions avoid accumulation drift.
	r.StepN(10, 0.125)

	if len(seen) != 8 {
		t.Fatalf("ticks = %d, want 8", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Fatalf("progress decreased at tick %d: %v", i, seen)
		}
	}
	if seen[len(seen)-1] != 1 {
		t.Errorf("final progress = %f, want 1", seen[len(seen)-1])
	}
	if c.IsPlaying() {
		t.Error("tween should have stopped after its duration")
	}
}

func TestDelayBeforeDuration(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(0.5).SetDelay(0.5)

	starts, ticks := 0, 0
	c.OnStart.Add(func(tw *Tweenable) {
		starts++
		if tw.DelayElapsed() != 1 {
			t.Errorf("OnStart with DelayElapsed = %f", tw.DelayElapsed())
		}
	})
	c.OnTick.Add(func(tw *Tweenable) {
		ticks++
		if tw.DelayElapsed() < 1 {
			t.Errorf("OnTick with DelayElapsed = %f", tw.DelayElapsed())
		}
	})
	c.Play()

	r.StepN(3, 0.125)
	if starts != 0 || ticks != 0 {
		t.Fatalf("fired during delay: starts=%d ticks=%d", starts, ticks)
	}
	if math.Abs(c.DelayElapsed()-0.75) > 1e-9 {
		t.Errorf("DelayElapsed = %f, want 0.75", c.DelayElapsed())
	}

	r.StepN(8, 0.125)
	if starts != 1 {
		t.Errorf("OnStart fired %d times, want 1", starts)
	}
	if ticks == 0 {
		t.Error("OnTick never fired")
	}
	if v != 1 {
		t.Errorf("value = %f, want 1", v)
	}
}

func TestYoyoSymmetry(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).
		SetEndValue(10, false).
		SetDuration(1).
		SetLoopCount(1).
		SetLoopType(LoopYoyo)

	var values []float64
	c.OnTick.Add(func(*Tweenable) { values = append(values, v) })
	c.Play()
	r.StepN(8, 0.25)

	want := []float64{2.5, 5, 7.5, 10, 7.5, 5, 2.5, 0}
	if len(values) != len(want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-9 {
			t.Errorf("tick %d: value = %f, want %f", i, values[i], want[i])
		}
	}
	if c.IsTargetValuesSwitched() {
		t.Error("targets should be restored after stop")
	}
	if c.StartValue() != 0 || c.EndValue() != 10 {
		t.Errorf("start/end = %f/%f, want 0/10", c.StartValue(), c.EndValue())
	}
}

func TestYoyoSwitchEvaluatesMirrored(t *testing.T) {
	v := 0.0
	c := newTestFloat(NewEngine(), &v).SetEndValue(8, false)

	c.EvaluateTween(0.25)
	forward := v

	c.setTargetValuesSwitched(true)
	c.EvaluateTween(0.75)
	if v != forward {
		t.Errorf("switched value at 0.75 = %f, want %f", v, forward)
	}
}

func TestRelativeEndRecompute(t *testing.T) {
	base := 10.0
	var out float64
	c := NewFloat(func() float64 { return base }, func(x float64) { out = x }).
		SetEngine(NewEngine()).
		SetEndValue(5, true).
		SetDuration(1)

	c.Play()
	if c.AbsoluteEndValue() != 15 {
		t.Fatalf("AbsoluteEndValue after Play = %f, want 15", c.AbsoluteEndValue())
	}

	c.SetStartValueTo(3)
	if c.AbsoluteEndValue() != 8 {
		t.Fatalf("AbsoluteEndValue after SetStartValueTo = %f, want 8", c.AbsoluteEndValue())
	}

	c.SetStartValue()
	if c.AbsoluteEndValue() != 15 {
		t.Errorf("AbsoluteEndValue after SetStartValue = %f, want 15", c.AbsoluteEndValue())
	}

	base = 20
	c.SetStartValue()
	if c.AbsoluteEndValue() != 25 {
		t.Errorf("AbsoluteEndValue with new base = %f, want 25", c.AbsoluteEndValue())
	}
	_ = out
}

func TestRelativeYoyoKeepsOffset(t *testing.T) {
	e, r := newTestEngine()
	v := 10.0
	c := newTestFloat(e, &v).
		SetEndValue(5, true).
		SetDuration(0.5).
		SetLoopCount(1).
		SetLoopType(LoopYoyo)
	c.Play()

	r.Step(0.5)
	if !c.IsTargetValuesSwitched() {
		t.Fatal("expected switched targets after first loop")
	}
	if c.StartValue() != 15 || c.AbsoluteEndValue() != 10 || c.EndValue() != 5 {
		t.Errorf("switched start/abs/end = %f/%f/%f, want 15/10/5",
			c.StartValue(), c.AbsoluteEndValue(), c.EndValue())
	}

	r.Step(0.5)
	if v != 10 {
		t.Errorf("value after yoyo = %f, want 10", v)
	}
}

func TestRelativeYoyoPauseResume(t *testing.T) {
	e, r := newTestEngine()
	v := 10.0
	c := newTestFloat(e, &v).
		SetEndValue(5, true).
		SetDuration(1).
		SetLoopCount(1).
		SetLoopType(LoopYoyo)
	c.Play()

	r.Step(1)
	r.Step(0.5)
	if math.Abs(v-12.5) > 1e-9 {
		t.Fatalf("value halfway back = %f, want 12.5", v)
	}

	c.Pause()
	c.Play()
	if !c.IsTargetValuesSwitched() {
		t.Error("resume should keep the switched orientation")
	}
	if c.StartValue() != 15 || c.AbsoluteEndValue() != 10 {
		t.Errorf("resumed start/abs = %f/%f, want 15/10", c.StartValue(), c.AbsoluteEndValue())
	}

	r.Step(0.5)
	if v != 10 {
		t.Errorf("value after resumed yoyo = %f, want 10", v)
	}
	if c.IsPlaying() {
		t.Error("tween should have finished")
	}
	if c.StartValue() != 10 || c.AbsoluteEndValue() != 15 {
		t.Errorf("stopped start/abs = %f/%f, want 10/15", c.StartValue(), c.AbsoluteEndValue())
	}
}

func TestRelativeYoyoReconfigureWhileSwitched(t *testing.T) {
	cases := []struct {
		name    string
		apply   func(c *Context[float64])
		halfway float64
		absEnd  float64
	}{
		{"SetIsEndRelative", func(c *Context[float64]) { c.SetIsEndRelative(true) }, 12.5, 15},
		{"SetEndValue", func(c *Context[float64]) { c.SetEndValue(3, true) }, 11.5, 13},
		{"SetStartValueTo", func(c *Context[float64]) { c.SetStartValueTo(10) }, 12.5, 15},
		{"SetAdd", func(c *Context[float64]) { c.SetAdd(AddNumber[float64]) }, 12.5, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, r := newTestEngine()
			v := 10.0
			c := newTestFloat(e, &v).
				SetEndValue(5, true).
				SetDuration(1).
				SetLoopCount(1).
				SetLoopType(LoopYoyo)
			c.Play()
			r.Step(1)
			if !c.IsTargetValuesSwitched() {
				t.Fatal("expected switched targets after first loop")
			}

			tc.apply(c)
			if !c.IsTargetValuesSwitched() {
				t.Error("reconfiguring should keep the switched orientation")
			}
			if c.AbsoluteEndValue() != 10 {
				t.Errorf("switched AbsoluteEndValue = %f, want origin 10", c.AbsoluteEndValue())
			}

			r.Step(0.5)
			if math.Abs(v-tc.halfway) > 1e-9 {
				t.Errorf("value halfway back = %f, want %f", v, tc.halfway)
			}
			r.Step(0.5)
			if v != 10 {
				t.Errorf("value after yoyo = %f, want 10", v)
			}
			if c.StartValue() != 10 || c.AbsoluteEndValue() != tc.absEnd {
				t.Errorf("stopped start/abs = %f/%f, want 10/%f",
					c.StartValue(), c.AbsoluteEndValue(), tc.absEnd)
			}
		})
	}
}

func TestStopTwiceIsIdempotent(t *testing.T) {
	e, _ := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)

	ends := 0
	c.OnEnd.Add(func(*Tweenable) { ends++ })
	c.Play()
	c.Stop()
	c.Stop()

	if ends != 1 {
		t.Errorf("OnEnd fired %d times, want 1", ends)
	}
	if c.IsPlaying() || c.IsPaused() {
		t.Error("tween should be idle")
	}
	if e.Len() != 0 {
		t.Errorf("engine has %d tweens, want 0", e.Len())
	}
}

func TestDelayChangePreservesWaitedTime(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1).SetDelay(10)

	starts := 0
	c.OnStart.Add(func(*Tweenable) { starts++ })
	c.Play()
	r.StepN(5, 1)

	if math.Abs(c.DelayElapsed()-0.5) > 1e-9 {
		t.Fatalf("DelayElapsed = %f, want 0.5", c.DelayElapsed())
	}

	c.SetDelay(2)
	if c.DelayElapsed() != 1 {
		t.Fatalf("DelayElapsed after shortening = %f, want 1", c.DelayElapsed())
	}
	if starts != 0 {
		t.Fatal("OnStart fired before the next tick")
	}

	r.Step(0.1)
	if starts != 1 {
		t.Errorf("OnStart fired %d times, want 1", starts)
	}
}

func TestDelayChangeLengthens(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1).SetDelay(2)
	c.Play()
	r.Step(1)

	c.SetDelay(4)
	if math.Abs(c.DelayElapsed()-0.25) > 1e-9 {
		t.Errorf("DelayElapsed = %f, want 0.25", c.DelayElapsed())
	}

	c.SetDelay(0)
	if c.DelayElapsed() != 1 {
		t.Errorf("DelayElapsed with no delay = %f, want 1", c.DelayElapsed())
	}
}

func TestLoopExhaustion(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(0.5).SetLoopCount(2)

	repeats, ends := 0, 0
	c.OnRepeat.Add(func(*Tweenable) { repeats++ })
	c.OnEnd.Add(func(*Tweenable) { ends++ })
	c.Play()

	r.StepN(10, 0.5)

	if repeats != 2 {
		t.Errorf("OnRepeat fired %d times, want 2", repeats)
	}
	if ends != 1 {
		t.Errorf("OnEnd fired %d times, want 1", ends)
	}
	if c.RemainingLoops() != 2 {
		t.Errorf("RemainingLoops after stop = %d, want 2", c.RemainingLoops())
	}
}

func TestInfiniteLoops(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(0.25).SetLoopCount(-1).SetLoopType(LoopReset)

	repeats := 0
	c.OnRepeat.Add(func(*Tweenable) { repeats++ })
	c.Play()
	r.StepN(100, 0.25)

	if repeats != 100 {
		t.Errorf("OnRepeat fired %d times, want 100", repeats)
	}
	if !c.IsPlaying() {
		t.Error("infinite tween should still be playing")
	}
	if c.IsTargetValuesSwitched() {
		t.Error("reset loops never switch targets")
	}
}

func TestInvalidContextDoesNotPlay(t *testing.T) {
	e, _ := newTestEngine()
	n := 0
	c := NewContext[int](func() int { return n }, nil, LerpNumber[int], AddNumber[int]).
		SetEngine(e).
		SetEndValue(5, false).
		SetDuration(1)

	if c.IsValid() {
		t.Fatal("context without setter should be invalid")
	}
	c.Play()
	if c.IsPlaying() {
		t.Error("invalid context should not play")
	}
	if e.Len() != 0 {
		t.Errorf("engine has %d tweens, want 0", e.Len())
	}
	if c.HasPlayedOnce() {
		t.Error("HasPlayedOnce should be false")
	}

	// Supplying the setter makes it valid.
	c.SetSetter(func(v int) { n = v })
	c.Play()
	if !c.IsPlaying() {
		t.Error("context should play once complete")
	}
}

func TestNilPointerEndpointsAreInvalid(t *testing.T) {
	var p *int
	c := NewContext(
		func() *int { return p },
		func(v *int) { p = v },
		func(a, b *int, t float64) *int { return b },
		func(a, b *int) *int { return b },
	)
	if c.IsValid() {
		t.Fatal("nil pointer endpoints should be invalid")
	}

	x, y := 1, 2
	c.SetStartValueTo(&x).SetEndValue(&y, false)
	if !c.IsValid() {
		t.Error("non-nil endpoints should be valid")
	}
}

// newPointerContext returns a valid *int context from &x to &y bound to e.
func newPointerContext(e *Engine, x, y *int) *Context[*int] {
	p := x
	return NewContext(
		func() *int { return p },
		func(v *int) { p = v },
		func(a, b *int, t float64) *int {
			if t >= 1 {
				return b
			}
			return a
		},
		func(a, b *int) *int { return b },
	).SetEngine(e).SetEndValue(y, false).SetDuration(1)
}

func TestInvalidatedTweenCanBeStopped(t *testing.T) {
	e, r := newTestEngine()
	x, y := 1, 2
	c := newPointerContext(e, &x, &y)

	ends := 0
	c.OnEnd.Add(func(*Tweenable) { ends++ })
	c.Play()
	r.Step(0.1)

	c.SetEndValue(nil, false)
	if c.IsValid() {
		t.Fatal("nil end value should invalidate the context")
	}
	c.Stop()
	if c.IsPlaying() || c.IsPaused() {
		t.Error("stop should end an invalidated tween")
	}
	if e.Len() != 0 {
		t.Errorf("engine has %d tweens, want 0", e.Len())
	}
	if ends != 0 {
		t.Errorf("OnEnd fired %d times for an invalid tween, want 0", ends)
	}

	e.StopAll()
	if e.Len() != 0 {
		t.Errorf("engine has %d tweens after StopAll, want 0", e.Len())
	}
}

func TestInvalidatedTweenIsDroppedByTick(t *testing.T) {
	e, r := newTestEngine()
	x, y := 1, 2
	c := newPointerContext(e, &x, &y)

	ticks := 0
	c.OnTick.Add(func(*Tweenable) { ticks++ })
	c.Play()
	r.Step(0.1)
	if ticks != 1 {
		t.Fatalf("ticks = %d, want 1", ticks)
	}

	c.SetEndValue(nil, false)
	r.Step(0.1)
	if ticks != 1 {
		t.Errorf("invalid tween kept ticking: ticks = %d", ticks)
	}
	if c.IsPlaying() {
		t.Error("invalid tween should no longer be playing")
	}
	if e.Len() != 0 {
		t.Errorf("engine has %d tweens, want 0", e.Len())
	}

	// Valid again, it plays from the start.
	c.SetEndValue(&y, false)
	c.Play()
	if !c.IsPlaying() || e.Len() != 1 {
		t.Error("revalidated tween should play")
	}
}

func TestBuilderRejectsNilFunctions(t *testing.T) {
	c := NewFloat(func() float64 { return 0 }, func(float64) {})
	cases := map[string]func(){
		"SetGetter": func() { c.SetGetter(nil) },
		"SetSetter": func() { c.SetSetter(nil) },
		"SetLerp":   func() { c.SetLerp(nil) },
		"SetAdd":    func() { c.SetAdd(nil) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				rec := recover()
				err, ok := rec.(error)
				if !ok || !errors.Is(err, ErrNilFunc) {
					t.Errorf("recovered %v, want ErrNilFunc", rec)
				}
			}()
			fn()
		})
	}
}

func TestPauseAndResume(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)

	pauses, plays := 0, 0
	c.OnPause.Add(func(*Tweenable) { pauses++ })
	c.OnPlay.Add(func(*Tweenable) { plays++ })
	c.Play()
	r.Step(0.25)

	c.Pause()
	if c.IsPlaying() || !c.IsPaused() {
		t.Fatal("expected paused state")
	}
	if e.Len() != 0 {
		t.Error("paused tween should leave the active set")
	}
	r.StepN(4, 0.25)
	if c.CurrentElapsed() != 0.25 {
		t.Errorf("progress moved while paused: %f", c.CurrentElapsed())
	}

	c.Play()
	if !c.IsPlaying() || c.IsPaused() {
		t.Fatal("expected playing after resume")
	}
	if c.CurrentElapsed() != 0.25 {
		t.Errorf("resume reset progress: %f", c.CurrentElapsed())
	}
	r.StepN(3, 0.25)
	if c.IsPlaying() {
		t.Error("tween should finish after the remaining time")
	}
	if pauses != 1 || plays != 2 {
		t.Errorf("pauses=%d plays=%d, want 1 and 2", pauses, plays)
	}
}

func TestPauseIdleIsNoop(t *testing.T) {
	v := 0.0
	c := newTestFloat(NewEngine(), &v)
	fired := false
	c.OnPause.Add(func(*Tweenable) { fired = true })
	c.Pause()
	if fired || c.IsPaused() {
		t.Error("pausing an idle tween should do nothing")
	}
}

func TestStopPausedTween(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)
	ends := 0
	c.OnEnd.Add(func(*Tweenable) { ends++ })
	c.Play()
	r.Step(0.5)
	c.Pause()
	c.Stop()

	if ends != 1 {
		t.Errorf("OnEnd fired %d times, want 1", ends)
	}
	if c.IsPaused() || c.CurrentElapsed() != 0 {
		t.Error("stopped tween should be reset")
	}
}

func TestPlayWhilePlayingRestarts(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)
	ends := 0
	c.OnEnd.Add(func(*Tweenable) { ends++ })

	c.Play()
	r.Step(0.5)
	c.Play()

	if ends != 1 {
		t.Errorf("implicit stop fired OnEnd %d times, want 1", ends)
	}
	if c.CurrentElapsed() != 0 {
		t.Errorf("progress after restart = %f, want 0", c.CurrentElapsed())
	}
	if e.Len() != 1 {
		t.Errorf("engine has %d tweens, want 1", e.Len())
	}
}

func TestDurationSnapshotAtPlay(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)
	c.Play()
	r.Step(0.5)

	c.SetDuration(10)
	if c.CurrentElapsed() != 0.5 {
		t.Errorf("duration change affected in-flight run: %f", c.CurrentElapsed())
	}
	r.Step(0.5)
	if c.IsPlaying() {
		t.Error("run should end with the original duration")
	}
	if c.Duration() != 10 {
		t.Errorf("Duration = %f, want 10 for the next run", c.Duration())
	}
}

func TestSpeed(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1).SetSpeed(2)
	c.Play()

	r.Step(0.25)
	if c.CurrentElapsed() != 0.5 {
		t.Errorf("progress at speed 2 = %f, want 0.5", c.CurrentElapsed())
	}

	c.SetSpeed(0)
	r.StepN(10, 0.25)
	if c.CurrentElapsed() != 0.5 {
		t.Errorf("speed 0 should freeze progress, got %f", c.CurrentElapsed())
	}
	if !c.IsPlaying() {
		t.Error("speed 0 should not stop the tween")
	}

	c.SetSpeed(-3)
	if c.Speed() != 0 {
		t.Errorf("negative speed = %f, want floored to 0", c.Speed())
	}
}

func TestTickCondition(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	visible := false
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1).
		SetTickCondition(func(*Tweenable) TickSuspend {
			if !visible {
				return TickSkip
			}
			return TickContinue
		})
	c.Play()

	r.StepN(4, 0.25)
	if c.CurrentElapsed() != 0 || !c.IsPlaying() {
		t.Fatalf("skipped ticks advanced the tween: %f", c.CurrentElapsed())
	}

	visible = true
	r.Step(0.25)
	if c.CurrentElapsed() != 0.25 {
		t.Errorf("progress = %f, want 0.25", c.CurrentElapsed())
	}

	c.SetTickCondition(func(*Tweenable) TickSuspend { return TickPause })
	r.Step(0.25)
	if !c.IsPaused() {
		t.Error("TickPause should pause the tween")
	}

	ends := 0
	c.OnEnd.Add(func(*Tweenable) { ends++ })
	c.SetTickCondition(func(*Tweenable) TickSuspend { return TickStop })
	c.Play()
	r.Step(0.25)
	if c.IsPlaying() || ends != 1 {
		t.Errorf("TickStop should stop the tween (playing=%v ends=%d)", c.IsPlaying(), ends)
	}
}

func TestInstantTween(t *testing.T) {
	e, _ := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(7, false).SetDuration(0).SetLoopCount(5)

	var order []string
	c.OnStart.Add(func(*Tweenable) { order = append(order, "start") })
	c.OnTick.Add(func(*Tweenable) { order = append(order, "tick") })
	c.OnEnd.Add(func(*Tweenable) { order = append(order, "end") })
	c.Play()

	if v != 7 {
		t.Errorf("value = %f, want 7", v)
	}
	if c.IsPlaying() || e.Len() != 0 {
		t.Error("instant tween should finish inside Play")
	}
	want := []string{"start", "tick", "end"}
	if len(order) != len(want) {
		t.Fatalf("events = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("events = %v, want %v", order, want)
		}
	}
}

func TestZeroDurationWithDelay(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(3, false).SetDuration(0).SetDelay(0.5)
	c.Play()

	r.Step(0.25)
	if v != 0 || !c.IsPlaying() {
		t.Fatal("value applied during delay")
	}
	r.Step(0.25)
	if v != 3 || c.IsPlaying() {
		t.Errorf("value = %f playing = %v, want 3 and stopped", v, c.IsPlaying())
	}
}

func TestWaitDelayOnLoop(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).
		SetDuration(0.5).SetDelay(0.5).SetLoopCount(1).SetLoopType(LoopReset).
		SetWaitDelayOnLoop(true)

	starts, ticks := 0, 0
	c.OnStart.Add(func(*Tweenable) { starts++ })
	c.OnTick.Add(func(*Tweenable) { ticks++ })
	c.Play()

	r.Step(0.5) // delay
	r.Step(0.5) // first loop completes
	if c.DelayElapsed() != 0 {
		t.Fatalf("DelayElapsed after repeat = %f, want 0", c.DelayElapsed())
	}

	before := ticks
	r.Step(0.25)
	if ticks != before {
		t.Error("ticked while waiting the delay again")
	}
	if c.DelayElapsed() != 0.5 {
		t.Errorf("DelayElapsed = %f, want 0.5", c.DelayElapsed())
	}

	r.Step(0.25) // delay done
	r.Step(0.5)  // second loop completes
	if c.IsPlaying() {
		t.Error("tween should stop after its last loop")
	}
	if starts != 1 {
		t.Errorf("OnStart fired %d times, want 1 per Play", starts)
	}
}

func TestResetRestoresLoopsOnlyWhenIdle(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(0.5).SetLoopCount(3)
	c.Play()
	r.Step(0.5)
	if c.RemainingLoops() != 2 {
		t.Fatalf("RemainingLoops = %d, want 2", c.RemainingLoops())
	}

	c.Reset()
	if c.RemainingLoops() != 2 {
		t.Errorf("Reset while playing restored loops to %d", c.RemainingLoops())
	}

	c.SetLoopCount(5)
	if c.RemainingLoops() != 2 {
		t.Errorf("SetLoopCount while playing changed RemainingLoops to %d", c.RemainingLoops())
	}

	c.Stop()
	if c.RemainingLoops() != 5 {
		t.Errorf("RemainingLoops after stop = %d, want 5", c.RemainingLoops())
	}
}

func TestLoopCountClamped(t *testing.T) {
	v := 0.0
	c := newTestFloat(NewEngine(), &v).SetLoopCount(-42)
	if c.LoopCount() != -1 {
		t.Errorf("LoopCount = %d, want -1", c.LoopCount())
	}
}

func TestOnEndCanRestart(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(0.5)

	runs := 0
	c.OnEnd.Add(func(tw *Tweenable) {
		runs++
		if runs < 3 {
			tw.Play()
		}
	})
	c.Play()
	r.StepN(10, 0.5)

	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
	if c.IsPlaying() || e.Len() != 0 {
		t.Error("tween should be idle after the last run")
	}
}

func TestPlayRestartedFromOnEnd(t *testing.T) {
	e, r := newTestEngine()
	v := 0.0
	c := newTestFloat(e, &v).SetEndValue(1, false).SetDuration(1)

	plays, ends := 0, 0
	c.OnPlay.Add(func(*Tweenable) { plays++ })
	c.OnEnd.Add(func(tw *Tweenable) {
		ends++
		if ends == 1 {
			tw.Play()
		}
	})
	c.Play()
	r.Step(0.5)

	c.Play()
	if plays != 2 {
		t.Errorf("OnPlay fired %d times, want 2", plays)
	}
	if !c.IsPlaying() || e.Len() != 1 {
		t.Error("tween should be playing once")
	}
	if c.CurrentElapsed() != 0 {
		t.Errorf("CurrentElapsed = %f, want 0 after restart", c.CurrentElapsed())
	}
}

func TestClampEasing(t *testing.T) {
	v := 0.0
	c := newTestFloat(NewEngine(), &v).SetEase(EaseOutBack)

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, c.EvaluateEasing(float64(i)/100))
	}
	if peak <= 1 {
		t.Fatalf("OutBack should overshoot, peak = %f", peak)
	}

	c.SetClampEasing(true)
	for i := 0; i <= 100; i++ {
		if got := c.EvaluateEasing(float64(i) / 100); got < 0 || got > 1 {
			t.Fatalf("clamped easing out of range at %d: %f", i, got)
		}
	}
}

func TestEaseCurveOverridesEase(t *testing.T) {
	v := 0.0
	c := newTestFloat(NewEngine(), &v).SetEase(EaseInQuad).SetEaseCurve(NewLinearCurve(0, 2))

	if got := c.EvaluateEasing(0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("curve easing at 0.5 = %f, want 1", got)
	}
	c.SetUseCurve(false)
	if got := c.EvaluateEasing(0.5); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("InQuad at 0.5 = %f, want 0.25", got)
	}
	c.SetEaseFunc(func(t float64) float64 { return 1 - t })
	if got := c.EvaluateEasing(0.25); got != 0.75 {
		t.Errorf("custom ease at 0.25 = %f, want 0.75", got)
	}
}

func TestOvershootIsNotClampedByLerp(t *testing.T) {
	v := 0.0
	c := newTestFloat(NewEngine(), &v).SetEndValue(10, false).
		SetEaseFunc(func(t float64) float64 { return 1.5 })
	c.EvaluateTween(0.5)
	if v != 15 {
		t.Errorf("value = %f, want 15 (unclamped extrapolation)", v)
	}
}

func TestSetIDObjectWithoutRunner(t *testing.T) {
	e := NewEngine()
	v := 0.0
	target := &struct{ name string }{"player"}
	c := newTestFloat(e, &v).SetIDObject(target)

	if c.ID() != IdentityID(target) {
		t.Errorf("ID = %d, want identity %d", c.ID(), IdentityID(target))
	}
	if c.IDObject() != target {
		t.Error("IDObject not retained")
	}
	c.SetID(3)
	if c.ID() != 3 || c.IDObject() != nil {
		t.Error("SetID should replace the ID object")
	}
}

func TestSetEngineIgnoredWhilePlaying(t *testing.T) {
	e1, _ := newTestEngine()
	e2 := NewEngine()
	v := 0.0
	c := newTestFloat(e1, &v).SetEndValue(1, false).SetDuration(1)
	c.Play()
	c.SetEngine(e2)
	if c.Engine() != e1 {
		t.Error("engine changed while playing")
	}
}

func TestDefaultEngineBinding(t *testing.T) {
	v := 0.0
	c := NewFloat(func() float64 { return v }, func(x float64) { v = x })
	if c.Engine() != Default() {
		t.Error("unbound context should use the default engine")
	}
}
