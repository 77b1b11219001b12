// Package tween is a tick-driven tweening engine for arbitrary typed values.
//
// A tween interpolates a value from a start to an end over time, with an
// optional delay, looping, easing, speed control and relative end values.
// Values are read and written through caller-supplied getter and setter
// closures, so anything can be animated: positions, colors, scalars, or
// fields of your own types.
//
// # Quick start
//
// Bind a [Runner] to the engine, build a [Context] and play it:
//
//	runner := tween.NewManualRunner(0)
//	tween.Default().SetRunner(runner)
//
//	x := 0.0
//	tween.TweenValue(&x, 100, 0.5, tween.EaseOutCubic).
//		SetLoopCount(1).
//		SetLoopType(tween.LoopYoyo).
//		Play()
//
//	for runner.ElapsedTickCount() < 60 {
//		runner.Step(1.0 / 60)
//	}
//
// For values without a built-in helper, supply the lerp and add functions:
//
//	c := tween.NewContext(getPos, setPos, lerpPos, addPos)
//
// # Runners
//
// The engine owns no loop. A [Runner] supplies delta time, time scale and
// tick events: [ManualRunner] for hosts that step time themselves,
// [TickerRunner] for headless services, [ScriptRunner] for reproducible
// frame scripts, and the ebitenrunner package for [Ebitengine] games.
//
// # Engines
//
// [Default] returns the process-wide engine. Tests and isolated subsystems
// can create their own with [NewEngine] and bind tweens via SetEngine.
//
// # Easing
//
// Built-in eases ([EaseKind]) come from [fogleman/ease] and [gween]. Custom
// functions go through SetEaseFunc, keyframed curves through [Curve].
//
// # Presets
//
// [Preset] captures a tween configuration and can be loaded from YAML with
// [PresetLoader].
//
// # ECS integration
//
// The ecs package forwards lifecycle events into a [Donburi] world; set it
// with [Engine.SetEventSink].
//
// [Ebitengine]: https://ebitengine.org
// [fogleman/ease]: https://github.com/fogleman/ease
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tween
