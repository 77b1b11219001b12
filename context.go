package tween

import (
	"fmt"
	"reflect"
)

// LerpFunc interpolates from a to b by t. Implementations must not clamp t:
// overshooting eases rely on extrapolation.
type LerpFunc[T any] func(a, b T, t float64) T

// AddFunc returns a + b. Used to resolve relative end values.
type AddFunc[T any] func(a, b T) T

// Context binds a Tweenable to a value of type T. On every tick it computes
// the eased progress, interpolates from the start value to the absolute end
// value and hands the result to the setter.
//
// The getter and setter are owned by the caller and may capture external
// state by reference; the engine only relays through them.
type Context[T any] struct {
	Tweenable

	startValue  T
	endValue    T
	absEndValue T

	getter func() T
	setter func(T)
	lerp   LerpFunc[T]
	add    AddFunc[T]

	nilable bool
}

// NewContext creates a context bound to the default engine. Any of the
// functions may be nil and supplied later through the builder methods; until
// all four are present the context is invalid and Play does nothing.
// When getter is non-nil the start and end values are sampled from it.
func NewContext[T any](getter func() T, setter func(T), lerp LerpFunc[T], add AddFunc[T]) *Context[T] {
	c := &Context[T]{
		getter:  getter,
		setter:  setter,
		lerp:    lerp,
		add:     add,
		nilable: isNilableType[T](),
	}
	c.Tweenable.init(c)
	if getter != nil {
		c.startValue = getter()
		c.endValue = c.startValue
		c.absEndValue = c.startValue
	}
	return c
}

// --- evaluator ---

func (c *Context[T]) valid() bool {
	if c.getter == nil || c.setter == nil || c.lerp == nil || c.add == nil {
		return false
	}
	if c.nilable && (isNilValue(c.startValue) || isNilValue(c.endValue)) {
		return false
	}
	return true
}

func (c *Context[T]) evaluate(t float64) {
	eased := c.EvaluateEasing(t)
	c.setter(c.lerp(c.startValue, c.absEndValue, eased))
}

func (c *Context[T]) switchTargets() {
	if c.relative {
		c.startValue, c.absEndValue = c.absEndValue, c.startValue
		return
	}
	c.startValue, c.endValue = c.endValue, c.startValue
	c.updateAbsoluteEnd()
}

func (c *Context[T]) beforePlay() {
	c.updateAbsoluteEnd()
}

// unswitched runs fn with the targets in their original orientation and
// restores the yoyo swap afterwards. While a relative tween is switched the
// origin sits in absEndValue, so values must not be resolved in that state.
func (c *Context[T]) unswitched(fn func()) {
	if !c.switched {
		fn()
		return
	}
	c.switchTargets()
	c.switched = false
	fn()
	c.switchTargets()
	c.switched = true
}

func (c *Context[T]) updateAbsoluteEnd() {
	if c.relative && c.add != nil {
		c.absEndValue = c.add(c.startValue, c.endValue)
		return
	}
	c.absEndValue = c.endValue
}

// EvaluateTween writes the value at normalized progress t through the setter
// without touching the play state. Does nothing while invalid.
func (c *Context[T]) EvaluateTween(t float64) {
	if !c.valid() {
		return
	}
	c.evaluate(t)
}

// --- Values ---

// StartValue returns the value the tween interpolates from.
func (c *Context[T]) StartValue() T { return c.startValue }

// EndValue returns the configured end value; an offset when relative.
func (c *Context[T]) EndValue() T { return c.endValue }

// AbsoluteEndValue returns the resolved target: StartValue + EndValue when
// relative, EndValue otherwise.
func (c *Context[T]) AbsoluteEndValue() T { return c.absEndValue }

// SetStartValue re-samples the start value from the getter, so a tween built
// ahead of time can animate from the live value at the moment it is called.
func (c *Context[T]) SetStartValue() *Context[T] {
	if c.getter == nil {
		return c
	}
	c.unswitched(func() {
		c.startValue = c.getter()
		c.updateAbsoluteEnd()
	})
	return c
}

// SetStartValueTo sets an explicit start value.
func (c *Context[T]) SetStartValueTo(v T) *Context[T] {
	c.unswitched(func() {
		c.startValue = v
		c.updateAbsoluteEnd()
	})
	return c
}

// SetEndValue sets the end value and whether it is relative to the start.
// The absolute end value is recomputed immediately.
func (c *Context[T]) SetEndValue(v T, relative bool) *Context[T] {
	c.unswitched(func() {
		c.endValue = v
		c.relative = relative
		c.updateAbsoluteEnd()
	})
	return c
}

// SetIsEndRelative toggles relative end values. Applies live.
func (c *Context[T]) SetIsEndRelative(relative bool) *Context[T] {
	c.unswitched(func() {
		c.relative = relative
		c.updateAbsoluteEnd()
	})
	return c
}

// --- Functions ---

// SetGetter replaces the getter. Panics if fn is nil.
func (c *Context[T]) SetGetter(fn func() T) *Context[T] {
	mustFunc(fn == nil, "SetGetter")
	c.getter = fn
	return c
}

// SetSetter replaces the setter. Panics if fn is nil.
func (c *Context[T]) SetSetter(fn func(T)) *Context[T] {
	mustFunc(fn == nil, "SetSetter")
	c.setter = fn
	return c
}

// SetLerp replaces the interpolation function. Panics if fn is nil.
func (c *Context[T]) SetLerp(fn LerpFunc[T]) *Context[T] {
	mustFunc(fn == nil, "SetLerp")
	c.lerp = fn
	return c
}

// SetAdd replaces the addition function. Panics if fn is nil.
func (c *Context[T]) SetAdd(fn AddFunc[T]) *Context[T] {
	mustFunc(fn == nil, "SetAdd")
	c.unswitched(func() {
		c.add = fn
		c.updateAbsoluteEnd()
	})
	return c
}

func mustFunc(isNil bool, op string) {
	if isNil {
		panic(fmt.Errorf("tween: %s: %w", op, ErrNilFunc))
	}
}

// --- Chained configuration ---
//
// These mirror the Tweenable setters and return the context for chaining.
// Duration, loop count and tick type are snapshotted by Play; the rest apply
// to a running tween.

// SetDuration sets the loop duration in seconds. Takes effect on the next Play.
func (c *Context[T]) SetDuration(seconds float64) *Context[T] {
	c.Tweenable.SetDuration(seconds)
	return c
}

// SetDelay sets the delay in seconds. Applies live while the delay is being
// waited, keeping the time already waited.
func (c *Context[T]) SetDelay(seconds float64) *Context[T] {
	c.Tweenable.SetDelay(seconds)
	return c
}

// SetLoopCount sets the repeat count. Takes effect on the next Play.
func (c *Context[T]) SetLoopCount(n int) *Context[T] {
	c.Tweenable.SetLoopCount(n)
	return c
}

// SetLoopType selects yoyo or reset looping. Applies live.
func (c *Context[T]) SetLoopType(t LoopType) *Context[T] {
	c.Tweenable.SetLoopType(t)
	return c
}

// SetWaitDelayOnLoop makes every repeat wait the delay again. Applies live.
func (c *Context[T]) SetWaitDelayOnLoop(wait bool) *Context[T] {
	c.Tweenable.SetWaitDelayOnLoop(wait)
	return c
}

// SetEase selects a built-in ease. Applies live.
func (c *Context[T]) SetEase(kind EaseKind) *Context[T] {
	c.Tweenable.SetEase(kind)
	return c
}

// SetEaseFunc installs a custom ease. Applies live.
func (c *Context[T]) SetEaseFunc(fn EaseFunc) *Context[T] {
	c.Tweenable.SetEaseFunc(fn)
	return c
}

// SetEaseCurve installs a keyframed ease curve. Applies live.
func (c *Context[T]) SetEaseCurve(curve *Curve) *Context[T] {
	c.Tweenable.SetEaseCurve(curve)
	return c
}

// SetUseCurve toggles curve easing. Applies live.
func (c *Context[T]) SetUseCurve(use bool) *Context[T] {
	c.Tweenable.SetUseCurve(use)
	return c
}

// SetClampEasing clamps eased progress to [0, 1]. Applies live.
func (c *Context[T]) SetClampEasing(clamp bool) *Context[T] {
	c.Tweenable.SetClampEasing(clamp)
	return c
}

// SetSpeed multiplies elapsed time. Applies live.
func (c *Context[T]) SetSpeed(speed float64) *Context[T] {
	c.Tweenable.SetSpeed(speed)
	return c
}

// SetTickType selects variable or fixed ticking. Takes effect on the next Play.
func (c *Context[T]) SetTickType(t TickType) *Context[T] {
	c.Tweenable.SetTickType(t)
	return c
}

// SetIgnoreTimeScale opts out of the runner's time scale. Applies live.
func (c *Context[T]) SetIgnoreTimeScale(ignore bool) *Context[T] {
	c.Tweenable.SetIgnoreTimeScale(ignore)
	return c
}

// SetID sets the correlation ID used by Engine.StopByID.
func (c *Context[T]) SetID(id int) *Context[T] {
	c.Tweenable.SetID(id)
	return c
}

// SetIDObject derives the correlation ID from obj.
func (c *Context[T]) SetIDObject(obj any) *Context[T] {
	c.Tweenable.SetIDObject(obj)
	return c
}

// SetEngine binds the context to e. Ignored while playing or paused.
func (c *Context[T]) SetEngine(e *Engine) *Context[T] {
	c.Tweenable.SetEngine(e)
	return c
}

// SetTickCondition installs a per-tick gate. Nil removes it.
func (c *Context[T]) SetTickCondition(fn func(tw *Tweenable) TickSuspend) *Context[T] {
	c.TickCondition = fn
	return c
}

// --- nil checks for reference-like T ---

func isNilableType[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func isNilValue[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
