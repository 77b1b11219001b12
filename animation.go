package tween

import (
	"math"
	"reflect"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Number is the set of scalar types with built-in lerp and add functions.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// LerpNumber interpolates from a to b by t without clamping. Integer results
// are rounded to the nearest value; unsigned results stop at zero.
func LerpNumber[T Number](a, b T, t float64) T {
	v := float64(a) + (float64(b)-float64(a))*t
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return T(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// Overshooting eases can extrapolate below zero.
		if v < 0 {
			return 0
		}
	}
	return T(math.Round(v))
}

// AddNumber returns a + b.
func AddNumber[T Number](a, b T) T {
	return a + b
}

// LerpVec2 is the LerpFunc for Vec2.
func LerpVec2(a, b Vec2, t float64) Vec2 { return a.Lerp(b, t) }

// AddVec2 is the AddFunc for Vec2.
func AddVec2(a, b Vec2) Vec2 { return a.Add(b) }

// LerpColor is the LerpFunc for Color. Components may leave [0, 1] under
// overshooting eases; clamp at the point of use.
func LerpColor(a, b Color, t float64) Color { return a.Lerp(b, t) }

// AddColor is the AddFunc for Color.
func AddColor(a, b Color) Color { return a.Add(b) }

// LerpColorful interpolates colorful colors in RGB without clamping.
func LerpColorful(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

// LerpColorfulLab interpolates colorful colors in CIE L*a*b*, which keeps
// perceived brightness steadier than RGB blending.
func LerpColorfulLab(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLab(b, t)
}

// AddColorful returns the channel-wise sum of a and b.
func AddColorful(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// NewNumber creates a context for any Number type.
func NewNumber[T Number](getter func() T, setter func(T)) *Context[T] {
	return NewContext(getter, setter, LerpNumber[T], AddNumber[T])
}

// NewFloat creates a float64 context.
func NewFloat(getter func() float64, setter func(float64)) *Context[float64] {
	return NewNumber(getter, setter)
}

// NewVec2 creates a Vec2 context.
func NewVec2(getter func() Vec2, setter func(Vec2)) *Context[Vec2] {
	return NewContext(getter, setter, LerpVec2, AddVec2)
}

// NewColor creates a Color context.
func NewColor(getter func() Color, setter func(Color)) *Context[Color] {
	return NewContext(getter, setter, LerpColor, AddColor)
}

// NewColorfulContext creates a colorful.Color context blending in RGB.
func NewColorfulContext(getter func() colorful.Color, setter func(colorful.Color)) *Context[colorful.Color] {
	return NewContext(getter, setter, LerpColorful, AddColorful)
}

// TweenValue creates a context that animates *target from its current value
// to the given value over duration seconds. The start value is sampled when
// the context is created; call SetStartValue to re-sample before Play.
func TweenValue[T Number](target *T, to T, duration float64, ease EaseKind) *Context[T] {
	c := NewNumber(func() T { return *target }, func(v T) { *target = v })
	return c.SetEndValue(to, false).SetDuration(duration).SetEase(ease)
}

// TweenVec2 creates a context that animates *target to the given vector.
func TweenVec2(target *Vec2, to Vec2, duration float64, ease EaseKind) *Context[Vec2] {
	c := NewVec2(func() Vec2 { return *target }, func(v Vec2) { *target = v })
	return c.SetEndValue(to, false).SetDuration(duration).SetEase(ease)
}

// TweenColor creates a context that animates all four components of *target
// to the given color.
func TweenColor(target *Color, to Color, duration float64, ease EaseKind) *Context[Color] {
	c := NewColor(func() Color { return *target }, func(v Color) { *target = v })
	return c.SetEndValue(to, false).SetDuration(duration).SetEase(ease)
}
