package tween

import (
	"errors"
	"fmt"
	"strings"
)

// DelayEpsilon is the smallest delay, in seconds, treated as a real delay.
// Anything at or below it means "start on the first tick".
const DelayEpsilon = 1e-6

// ErrNilFunc is wrapped by the panic raised when a builder method receives a
// nil getter, setter, lerp or add function.
var ErrNilFunc = errors.New("nil function")

// LoopType selects how a looping tween restarts.
type LoopType uint8

const (
	LoopYoyo  LoopType = iota // swap start and end values each repeat
	LoopReset                 // restart from the original start value
)

// TickType selects which runner tick advances a tween.
type TickType uint8

const (
	TickVariable TickType = iota // advanced on the runner's per-frame tick
	TickFixed                    // advanced on the runner's fixed-rate tick
)

// TickSuspend is returned by a tick condition to gate a tween's progress.
type TickSuspend uint8

const (
	TickContinue TickSuspend = iota // advance normally
	TickSkip                        // stay registered, do not advance this tick
	TickPause                       // pause the tween
	TickStop                        // stop the tween
)

// EventType identifies a tween lifecycle event forwarded to an EventSink.
type EventType uint8

const (
	EventPlay   EventType = iota // Play started or resumed the tween
	EventStart                   // the delay finished and interpolation began
	EventPause                   // the tween was paused
	EventRepeat                  // a loop completed and the tween restarted
	EventEnd                     // the tween was stopped or ran out of loops
)

var eventNames = [...]string{"play", "start", "pause", "repeat", "end"}

// String returns the lowercase event name.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("EventType(%d)", uint8(e))
}

var loopTypeNames = [...]string{"yoyo", "reset"}

// String returns "yoyo" or "reset".
func (l LoopType) String() string {
	if int(l) < len(loopTypeNames) {
		return loopTypeNames[l]
	}
	return fmt.Sprintf("LoopType(%d)", uint8(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l LoopType) MarshalText() ([]byte, error) {
	if int(l) >= len(loopTypeNames) {
		return nil, fmt.Errorf("tween: unknown loop type %d", uint8(l))
	}
	return []byte(loopTypeNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LoopType) UnmarshalText(text []byte) error {
	for i, n := range loopTypeNames {
		if strings.EqualFold(n, string(text)) {
			*l = LoopType(i)
			return nil
		}
	}
	return fmt.Errorf("tween: unknown loop type %q", text)
}

var tickTypeNames = [...]string{"variable", "fixed"}

// String returns "variable" or "fixed".
func (k TickType) String() string {
	if int(k) < len(tickTypeNames) {
		return tickTypeNames[k]
	}
	return fmt.Sprintf("TickType(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k TickType) MarshalText() ([]byte, error) {
	if int(k) >= len(tickTypeNames) {
		return nil, fmt.Errorf("tween: unknown tick type %d", uint8(k))
	}
	return []byte(tickTypeNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TickType) UnmarshalText(text []byte) error {
	for i, n := range tickTypeNames {
		if strings.EqualFold(n, string(text)) {
			*k = TickType(i)
			return nil
		}
	}
	return fmt.Errorf("tween: unknown tick type %q", text)
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Lerp interpolates from v to o by t without clamping.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Add returns the component-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Lerp interpolates each component from c to o by t without clamping.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Clamped returns c with every component clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// RGBA8 converts c to 8-bit straight-alpha components, clamping first.
func (c Color) RGBA8() (r, g, b, a uint8) {
	cc := c.Clamped()
	return uint8(cc.R*255 + 0.5), uint8(cc.G*255 + 0.5), uint8(cc.B*255 + 0.5), uint8(cc.A*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
