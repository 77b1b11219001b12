package tween

import (
	"fmt"
	"strings"

	fease "github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// EaseFunc remaps normalized progress t (0 at start, 1 at end) to an eased
// progress value. Overshooting functions (elastic, back) may return values
// outside [0, 1].
type EaseFunc func(t float64) float64

// EaseKind names a built-in easing function.
type EaseKind uint8

const (
	EaseLinear EaseKind = iota
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
	EaseOutInSine
	EaseOutInQuad
	EaseOutInCubic
	EaseOutInQuart
	EaseOutInQuint
	EaseOutInExpo
	EaseOutInCirc
	EaseOutInElastic
	EaseOutInBack
	EaseOutInBounce

	easeKindCount
)

var easeNames = [easeKindCount]string{
	"Linear",
	"InSine", "OutSine", "InOutSine",
	"InQuad", "OutQuad", "InOutQuad",
	"InCubic", "OutCubic", "InOutCubic",
	"InQuart", "OutQuart", "InOutQuart",
	"InQuint", "OutQuint", "InOutQuint",
	"InExpo", "OutExpo", "InOutExpo",
	"InCirc", "OutCirc", "InOutCirc",
	"InElastic", "OutElastic", "InOutElastic",
	"InBack", "OutBack", "InOutBack",
	"InBounce", "OutBounce", "InOutBounce",
	"OutInSine", "OutInQuad", "OutInCubic", "OutInQuart", "OutInQuint",
	"OutInExpo", "OutInCirc", "OutInElastic", "OutInBack", "OutInBounce",
}

// The In/Out/InOut families come from fogleman/ease, which already works on
// normalized progress. Only gween carries the OutIn family.
var easeFuncs = [easeKindCount]EaseFunc{
	EaseLinear:       fease.Linear,
	EaseInSine:       fease.InSine,
	EaseOutSine:      fease.OutSine,
	EaseInOutSine:    fease.InOutSine,
	EaseInQuad:       fease.InQuad,
	EaseOutQuad:      fease.OutQuad,
	EaseInOutQuad:    fease.InOutQuad,
	EaseInCubic:      fease.InCubic,
	EaseOutCubic:     fease.OutCubic,
	EaseInOutCubic:   fease.InOutCubic,
	EaseInQuart:      fease.InQuart,
	EaseOutQuart:     fease.OutQuart,
	EaseInOutQuart:   fease.InOutQuart,
	EaseInQuint:      fease.InQuint,
	EaseOutQuint:     fease.OutQuint,
	EaseInOutQuint:   fease.InOutQuint,
	EaseInExpo:       fease.InExpo,
	EaseOutExpo:      fease.OutExpo,
	EaseInOutExpo:    fease.InOutExpo,
	EaseInCirc:       fease.InCirc,
	EaseOutCirc:      fease.OutCirc,
	EaseInOutCirc:    fease.InOutCirc,
	EaseInElastic:    fease.InElastic,
	EaseOutElastic:   fease.OutElastic,
	EaseInOutElastic: fease.InOutElastic,
	EaseInBack:       fease.InBack,
	EaseOutBack:      fease.OutBack,
	EaseInOutBack:    fease.InOutBack,
	EaseInBounce:     fease.InBounce,
	EaseOutBounce:    fease.OutBounce,
	EaseInOutBounce:  fease.InOutBounce,
	EaseOutInSine:    EaseFromGween(gease.OutInSine),
	EaseOutInQuad:    EaseFromGween(gease.OutInQuad),
	EaseOutInCubic:   EaseFromGween(gease.OutInCubic),
	EaseOutInQuart:   EaseFromGween(gease.OutInQuart),
	EaseOutInQuint:   EaseFromGween(gease.OutInQuint),
	EaseOutInExpo:    EaseFromGween(gease.OutInExpo),
	EaseOutInCirc:    EaseFromGween(gease.OutInCirc),
	EaseOutInElastic: EaseFromGween(gease.OutInElastic),
	EaseOutInBack:    EaseFromGween(gease.OutInBack),
	EaseOutInBounce:  EaseFromGween(gease.OutInBounce),
}

// EaseFromGween adapts a gween TweenFunc (t, begin, change, duration) to an
// EaseFunc over normalized progress.
func EaseFromGween(fn gease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Func returns the easing function for k. Unknown kinds fall back to linear.
func (k EaseKind) Func() EaseFunc {
	if k >= easeKindCount {
		return fease.Linear
	}
	return easeFuncs[k]
}

// Apply evaluates the easing function for k at t.
func (k EaseKind) Apply(t float64) float64 {
	return k.Func()(t)
}

// String returns the kind's name, e.g. "InOutQuad".
func (k EaseKind) String() string {
	if k >= easeKindCount {
		return fmt.Sprintf("EaseKind(%d)", uint8(k))
	}
	return easeNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k EaseKind) MarshalText() ([]byte, error) {
	if k >= easeKindCount {
		return nil, fmt.Errorf("tween: unknown ease kind %d", uint8(k))
	}
	return []byte(easeNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively.
func (k *EaseKind) UnmarshalText(text []byte) error {
	kind, err := ParseEaseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseEaseKind looks up an ease kind by name, ignoring case.
func ParseEaseKind(name string) (EaseKind, error) {
	for i, n := range easeNames {
		if strings.EqualFold(n, name) {
			return EaseKind(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("tween: unknown ease %q", name)
}
