package main

import (
	"fmt"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/tween"
)

// strip animates one color per LED. Each LED yoyos between two palette
// colors, offset by a per-LED delay so the pattern travels along the strip.
type strip struct {
	pixels  []colorful.Color
	tweens  []*tween.Context[colorful.Color]
	palette []colorful.Color
	rng     *rand.Rand
}

func parsePalette(hexes []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

func newStrip(engine *tween.Engine, leds int, palette []colorful.Color, preset tween.Preset, stagger float64, rng *rand.Rand) *strip {
	s := &strip{
		pixels:  make([]colorful.Color, leds),
		tweens:  make([]*tween.Context[colorful.Color], leds),
		palette: palette,
		rng:     rng,
	}
	for i := range s.pixels {
		s.pixels[i] = palette[0]
		px := &s.pixels[i]
		c := tween.NewContext(
			func() colorful.Color { return *px },
			func(v colorful.Color) { *px = v },
			tween.LerpColorfulLab,
			tween.AddColorful,
		).SetEngine(engine).ApplyPreset(preset)

		c.SetDelay(preset.Delay + float64(i)*stagger).
			SetEndValue(s.randomColor(), false)

		// Pick a fresh target every time the LED returns to its start color.
		c.OnRepeat.Add(func(tw *tween.Tweenable) {
			if !tw.IsTargetValuesSwitched() {
				c.SetEndValue(s.randomColor(), false)
			}
		})
		s.tweens[i] = c
	}
	return s
}

func (s *strip) randomColor() colorful.Color {
	return s.palette[1+s.rng.Intn(len(s.palette)-1)]
}

func (s *strip) play() {
	for _, c := range s.tweens {
		c.Play()
	}
}

func (s *strip) stop() {
	for _, c := range s.tweens {
		c.Stop()
	}
}

// frame encodes the strip as packed 8-bit RGB triples.
func (s *strip) frame() []byte {
	buf := make([]byte, 0, len(s.pixels)*3)
	for _, c := range s.pixels {
		r, g, b := c.Clamped().RGB255()
		buf = append(buf, r, g, b)
	}
	return buf
}
