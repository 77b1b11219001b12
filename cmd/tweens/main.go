// Tweens demonstrates the tween engine driven by Ebitengine. Five squares
// animate continuously, each showcasing a different value type or option:
// position, scale, rotation, alpha, and color. Click anywhere to restart all
// animations with fresh random targets; hold space for slow motion.
package main

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/tween"
	"github.com/phanxgames/tween/ebitenrunner"
	"github.com/tanema/gween/ease"
)

const (
	windowTitle = "Tween Example"
	screenW     = 640
	screenH     = 480
	boxSize     = 32
	spacing     = 110.0
)

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// box is one animated square.
type box struct {
	pos      tween.Vec2
	scale    float64
	rotation float64
	alpha    float64
	color    tween.Color
}

// demo holds the five animated boxes and their tweens.
type demo struct {
	runner *ebitenrunner.Runner
	boxes  [5]box
	tweens []interface{ Stop() }
	slow   bool
}

func main() {
	runner := ebitenrunner.New(ebitenrunner.Config{})
	tween.Default().SetRunner(runner)

	d := &demo{runner: runner}
	d.resetBoxes()
	d.startTweens()

	game := &ebitenrunner.Game{
		Runner:     runner,
		UpdateFunc: d.update,
		DrawFunc:   d.draw,
	}
	if err := ebitenrunner.Run(game, ebitenrunner.RunConfig{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
	}); err != nil {
		log.Fatal(err)
	}
}

func startX() float64 {
	return float64(screenW)/2 - 2*spacing
}

func (d *demo) resetBoxes() {
	cy := float64(screenH) / 2
	for i := range d.boxes {
		d.boxes[i] = box{
			pos:   tween.Vec2{X: startX() + float64(i)*spacing, Y: cy},
			scale: 1,
			alpha: 1,
			color: tween.ColorWhite,
		}
	}
}

func (d *demo) startTweens() {
	for _, tw := range d.tweens {
		tw.Stop()
	}

	cy := float64(screenH) / 2
	b := &d.boxes

	// Position: bounce to a random nearby spot and back.
	pos := tween.TweenVec2(&b[0].pos, tween.Vec2{X: b[0].pos.X, Y: cy + (rand.Float64()-0.5)*160}, 1.5, tween.EaseOutBounce).
		SetLoopCount(-1).SetLoopType(tween.LoopYoyo)

	// Scale: relative growth with elastic overshoot.
	scale := tween.TweenValue(&b[1].scale, 1.5, 1.2, tween.EaseOutElastic).
		SetIsEndRelative(true).SetLoopCount(-1).SetLoopType(tween.LoopYoyo)

	// Rotation: full turns, restarting each loop after a short pause.
	rot := tween.TweenValue(&b[2].rotation, math.Pi*2, 2.0, tween.EaseInOutCubic).
		SetLoopCount(-1).SetLoopType(tween.LoopReset).SetDelay(0.3).SetWaitDelayOnLoop(true)

	// Alpha: fade out and in, ignoring slow motion.
	alpha := tween.TweenValue(&b[3].alpha, 0.1, 1.5, tween.EaseInOutSine).
		SetLoopCount(-1).SetLoopType(tween.LoopYoyo).SetIgnoreTimeScale(true)

	// Color: a baked curve instead of a named ease.
	col := tween.TweenColor(&b[4].color, randomBrightColor(), 1.5, tween.EaseLinear).
		SetEaseCurve(tween.CurveFromEase(tween.EaseFromGween(ease.OutInQuad), 16)).
		SetLoopCount(-1).SetLoopType(tween.LoopYoyo)

	pos.Play()
	scale.Play()
	rot.Play()
	alpha.Play()
	col.Play()
	d.tweens = []interface{ Stop() }{pos, scale, rot, alpha, col}
}

func (d *demo) update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.resetBoxes()
		d.startTweens()
	}

	slow := ebiten.IsKeyPressed(ebiten.KeySpace)
	if slow != d.slow {
		d.slow = slow
		target := 1.0
		if slow {
			target = 0.2
		}
		d.runner.TweenTimeScale(target, 0.4, ease.OutQuad)
	}
	return nil
}

func (d *demo) draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{26, 26, 38, 255})
	for i := range d.boxes {
		b := &d.boxes[i]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(boxSize*b.scale, boxSize*b.scale)
		op.GeoM.Rotate(b.rotation)
		op.GeoM.Translate(b.pos.X, b.pos.Y)
		c := b.color.Clamped()
		op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
		op.ColorScale.ScaleAlpha(float32(clamp(b.alpha, 0, 1)))
		screen.DrawImage(whitePixel, op)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func randomBrightColor() tween.Color {
	return tween.Color{
		R: 0.3 + rand.Float64()*0.7,
		G: 0.3 + rand.Float64()*0.7,
		B: 0.3 + rand.Float64()*0.7,
		A: 1,
	}
}
