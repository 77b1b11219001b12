package tween

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Preset is a reusable tween configuration, typically loaded from YAML:
//
//	duration: 0.4
//	delay: 0.1
//	loops: -1
//	loopType: yoyo
//	ease: OutBack
//	curve:
//	  - {time: 0, value: 0}
//	  - {time: 1, value: 1}
//
// A zero Speed means 1, so a preset cannot freeze a tween.
type Preset struct {
	Duration        float64    `yaml:"duration" json:"duration"`
	Delay           float64    `yaml:"delay" json:"delay"`
	LoopCount       int        `yaml:"loops" json:"loops"`
	LoopType        LoopType   `yaml:"loopType" json:"loopType"`
	WaitDelayOnLoop bool       `yaml:"waitDelayOnLoop" json:"waitDelayOnLoop"`
	Ease            EaseKind   `yaml:"ease" json:"ease"`
	Curve           []Keyframe `yaml:"curve,omitempty" json:"curve,omitempty"`
	Clamp           bool       `yaml:"clamp" json:"clamp"`
	Speed           float64    `yaml:"speed" json:"speed"`
	Relative        bool       `yaml:"relative" json:"relative"`
	TickType        TickType   `yaml:"tickType" json:"tickType"`
	IgnoreTimeScale bool       `yaml:"ignoreTimeScale" json:"ignoreTimeScale"`
}

// ApplyPreset copies every field of p onto the tween.
func (tw *Tweenable) ApplyPreset(p Preset) *Tweenable {
	tw.SetDuration(p.Duration).
		SetDelay(p.Delay).
		SetLoopCount(p.LoopCount).
		SetLoopType(p.LoopType).
		SetWaitDelayOnLoop(p.WaitDelayOnLoop).
		SetEase(p.Ease).
		SetClampEasing(p.Clamp).
		SetTickType(p.TickType).
		SetIgnoreTimeScale(p.IgnoreTimeScale)
	if len(p.Curve) > 0 {
		tw.SetEaseCurve(NewCurve(p.Curve...))
	}
	speed := p.Speed
	if speed == 0 {
		speed = 1
	}
	tw.SetSpeed(speed)
	return tw
}

// ApplyPreset copies every field of p onto the context, including end-value
// relativity.
func (c *Context[T]) ApplyPreset(p Preset) *Context[T] {
	c.Tweenable.ApplyPreset(p)
	return c.SetIsEndRelative(p.Relative)
}

// PresetLoader loads named presets from YAML files using the fs.FS
// interface. A preset named "pop" is read from "pop.yaml".
type PresetLoader struct {
	fsys fs.FS
}

// NewPresetLoader creates a loader reading from a directory on disk.
func NewPresetLoader(dir string) *PresetLoader {
	return &PresetLoader{fsys: os.DirFS(dir)}
}

// NewFSPresetLoader creates a loader reading from fsys.
func NewFSPresetLoader(fsys fs.FS) *PresetLoader {
	return &PresetLoader{fsys: fsys}
}

// Load reads and parses a single preset.
func (l *PresetLoader) Load(name string) (Preset, error) {
	file := name + ".yaml"
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return Preset{}, fmt.Errorf("failed to read preset %s: %w", name, err)
	}
	return ParsePreset(data)
}

// LoadAll reads every *.yaml file in the root of the loader's filesystem and
// returns the presets keyed by file name without extension.
func (l *PresetLoader) LoadAll() (map[string]Preset, error) {
	files, err := fs.Glob(l.fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	out := make(map[string]Preset, len(files))
	for _, file := range files {
		name := file[:len(file)-len(path.Ext(file))]
		p, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

// ParsePreset parses a YAML (or JSON) preset document.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("failed to parse preset: %w", err)
	}
	return p, nil
}
