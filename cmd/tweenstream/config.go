package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration for tweenstream.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
	FrameRate int      `yaml:"frameRate"`
	LEDs      int      `yaml:"leds"`
	Stagger   float64  `yaml:"stagger"`
	PresetDir string   `yaml:"presetDir"`
	Preset    string   `yaml:"preset"`
	Palette   []string `yaml:"palette"`
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 30
	}
	if cfg.LEDs <= 0 {
		cfg.LEDs = 50
	}
	if cfg.Mqtt.ClientID == "" {
		cfg.Mqtt.ClientID = "tweenstream"
	}
	if len(cfg.Palette) < 2 {
		return Config{}, fmt.Errorf("failed to parse config: palette needs at least 2 colors, got %d", len(cfg.Palette))
	}
	return cfg, nil
}
