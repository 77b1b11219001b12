// Tweenstream animates an LED strip with the tween engine and streams the
// frames as packed RGB over MQTT.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/phanxgames/tween"
)

// publisher sends one frame. Satisfied by mqttPublisher and by test fakes.
type publisher interface {
	Publish(topic string, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
}

func (p mqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

type app struct {
	config Config
	engine *tween.Engine
	runner *tween.TickerRunner
	strip  *strip
	pub    publisher
	failed int
}

func newApp(cfg Config, preset tween.Preset, pub publisher, rng *rand.Rand) (*app, error) {
	palette, err := parsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	a := &app{
		config: cfg,
		engine: tween.NewEngine(),
		runner: tween.NewTickerRunner(cfg.FrameRate, 0),
		pub:    pub,
	}
	a.engine.SetRunner(a.runner)
	a.strip = newStrip(a.engine, cfg.LEDs, palette, preset, cfg.Stagger, rng)

	// Registered after the engine, so frames see this tick's values.
	a.runner.Events().Tick.Add(func(tween.Runner) { a.sendFrame() })
	return a, nil
}

func (a *app) sendFrame() {
	if err := a.pub.Publish(a.config.Mqtt.Topic, a.strip.frame()); err != nil {
		a.failed++
		if a.failed == 1 || a.failed%100 == 0 {
			log.Printf("Failed to publish frame (%d failures): %v", a.failed, err)
		}
	}
}

func (a *app) run(ctx context.Context) error {
	a.strip.play()
	defer a.strip.stop()
	return a.runner.Run(ctx)
}

func loadPreset(cfg Config) (tween.Preset, error) {
	if cfg.Preset == "" {
		return tween.Preset{Duration: 2, LoopCount: -1, LoopType: tween.LoopYoyo, Ease: tween.EaseInOutSine}, nil
	}
	return tween.NewPresetLoader(cfg.PresetDir).Load(cfg.Preset)
}

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	debug := flag.Bool("debug", false, "Log per-tick engine stats to stderr.")
	flag.Parse()

	cfg, err := readConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	preset, err := loadPreset(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: %d LEDs at %d fps, topic %s", cfg.LEDs, cfg.FrameRate, cfg.Mqtt.Topic)

	mqtt.ERROR = log.New(os.Stderr, "[mqtt] ", 0)
	options := mqtt.NewClientOptions().
		AddBroker(cfg.Mqtt.URL).
		SetClientID(cfg.Mqtt.ClientID).
		SetUsername(cfg.Mqtt.Username).
		SetPassword(cfg.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true)
	client := mqtt.NewClient(options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Failed to connect to %s: %v", cfg.Mqtt.URL, token.Error())
	}
	defer client.Disconnect(250)
	log.Println("Connected")

	a, err := newApp(cfg, preset, mqttPublisher{client: client}, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatal(err)
	}
	a.engine.SetDebugMode(*debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.run(ctx); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
	log.Println("Stopped")
}
