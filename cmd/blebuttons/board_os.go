//go:build !baremetal

package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/awiooono/blebuttons/internal/button"
	"github.com/awiooono/blebuttons/internal/config"
	"github.com/awiooono/blebuttons/internal/led"
)

func loadConfig() *config.Config {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/blebuttons/config.yaml)")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			// No config file is fine; run on defaults.
			return config.Default()
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	h := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(h))
}

func rootContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}

func fatal(action string, err error) {
	log.Fatalf("%s: %v", action, err)
}

// logPin renders one LED as a log line, only on transitions.
type logPin struct {
	name string
	mu   sync.Mutex
	on   bool
	init bool
}

func (p *logPin) Set(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.init && p.on == on {
		return
	}
	p.init = true
	p.on = on
	state := "off"
	if on {
		state = "ON"
	}
	slog.Info("led", "name", p.name, "state", state)
}

// keyBinder maps stdin keystrokes to button presses: s=start, x=stop,
// t=toggle (each followed by enter).
type keyBinder struct {
	mu    sync.Mutex
	fires map[button.Button]func()
	once  sync.Once
}

func (k *keyBinder) Bind(b button.Button, fire func()) error {
	k.mu.Lock()
	if k.fires == nil {
		k.fires = make(map[button.Button]func())
	}
	k.fires[b] = fire
	k.mu.Unlock()

	k.once.Do(func() { go k.read() })
	return nil
}

func (k *keyBinder) read() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		for _, r := range scanner.Text() {
			var b button.Button
			switch r {
			case 's':
				b = button.Start
			case 'x':
				b = button.Stop
			case 't':
				b = button.Toggle
			default:
				continue
			}
			k.mu.Lock()
			fire := k.fires[b]
			k.mu.Unlock()
			if fire != nil {
				fire()
			}
		}
	}
}

func newBoard() (button.Binder, [4]led.Pin) {
	slog.Info("keys: s=start x=stop/disconnect t=toggle mode (press enter after each)")
	return &keyBinder{}, [4]led.Pin{
		&logPin{name: "advertising"},
		&logPin{name: "connected"},
		&logPin{name: "rotating-rpa"},
		&logPin{name: "passkey"},
	}
}
