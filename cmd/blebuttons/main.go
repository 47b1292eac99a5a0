// Command blebuttons runs the BLE peripheral demo: three buttons drive
// advertising start/stop, disconnect, and address-privacy mode; four LEDs
// mirror the device state; pairing prints a passkey on the log.
//
// On an OS it uses the host BLE stack, keystrokes stand in for buttons and
// the LEDs are rendered to the log:
//
//	go run ./cmd/blebuttons [--config path]
//
// On a microcontroller the board's buttons and LEDs are wired directly:
//
//	tinygo flash -target pca10056 ./cmd/blebuttons
package main

import (
	"log/slog"

	"github.com/awiooono/blebuttons/internal/button"
	"github.com/awiooono/blebuttons/internal/device"
	"github.com/awiooono/blebuttons/internal/led"
	"github.com/awiooono/blebuttons/internal/radio"
)

func main() {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		fatal("config validation", err)
	}
	initLogger(cfg)

	slog.Info("booting",
		"name", cfg.DeviceName,
		"legend", "start=advertise stop=stop/disconnect toggle=address mode")
	slog.Info("pairing: if the peer requests MITM, enter the passkey printed here")

	stack := radio.NewAdapter()
	if err := stack.Enable(); err != nil {
		fatal("bluetooth init", err)
	}

	binder, pins := newBoard()
	queue := &button.Queue{}
	if err := button.BindAll(binder, queue); err != nil {
		fatal("button init", err)
	}

	panel := led.NewPanel(pins[0], pins[1], pins[2], pins[3])

	dev := device.New(stack, queue, panel, device.Options{
		DeviceName:        cfg.DeviceName,
		ServiceUUID:       cfg.ServiceUUID,
		Mode:              cfg.Mode(),
		IntervalMinMillis: cfg.Advertising.IntervalMinMillis,
		IntervalMaxMillis: cfg.Advertising.IntervalMaxMillis,
		Tick:              cfg.Tick(),
	}, slog.Default())

	slog.Info("ready", "name", cfg.DeviceName, "mode", cfg.Mode())
	dev.Run(rootContext())
}
