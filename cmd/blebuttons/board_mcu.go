//go:build baremetal

package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/awiooono/blebuttons/internal/button"
	"github.com/awiooono/blebuttons/internal/config"
	"github.com/awiooono/blebuttons/internal/led"
)

// Board wiring for the Nordic dev kits (pca10040/pca10056): four LEDs and
// the first three user buttons, all active low with internal pull-ups.

func loadConfig() *config.Config {
	return config.Default()
}

func initLogger(cfg *config.Config) {
	// Give the host time to enumerate the USB serial device.
	time.Sleep(1500 * time.Millisecond)
	slog.SetDefault(slog.New(slog.NewTextHandler(machine.Serial, nil)))
}

func rootContext() context.Context {
	return context.Background()
}

func fatal(action string, err error) {
	for {
		println("FATAL:", action+":", err.Error())
		time.Sleep(time.Second)
	}
}

// mcuPin drives one LED line. The DK LEDs are wired active low.
type mcuPin struct {
	pin machine.Pin
}

func (p mcuPin) Set(on bool) {
	p.pin.Set(!on)
}

// mcuButtons binds press callbacks to falling-edge pin interrupts.
type mcuButtons struct{}

func (mcuButtons) Bind(b button.Button, fire func()) error {
	var pin machine.Pin
	switch b {
	case button.Start:
		pin = machine.BUTTON1
	case button.Stop:
		pin = machine.BUTTON2
	case button.Toggle:
		pin = machine.BUTTON3
	}
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pin.SetInterrupt(machine.PinFalling, func(machine.Pin) { fire() })
}

func newBoard() (button.Binder, [4]led.Pin) {
	pins := [4]machine.Pin{machine.LED1, machine.LED2, machine.LED3, machine.LED4}
	out := [4]led.Pin{}
	for i, p := range pins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High() // off
		out[i] = mcuPin{pin: p}
	}
	return mcuButtons{}, out
}
