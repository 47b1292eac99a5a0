package device

import (
	"context"
	"time"

	"github.com/awiooono/blebuttons/internal/radio"
)

// Run is the reconciliation loop. It polls at the configured tick: button
// presses are observed with up to one tick of latency, which buys a single
// consumption point for all shared state. The loop is never blocked by a
// failed action; errors are logged and the next tick proceeds.
func (d *Device) Run(ctx context.Context) {
	ticker := time.NewTicker(d.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.step()
		}
	}
}

// step is one reconciliation pass: drain the edge latches, drain whatever
// radio events queued up since the last tick, then reproject the LEDs.
func (d *Device) step() {
	d.handleEdges(d.edges.DrainAndReset())

	for {
		select {
		case ev := <-d.stack.Events():
			d.handleEvent(ev)
		default:
			d.project()
			return
		}
	}
}

func (d *Device) handleEvent(ev radio.Event) {
	switch ev := ev.(type) {
	case radio.Connected:
		d.onConnected(ev)
	case radio.Disconnected:
		d.onDisconnected(ev)
	case radio.SecurityChanged:
		d.onSecurityChanged(ev)
	case radio.PasskeyDisplay:
		d.onPasskeyDisplay(ev)
	case radio.ConfirmRequest:
		d.onConfirmRequest(ev)
	case radio.AuthCanceled:
		d.onAuthCanceled(ev)
	case radio.PairingDone:
		d.onPairingDone(ev)
	case radio.PairingFailed:
		d.onPairingFailed(ev)
	}
}
