// Package device holds the decisional core of the demo peripheral. It owns
// the single DeviceState that buttons and radio events reconcile into, and
// the policies that move it. Everything here runs on one goroutine; hardware
// inputs arrive as latched edges and queued events.
package device

import (
	"log/slog"
	"time"

	"github.com/awiooono/blebuttons/internal/button"
	"github.com/awiooono/blebuttons/internal/led"
	"github.com/awiooono/blebuttons/internal/radio"
)

// Options configures the device core.
type Options struct {
	// DeviceName is advertised in the scan response.
	DeviceName string
	// ServiceUUID is carried in the primary advertising payload.
	ServiceUUID string
	// Mode is the initial address-privacy mode.
	Mode radio.AddressMode
	// IntervalMinMillis/IntervalMaxMillis bound the advertising interval.
	IntervalMinMillis uint32
	IntervalMaxMillis uint32
	// Tick is the reconciliation loop period.
	Tick time.Duration
}

// DefaultOptions returns the firmware defaults.
func DefaultOptions() Options {
	return Options{
		DeviceName:        "blebuttons",
		ServiceUUID:       radio.ServiceUUID,
		Mode:              radio.RotatingPrivate,
		IntervalMinMillis: radio.FastIntervalMinMillis,
		IntervalMaxMillis: radio.FastIntervalMaxMillis,
		Tick:              20 * time.Millisecond,
	}
}

// Device reconciles button edges and radio events into one consistent state
// and projects it onto the LED panel.
type Device struct {
	opts  Options
	stack radio.Stack
	edges *button.Queue
	panel *led.Panel
	log   *slog.Logger

	st state
}

// New creates the device core. The panel is cleared and projected once so
// the LEDs match the boot state before the first tick.
func New(stack radio.Stack, edges *button.Queue, panel *led.Panel, opts Options, log *slog.Logger) *Device {
	if opts.Tick <= 0 {
		opts.Tick = 20 * time.Millisecond
	}
	if log == nil {
		log = slog.Default()
	}
	d := &Device{
		opts:  opts,
		stack: stack,
		edges: edges,
		panel: panel,
		log:   log,
		st:    state{mode: opts.Mode},
	}
	panel.AllOff()
	d.project()
	return d
}

// Phase reports the current lifecycle phase.
func (d *Device) Phase() Phase {
	return d.st.phase()
}

func (d *Device) project() {
	d.panel.Apply(led.Project(d.st.snapshot()))
}

// handleEdges applies one drained button snapshot.
func (d *Device) handleEdges(e button.Edges) {
	if e.Start {
		d.log.Info("start pressed, requesting advertising")
		d.st.advWanted = true
		if err := d.startAdvertising(); err != nil {
			d.log.Error("advertising start failed", "error", err)
		}
	}

	if e.Stop {
		d.log.Info("stop pressed")
		d.st.advWanted = false
		if d.st.connected {
			// The link is torn down asynchronously; the state changes only
			// when the disconnect event comes back.
			if err := d.stack.Disconnect(radio.ReasonRemoteUserTerminated); err != nil {
				d.log.Warn("disconnect request failed", "peer", d.st.peer, "error", err)
			}
		} else {
			d.stopAdvertising()
		}
	}

	if e.Toggle {
		if d.st.mode == radio.RotatingPrivate {
			d.st.mode = radio.StableIdentity
		} else {
			d.st.mode = radio.RotatingPrivate
		}
		d.log.Info("address mode toggled", "mode", d.st.mode)

		// Restart only if a broadcast is live; while connected the new mode
		// is recorded for the next advertising session.
		if d.st.advRunning {
			d.stopAdvertising()
			if err := d.startAdvertising(); err != nil {
				d.log.Error("advertising restart failed", "mode", d.st.mode, "error", err)
			}
		}
	}
}
