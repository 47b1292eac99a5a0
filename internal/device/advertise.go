package device

import "github.com/awiooono/blebuttons/internal/radio"

// startAdvertising requests a connectable broadcast with the current address
// mode. Idempotent: a held link or an already-running broadcast is success,
// and the stack's own "already advertising" answer is folded into success by
// radio.IsAlreadyAdvertising. A real start failure is returned with the
// running flag left false; no retry happens here.
func (d *Device) startAdvertising() error {
	if d.st.connected {
		d.log.Info("already connected, not starting advertising")
		return nil
	}
	if d.st.advRunning {
		d.log.Info("already advertising, not restarting")
		return nil
	}

	err := d.stack.Advertise(radio.Options{
		LocalName:   d.opts.DeviceName,
		ServiceUUID: d.opts.ServiceUUID,
		Mode:        d.st.mode,
		IntervalMin: d.opts.IntervalMinMillis,
		IntervalMax: d.opts.IntervalMaxMillis,
	})
	if err != nil {
		if radio.IsAlreadyAdvertising(err) {
			d.log.Info("stack reports advertising already running")
			d.st.advRunning = true
			return nil
		}
		return err
	}

	d.st.advRunning = true
	d.log.Info("advertising started", "mode", d.st.mode, "name", d.opts.DeviceName)
	return nil
}

// stopAdvertising is best-effort: the running flag clears no matter what the
// stack answers. A rejected stop leaves at worst a stale broadcast that the
// next start/stop cycle settles.
func (d *Device) stopAdvertising() {
	if err := d.stack.StopAdvertising(); err != nil {
		d.log.Warn("advertising stop failed", "error", err)
	} else {
		d.log.Info("advertising stopped")
	}
	d.st.advRunning = false
}
