package device

import "github.com/awiooono/blebuttons/internal/radio"

// onConnected handles a stack connect callback. A failed attempt (non-zero
// status) is logged and otherwise ignored: no link is recorded.
func (d *Device) onConnected(ev radio.Connected) {
	if ev.Status != 0 {
		d.log.Error("connection failed", "peer", ev.Peer, "status", ev.Status)
		return
	}

	d.log.Info("connected", "peer", ev.Peer)
	d.st.peer = ev.Peer
	d.st.connected = true
	// The controller stops connectable advertising itself on connection
	// establishment; mirror that locally.
	d.st.advRunning = false
}

// onDisconnected releases the link exactly once regardless of reason, clears
// the passkey indicator unconditionally, and resumes advertising iff the
// user still wants it, with the address mode held at disconnect time.
func (d *Device) onDisconnected(ev radio.Disconnected) {
	d.log.Info("disconnected", "peer", ev.Peer, "reason", ev.Reason)

	if d.st.connected {
		d.st.connected = false
		d.st.peer = ""
	}
	d.st.passkeyShown = false

	if d.st.advWanted {
		d.log.Info("resuming advertising (user requested)")
		if err := d.startAdvertising(); err != nil {
			d.log.Error("advertising resume failed", "error", err)
		}
	}
}

func (d *Device) onSecurityChanged(ev radio.SecurityChanged) {
	d.log.Info("security changed", "peer", ev.Peer, "level", ev.Level, "err", ev.Err)
}
