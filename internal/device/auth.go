package device

import (
	"fmt"

	"github.com/awiooono/blebuttons/internal/radio"
)

// Pairing event handling. The stack runs the whole negotiation; this side
// only surfaces the passkey, auto-accepts "just works" confirmations, and
// keeps the passkey indicator honest across every terminal outcome.

func (d *Device) onPasskeyDisplay(ev radio.PasskeyDisplay) {
	// The printed code is what the user types on the peer.
	d.log.Info("passkey", "peer", ev.Peer, "code", fmt.Sprintf("%06d", ev.Passkey))
	d.st.passkeyShown = true
}

func (d *Device) onConfirmRequest(ev radio.ConfirmRequest) {
	d.log.Info("pairing confirm requested, accepting", "peer", ev.Peer)
	if err := d.stack.ConfirmPairing(ev.Peer); err != nil {
		d.log.Warn("pairing confirm failed", "peer", ev.Peer, "error", err)
	}
}

func (d *Device) onAuthCanceled(ev radio.AuthCanceled) {
	d.log.Warn("pairing cancelled", "peer", ev.Peer)
	d.st.passkeyShown = false
}

func (d *Device) onPairingDone(ev radio.PairingDone) {
	d.log.Info("pairing complete", "peer", ev.Peer, "bonded", ev.Bonded)
	d.st.passkeyShown = false
}

func (d *Device) onPairingFailed(ev radio.PairingFailed) {
	d.log.Error("pairing failed", "peer", ev.Peer, "reason", ev.Reason)
	d.st.passkeyShown = false
}
