// Package radio is the boundary to the BLE stack. It exposes the handful of
// requests the device logic makes (advertise, stop, disconnect, confirm
// pairing) and delivers every stack callback as a value on a single event
// channel, so the device loop is the only place that touches shared state.
package radio

import (
	"errors"
	"fmt"
)

// Advertising identity for the demo device.
const (
	// ServiceUUID is carried in the primary advertising payload.
	ServiceUUID = "00002222-0000-1000-8000-00805f9b34fb"

	// ReasonRemoteUserTerminated is the HCI reason code sent with a
	// user-initiated disconnect request.
	ReasonRemoteUserTerminated uint8 = 0x13
)

// AddressMode selects how the device identifies itself on air.
type AddressMode int

const (
	// RotatingPrivate advertises with a resolvable private address that the
	// stack rotates periodically.
	RotatingPrivate AddressMode = iota
	// StableIdentity advertises with the fixed identity address.
	StableIdentity
)

func (m AddressMode) String() string {
	switch m {
	case RotatingPrivate:
		return "rotating-rpa"
	case StableIdentity:
		return "stable-identity"
	default:
		return fmt.Sprintf("AddressMode(%d)", int(m))
	}
}

// Options configures a connectable undirected advertisement.
type Options struct {
	LocalName   string
	ServiceUUID string
	Mode        AddressMode
	// IntervalMin/Max bound the advertising interval in milliseconds.
	// Zero values fall back to the fast-advertising range.
	IntervalMin uint32
	IntervalMax uint32
}

// Fast-advertising interval range in milliseconds.
const (
	FastIntervalMinMillis = 100
	FastIntervalMaxMillis = 150
)

// ErrAlreadyAdvertising is reported by Stack.Advertise when the stack is
// already broadcasting. Callers fold it into success; IsAlreadyAdvertising
// names that classification so the policy is assertable.
var ErrAlreadyAdvertising = errors.New("radio: already advertising")

// IsAlreadyAdvertising reports whether err means the stack was already in
// the requested advertising state, which the device treats as success.
func IsAlreadyAdvertising(err error) bool {
	return errors.Is(err, ErrAlreadyAdvertising)
}

// Stack is the request side of the BLE stack boundary.
type Stack interface {
	// Advertise starts connectable undirected advertising. It returns
	// ErrAlreadyAdvertising if a broadcast is already running.
	Advertise(opts Options) error
	// StopAdvertising stops the broadcast. Best-effort; an error means the
	// stack rejected the request, not that advertising is known to continue.
	StopAdvertising() error
	// Disconnect asks the stack to tear down the current link with the given
	// HCI reason code. The teardown completes asynchronously via a
	// Disconnected event.
	Disconnect(reason uint8) error
	// ConfirmPairing accepts a pending "just works" confirmation request
	// from the given peer.
	ConfirmPairing(peer string) error
	// Events delivers connection and pairing callbacks from the stack's own
	// execution context. The channel is never closed.
	Events() <-chan Event
}

// Event is a stack callback delivered to the device loop.
type Event interface{ isEvent() }

// Connected reports a connection attempt. Status 0 is success; any other
// value means the attempt failed and no link exists.
type Connected struct {
	Peer   string
	Status uint8
}

// Disconnected reports loss of the link.
type Disconnected struct {
	Peer   string
	Reason uint8
}

// SecurityChanged reports a link security level change.
type SecurityChanged struct {
	Peer  string
	Level uint8
	Err   uint8
}

// PasskeyDisplay asks the device to surface a 6-digit passkey for entry on
// the peer.
type PasskeyDisplay struct {
	Peer    string
	Passkey uint32
}

// ConfirmRequest asks the device to accept or reject a "just works" pairing.
type ConfirmRequest struct {
	Peer string
}

// AuthCanceled reports that the stack abandoned an in-progress pairing.
type AuthCanceled struct {
	Peer string
}

// PairingDone reports a successfully completed pairing.
type PairingDone struct {
	Peer   string
	Bonded bool
}

// PairingFailed reports a terminally failed pairing.
type PairingFailed struct {
	Peer   string
	Reason uint8
}

func (Connected) isEvent()       {}
func (Disconnected) isEvent()    {}
func (SecurityChanged) isEvent() {}
func (PasskeyDisplay) isEvent()  {}
func (ConfirmRequest) isEvent()  {}
func (AuthCanceled) isEvent()    {}
func (PairingDone) isEvent()     {}
func (PairingFailed) isEvent()   {}
