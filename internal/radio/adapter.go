package radio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"
)

// Adapter implements Stack on top of tinygo.org/x/bluetooth. It works on
// both the OS stacks (BlueZ, CoreBluetooth, WinRT) and the bare-metal
// SoftDevice backend; pairing events only arrive on backends that surface
// them, elsewhere the OS agent owns the pairing UI and those events simply
// never fire.
type Adapter struct {
	adapter *bluetooth.Adapter
	adv     *bluetooth.Advertisement
	events  chan Event

	mu          sync.Mutex
	advertising bool
	peer        bluetooth.Device
	havePeer    bool
}

// NewAdapter wraps the default bluetooth adapter. Call Enable before any
// other method.
func NewAdapter() *Adapter {
	return &Adapter{
		adapter: bluetooth.DefaultAdapter,
		events:  make(chan Event, 16),
	}
}

// Enable powers on the BLE stack and registers the connect handler. The
// handler must be registered before advertising starts.
func (a *Adapter) Enable() error {
	if err := a.adapter.Enable(); err != nil {
		return fmt.Errorf("radio: enable stack: %w", err)
	}
	a.adv = a.adapter.DefaultAdvertisement()

	if addr, err := a.adapter.Address(); err == nil {
		slog.Info("[radio] stack enabled", "address", addr.MAC.String())
	}
	// Bond keys live in the stack's own storage; pairing survives restarts
	// without any handling here.
	slog.Debug("[radio] bond persistence delegated to the stack")

	a.adapter.SetConnectHandler(func(device bluetooth.Device, connected bool) {
		peer := device.Address.String()
		if connected {
			a.mu.Lock()
			a.peer = device
			a.havePeer = true
			// The controller stops connectable advertising on its own when
			// a central connects; mirror that here.
			a.advertising = false
			a.mu.Unlock()
			a.deliver(Connected{Peer: peer})
			return
		}
		a.mu.Lock()
		a.havePeer = false
		a.mu.Unlock()
		// The backend does not report an HCI reason code; 0 stands in for
		// "not provided".
		a.deliver(Disconnected{Peer: peer})
	})
	return nil
}

// Advertise starts a connectable undirected broadcast carrying the service
// UUID in the primary payload and the local name in the scan response (the
// payload builder splits these itself).
func (a *Adapter) Advertise(opts Options) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.advertising {
		return ErrAlreadyAdvertising
	}

	uuid, err := bluetooth.ParseUUID(opts.ServiceUUID)
	if err != nil {
		return fmt.Errorf("radio: parse service UUID: %w", err)
	}
	intervalMin := opts.IntervalMin
	if intervalMin == 0 {
		intervalMin = FastIntervalMinMillis
	}

	if opts.Mode == StableIdentity && !identityAddressSupported() {
		slog.Warn("[radio] stack does not expose the address-privacy knob; advertising with the OS-configured identity", "mode", opts.Mode)
	}

	if err := a.adv.Configure(bluetooth.AdvertisementOptions{
		LocalName:    opts.LocalName,
		ServiceUUIDs: []bluetooth.UUID{uuid},
		Interval:     bluetooth.NewDuration(time.Duration(intervalMin) * time.Millisecond),
	}); err != nil {
		return fmt.Errorf("radio: configure advertisement: %w", err)
	}
	if err := a.adv.Start(); err != nil {
		return fmt.Errorf("radio: start advertisement: %w", err)
	}
	a.advertising = true
	return nil
}

// StopAdvertising stops the broadcast. The advertising flag is cleared even
// on a backend error; the worst case is a stale broadcast that the next
// start/stop cycle settles.
func (a *Adapter) StopAdvertising() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.adv.Stop()
	a.advertising = false
	if err != nil {
		return fmt.Errorf("radio: stop advertisement: %w", err)
	}
	return nil
}

// Disconnect requests teardown of the current link. The state change lands
// later as a Disconnected event.
func (a *Adapter) Disconnect(reason uint8) error {
	a.mu.Lock()
	peer, ok := a.peer, a.havePeer
	a.mu.Unlock()
	if !ok {
		return fmt.Errorf("radio: disconnect: no link")
	}
	// The portable API carries no reason code; it is fixed by the backend.
	_ = reason
	if err := peer.Disconnect(); err != nil {
		return fmt.Errorf("radio: disconnect: %w", err)
	}
	return nil
}

// ConfirmPairing accepts a pending "just works" confirmation.
// TODO: call the SoftDevice auth-key reply once tinygo.org/x/bluetooth
// exposes it; until then the stack auto-accepts and this is a no-op.
func (a *Adapter) ConfirmPairing(peer string) error {
	slog.Info("[radio] pairing confirmation accepted", "peer", peer)
	return nil
}

// Events delivers stack callbacks to the device loop.
func (a *Adapter) Events() <-chan Event {
	return a.events
}

func (a *Adapter) deliver(ev Event) {
	select {
	case a.events <- ev:
	default:
		slog.Warn("[radio] event channel full, dropping event")
	}
}

// identityAddressSupported reports whether the backend lets the application
// pick between a rotating private address and the fixed identity address.
// None of the portable backends expose it today.
func identityAddressSupported() bool {
	return false
}
