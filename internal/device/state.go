package device

import (
	"github.com/awiooono/blebuttons/internal/led"
	"github.com/awiooono/blebuttons/internal/radio"
)

// Phase is the connection lifecycle state derived from the state fields.
type Phase int

const (
	// Idle: no link, not advertising.
	Idle Phase = iota
	// Advertising: no link, broadcasting connectable advertisements.
	Advertising
	// Connected: one link held; never advertising at the same time.
	Connected
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Advertising:
		return "advertising"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// state is the single source of truth for what the device is doing. Only the
// reconciliation loop mutates it; stack callbacks reach it as queued events.
type state struct {
	peer      string // empty means no link
	connected bool

	advRunning bool // the stack is broadcasting right now
	advWanted  bool // user intent; survives disconnects, drives auto-resume

	mode radio.AddressMode

	passkeyShown bool
}

func (s *state) phase() Phase {
	switch {
	case s.connected:
		return Connected
	case s.advRunning:
		return Advertising
	default:
		return Idle
	}
}

func (s *state) snapshot() led.Snapshot {
	return led.Snapshot{
		Advertising: s.advRunning,
		Connected:   s.connected,
		RotatingRPA: s.mode == radio.RotatingPrivate,
		Passkey:     s.passkeyShown,
	}
}
