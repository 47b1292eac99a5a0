// Package button captures the three momentary buttons as pending-event
// latches. Interrupt-context producers set a bit; the device loop drains all
// three at once. Rapid repeated presses before a drain coalesce into one —
// the latches carry "pressed since last look", not a press count.
package button

import "sync/atomic"

// Button identifies one of the three physical buttons.
type Button int

const (
	// Start requests advertising.
	Start Button = iota
	// Stop stops advertising, or disconnects when a link is up.
	Stop
	// Toggle flips the address-privacy mode.
	Toggle
)

func (b Button) String() string {
	switch b {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Toggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Edges is one drained snapshot of the latches.
type Edges struct {
	Start  bool
	Stop   bool
	Toggle bool
}

// Any reports whether at least one edge fired.
func (e Edges) Any() bool {
	return e.Start || e.Stop || e.Toggle
}

// Queue holds the three latches. The zero value is ready to use.
type Queue struct {
	start  atomic.Bool
	stop   atomic.Bool
	toggle atomic.Bool
}

// Signal sets one latch. Safe to call from any goroutine or interrupt
// handler; it never blocks and never fails.
func (q *Queue) Signal(b Button) {
	switch b {
	case Start:
		q.start.Store(true)
	case Stop:
		q.stop.Store(true)
	case Toggle:
		q.toggle.Store(true)
	}
}

// DrainAndReset reads and clears all three latches, returning their prior
// values. Only the device loop calls this.
func (q *Queue) DrainAndReset() Edges {
	return Edges{
		Start:  q.start.Swap(false),
		Stop:   q.stop.Swap(false),
		Toggle: q.toggle.Swap(false),
	}
}

// Binder attaches a press callback to a physical edge source: a GPIO pin
// interrupt on the MCU build, a key reader on the OS build.
type Binder interface {
	Bind(b Button, fire func()) error
}

// BindAll wires every button on src to q.Signal.
func BindAll(src Binder, q *Queue) error {
	for _, b := range []Button{Start, Stop, Toggle} {
		b := b
		if err := src.Bind(b, func() { q.Signal(b) }); err != nil {
			return err
		}
	}
	return nil
}
