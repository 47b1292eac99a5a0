package device

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/awiooono/blebuttons/internal/button"
	"github.com/awiooono/blebuttons/internal/led"
	"github.com/awiooono/blebuttons/internal/radio"
)

// waitFor polls cond until it holds or the deadline passes. The loop owns
// the device state, so assertions go through the mutex-guarded mock stack.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestRunDrivesTheTicker(t *testing.T) {
	stack := newMockStack()
	edges := &button.Queue{}
	pins := [4]*fakePin{{}, {}, {}, {}}
	panel := led.NewPanel(pins[0], pins[1], pins[2], pins[3])

	opts := DefaultOptions()
	opts.Tick = time.Millisecond

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dev := New(stack, edges, panel, opts, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		dev.Run(ctx)
		close(done)
	}()

	edges.Signal(button.Start)
	waitFor(t, func() bool { return len(stack.starts()) == 1 })

	stack.push(radio.Connected{Peer: "AA:BB"})
	// Wait for the loop to consume the connect event before pressing stop,
	// otherwise the stop edge lands in the same tick and is applied first.
	waitFor(t, func() bool { return len(stack.events) == 0 })

	edges.Signal(button.Stop)
	waitFor(t, func() bool { return len(stack.disconnectReasons()) == 1 })

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
