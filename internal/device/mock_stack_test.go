package device

import (
	"sync"

	"github.com/awiooono/blebuttons/internal/radio"
)

// mockStack records every request and lets tests inject events and failures.
type mockStack struct {
	mu sync.Mutex

	events chan radio.Event

	startCalls  []radio.Options
	stopCalls   int
	disconnects []uint8
	confirms    []string

	startErr error // returned by the next Advertise call, then cleared
	stopErr  error // returned by every StopAdvertising call
}

func newMockStack() *mockStack {
	return &mockStack{events: make(chan radio.Event, 16)}
}

func (m *mockStack) Advertise(opts radio.Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.startErr; err != nil {
		m.startErr = nil
		return err
	}
	m.startCalls = append(m.startCalls, opts)
	return nil
}

func (m *mockStack) StopAdvertising() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	return m.stopErr
}

func (m *mockStack) Disconnect(reason uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disconnects = append(m.disconnects, reason)
	return nil
}

func (m *mockStack) ConfirmPairing(peer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirms = append(m.confirms, peer)
	return nil
}

func (m *mockStack) Events() <-chan radio.Event {
	return m.events
}

// push queues an event as if the stack's callback context delivered it.
func (m *mockStack) push(ev radio.Event) {
	m.events <- ev
}

func (m *mockStack) starts() []radio.Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]radio.Options, len(m.startCalls))
	copy(out, m.startCalls)
	return out
}

func (m *mockStack) stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

func (m *mockStack) disconnectReasons() []uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint8, len(m.disconnects))
	copy(out, m.disconnects)
	return out
}
