package button

import (
	"sync"
	"testing"
)

func TestDrainReturnsAndClears(t *testing.T) {
	var q Queue
	q.Signal(Start)
	q.Signal(Toggle)

	got := q.DrainAndReset()
	if !got.Start || got.Stop || !got.Toggle {
		t.Errorf("first drain = %+v, want {Start:true Stop:false Toggle:true}", got)
	}

	got = q.DrainAndReset()
	if got.Any() {
		t.Errorf("second drain = %+v, want all clear", got)
	}
}

func TestRepeatedPressesCoalesce(t *testing.T) {
	var q Queue
	for i := 0; i < 5; i++ {
		q.Signal(Stop)
	}

	got := q.DrainAndReset()
	if !got.Stop {
		t.Fatal("Stop latch not set")
	}
	if q.DrainAndReset().Any() {
		t.Error("coalesced presses left a residual latch")
	}
}

func TestSignalIsSafeFromManyGoroutines(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Signal(Button(i % 3))
		}(i)
	}
	wg.Wait()

	got := q.DrainAndReset()
	if !got.Start || !got.Stop || !got.Toggle {
		t.Errorf("drain = %+v, want all three set", got)
	}
}

type recordingBinder struct {
	fires map[Button]func()
}

func (r *recordingBinder) Bind(b Button, fire func()) error {
	r.fires[b] = fire
	return nil
}

func TestBindAllWiresEveryButton(t *testing.T) {
	var q Queue
	binder := &recordingBinder{fires: make(map[Button]func())}
	if err := BindAll(binder, &q); err != nil {
		t.Fatalf("BindAll() error = %v", err)
	}
	if len(binder.fires) != 3 {
		t.Fatalf("bound %d buttons, want 3", len(binder.fires))
	}

	binder.fires[Toggle]()
	got := q.DrainAndReset()
	if got.Start || got.Stop || !got.Toggle {
		t.Errorf("drain after toggle fire = %+v, want only Toggle", got)
	}
}
