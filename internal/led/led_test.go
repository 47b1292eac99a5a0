package led

import "testing"

type fakePin struct {
	on   bool
	sets int
}

func (p *fakePin) Set(on bool) {
	p.on = on
	p.sets++
}

func TestProjectMapsEveryField(t *testing.T) {
	tests := []struct {
		name string
		in   Snapshot
		want Lights
	}{
		{"all off", Snapshot{}, Lights{}},
		{"advertising", Snapshot{Advertising: true, RotatingRPA: true}, Lights{Advertising: true, RotatingRPA: true}},
		{"connected with passkey", Snapshot{Connected: true, Passkey: true}, Lights{Connected: true, Passkey: true}},
		{"stable identity while advertising", Snapshot{Advertising: true}, Lights{Advertising: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Project(tt.in); got != tt.want {
				t.Errorf("Project(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPanelApply(t *testing.T) {
	pins := [4]*fakePin{{}, {}, {}, {}}
	panel := NewPanel(pins[0], pins[1], pins[2], pins[3])

	panel.Apply(Lights{Advertising: true, RotatingRPA: true})

	want := [4]bool{true, false, true, false}
	for i, pin := range pins {
		if pin.on != want[i] {
			t.Errorf("LED%d = %v, want %v", i, pin.on, want[i])
		}
	}
}

func TestPanelAllOff(t *testing.T) {
	pins := [4]*fakePin{{on: true}, {on: true}, {on: true}, {on: true}}
	panel := NewPanel(pins[0], pins[1], pins[2], pins[3])

	panel.AllOff()

	for i, pin := range pins {
		if pin.on {
			t.Errorf("LED%d still on after AllOff", i)
		}
	}
}
