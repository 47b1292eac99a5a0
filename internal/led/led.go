// Package led projects device state onto the four indicator LEDs.
// LED0: advertising, LED1: connected, LED2: rotating-RPA mode,
// LED3: passkey in progress.
package led

// Pin drives one boolean output line.
type Pin interface {
	Set(on bool)
}

// Lights is the projected value of all four indicators.
type Lights struct {
	Advertising bool
	Connected   bool
	RotatingRPA bool
	Passkey     bool
}

// Snapshot is the slice of device state the projection reads.
type Snapshot struct {
	Advertising bool
	Connected   bool
	RotatingRPA bool
	Passkey     bool
}

// Project maps a state snapshot to indicator values. Pure; the same snapshot
// always yields the same lights.
func Project(s Snapshot) Lights {
	return Lights{
		Advertising: s.Advertising,
		Connected:   s.Connected,
		RotatingRPA: s.RotatingRPA,
		Passkey:     s.Passkey,
	}
}

// Panel applies Lights to physical pins.
type Panel struct {
	pins [4]Pin
}

// NewPanel wires the four indicator pins, in LED0..LED3 order.
func NewPanel(adv, conn, mode, passkey Pin) *Panel {
	return &Panel{pins: [4]Pin{adv, conn, mode, passkey}}
}

// Apply drives every pin to the projected value.
func (p *Panel) Apply(l Lights) {
	p.pins[0].Set(l.Advertising)
	p.pins[1].Set(l.Connected)
	p.pins[2].Set(l.RotatingRPA)
	p.pins[3].Set(l.Passkey)
}

// AllOff clears every indicator. Called once at boot before the first
// projection.
func (p *Panel) AllOff() {
	for _, pin := range p.pins {
		pin.Set(false)
	}
}
