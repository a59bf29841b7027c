// Package anim drives per-frame uniform values.
package anim

// Oscillator walks Value back and forth between Min and Max by Step per frame.
// The direction flips only after Value has crossed a bound, so it overshoots
// by at most one step.
type Oscillator struct {
	Value float32
	Step  float32
	Min   float32
	Max   float32

	dir float32
}

// NewOscillator starts at min, moving up.
func NewOscillator(min, max, step float32) *Oscillator {
	return &Oscillator{Value: min, Step: step, Min: min, Max: max, dir: 1}
}

// Next returns the current value and advances by one step.
func (o *Oscillator) Next() float32 {
	if o.dir == 0 {
		o.dir = 1
	}
	v := o.Value
	switch {
	case v > o.Max:
		o.dir = -1
	case v < o.Min:
		o.dir = 1
	}
	o.Value += o.dir * o.Step
	return v
}
