package physics

import (
	"fmt"
	"math"
)

// Wave is the traveling-wave demo: y(x, t) = A*sin(2*pi*(x/lambda - f*t)).
// Purely analytic; stepping only advances time. Runs until paused.
type Wave struct {
	Amplitude  float64 // m
	Wavelength float64 // m
	Frequency  float64 // Hz

	t float64
}

func NewWave() *Wave {
	return &Wave{
		Amplitude:  1.0,
		Wavelength: 2.0,
		Frequency:  0.5,
	}
}

func (w *Wave) Reset()        { w.t = 0 }
func (w *Wave) Step(dt float64) { w.t += dt }
func (w *Wave) Finished() bool  { return false }

func (w *Wave) Time() float64 { return w.t }

// Sample returns the displacement at position x at the current time.
func (w *Wave) Sample(x float64) float64 {
	return w.Amplitude * math.Sin(2*math.Pi*(x/w.Wavelength-w.Frequency*w.t))
}

// Profile samples the wave at n evenly spaced positions across span.
// Fewer than two positions cannot span an interval; nil is returned.
func (w *Wave) Profile(n int, span float64) []float64 {
	if n < 2 {
		return nil
	}
	ys := make([]float64, n)
	for i := range ys {
		x := span * float64(i) / float64(n-1)
		ys[i] = w.Sample(x)
	}
	return ys
}

// Speed returns the propagation speed lambda*f.
func (w *Wave) Speed() float64 { return w.Wavelength * w.Frequency }

func (w *Wave) Params() map[string]float64 {
	return map[string]float64{
		"amplitude":  w.Amplitude,
		"wavelength": w.Wavelength,
		"frequency":  w.Frequency,
	}
}

func (w *Wave) SetParam(name string, value float64) error {
	switch name {
	case "amplitude":
		w.Amplitude = value
	case "wavelength":
		w.Wavelength = value
	case "frequency":
		w.Frequency = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (w *Wave) Vector() []float64 { return []float64{w.Sample(0)} }
func (w *Wave) Labels() []string  { return []string{"y0"} }
