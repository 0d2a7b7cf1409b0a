package config

// Range bounds one slider-style parameter. The simulation core assumes
// pre-validated values; clamping happens here, at the input boundary.
type Range struct {
	Min, Max float64
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Ranges documents the accepted interval of every adjustable
// parameter, per demo.
var Ranges = map[string]map[string]Range{
	"pendulum": {
		"length":  {0.5, 5},
		"angle":   {1, 90},
		"gravity": {1, 25},
	},
	"incline": {
		"angle":    {5, 60},
		"mass":     {1, 20},
		"friction": {0, 1},
		"length":   {1, 100},
		"gravity":  {1, 25},
	},
	"projectile": {
		"speed":   {1, 100},
		"angle":   {1, 90},
		"height":  {0, 100},
		"gravity": {1, 25},
	},
	"uniform": {
		"velocity": {-50, 50},
		"time":     {1, 60},
	},
	"accelerated": {
		"velocity": {-50, 50},
		"accel":    {-10, 10},
		"time":     {1, 60},
	},
	"wave": {
		"amplitude":  {0.1, 5},
		"wavelength": {0.5, 10},
		"frequency":  {0.1, 5},
	},
	"particles": {
		"gravity":     {0, 1},
		"coulomb":     {0, 5},
		"restitution": {0, 1},
	},
}

// Clamp folds v into the documented range for the demo's parameter.
// Unknown demo/parameter names pass through unchanged.
func Clamp(demo, param string, v float64) float64 {
	params, ok := Ranges[demo]
	if !ok {
		return v
	}
	r, ok := params[param]
	if !ok {
		return v
	}
	return r.Clamp(v)
}
