package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS      = 60
	DefaultDuration = 10.0
	DefaultSeed     = 1
)

// Config describes one demo run. Nil parameter fields mean "use the
// demo's default"; only fields a file, preset or flag actually set are
// forwarded, so an explicit 0 (friction, launch height) survives.
type Config struct {
	Demo     string       `yaml:"demo"`
	Seed     int64        `yaml:"seed"`
	FPS      int          `yaml:"fps"`
	Duration float64      `yaml:"duration"`
	Params   ParamsConfig `yaml:"params"`
}

// ParamsConfig is the union of all demo parameters, mirrored by the
// CLI flags. Each demo reads only the names it knows.
type ParamsConfig struct {
	Length      *float64 `yaml:"length,omitempty"`
	Angle       *float64 `yaml:"angle,omitempty"`
	Gravity     *float64 `yaml:"gravity,omitempty"`
	Mass        *float64 `yaml:"mass,omitempty"`
	Friction    *float64 `yaml:"friction,omitempty"`
	Speed       *float64 `yaml:"speed,omitempty"`
	Height      *float64 `yaml:"height,omitempty"`
	Velocity    *float64 `yaml:"velocity,omitempty"`
	Accel       *float64 `yaml:"accel,omitempty"`
	Time        *float64 `yaml:"time,omitempty"`
	Amplitude   *float64 `yaml:"amplitude,omitempty"`
	Wavelength  *float64 `yaml:"wavelength,omitempty"`
	Frequency   *float64 `yaml:"frequency,omitempty"`
	Coulomb     *float64 `yaml:"coulomb,omitempty"`
	Restitution *float64 `yaml:"restitution,omitempty"`
}

// Param boxes a value for a ParamsConfig field.
func Param(v float64) *float64 { return &v }

func DefaultConfig() *Config {
	return &Config{
		Demo:     "pendulum",
		Seed:     DefaultSeed,
		FPS:      DefaultFPS,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParamMap returns the set parameters as name -> value pairs, using
// the names the demos accept in SetParam. Nil fields are absent.
func (c *Config) ParamMap() map[string]float64 {
	p := c.Params
	all := map[string]*float64{
		"length":      p.Length,
		"angle":       p.Angle,
		"gravity":     p.Gravity,
		"mass":        p.Mass,
		"friction":    p.Friction,
		"speed":       p.Speed,
		"height":      p.Height,
		"velocity":    p.Velocity,
		"accel":       p.Accel,
		"time":        p.Time,
		"amplitude":   p.Amplitude,
		"wavelength":  p.Wavelength,
		"frequency":   p.Frequency,
		"coulomb":     p.Coulomb,
		"restitution": p.Restitution,
	}
	set := make(map[string]float64)
	for name, v := range all {
		if v != nil {
			set[name] = *v
		}
	}
	return set
}
