package config

import "sort"

var Presets = map[string]map[string]*Config{
	"pendulum": {
		"slow": {
			Demo: "pendulum", Duration: 30,
			Params: ParamsConfig{Length: Param(4.0), Angle: Param(20), Gravity: Param(9.81)},
		},
		"wide": {
			Demo: "pendulum", Duration: 30,
			Params: ParamsConfig{Length: Param(1.0), Angle: Param(85), Gravity: Param(9.81)},
		},
		"moon": {
			Demo: "pendulum", Duration: 30,
			Params: ParamsConfig{Length: Param(1.0), Angle: Param(30), Gravity: Param(1.62)},
		},
	},
	"incline": {
		"slick": {
			Demo: "incline", Duration: 10,
			Params: ParamsConfig{Angle: Param(30), Mass: Param(5), Friction: Param(0.05), Length: Param(20)},
		},
		"sticky": {
			Demo: "incline", Duration: 10,
			Params: ParamsConfig{Angle: Param(20), Mass: Param(10), Friction: Param(0.9), Length: Param(20)},
		},
		"frictionless": {
			Demo: "incline", Duration: 10,
			Params: ParamsConfig{Angle: Param(30), Mass: Param(5), Friction: Param(0), Length: Param(20)},
		},
		"steep": {
			Demo: "incline", Duration: 10,
			Params: ParamsConfig{Angle: Param(60), Mass: Param(2), Friction: Param(0.3), Length: Param(50)},
		},
	},
	"projectile": {
		"optimal": {
			Demo: "projectile", Duration: 12,
			Params: ParamsConfig{Speed: Param(50), Angle: Param(45)},
		},
		"mortar": {
			Demo: "projectile", Duration: 15,
			Params: ParamsConfig{Speed: Param(60), Angle: Param(80)},
		},
		"cliff": {
			Demo: "projectile", Duration: 12,
			Params: ParamsConfig{Speed: Param(30), Angle: Param(10), Height: Param(80)},
		},
	},
	"particles": {
		"gas": {
			Demo: "particles", Duration: 30,
			Params: ParamsConfig{Gravity: Param(0), Coulomb: Param(3), Restitution: Param(0.95)},
		},
		"cluster": {
			Demo: "particles", Duration: 30,
			Params: ParamsConfig{Gravity: Param(0.8), Coulomb: Param(0.5), Restitution: Param(0.6)},
		},
	},
	"wave": {
		"gentle": {
			Demo: "wave", Duration: 20,
			Params: ParamsConfig{Amplitude: Param(1), Wavelength: Param(4), Frequency: Param(0.25)},
		},
		"choppy": {
			Demo: "wave", Duration: 20,
			Params: ParamsConfig{Amplitude: Param(2), Wavelength: Param(1), Frequency: Param(2)},
		},
	},
}

func GetPreset(demo, preset string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	cfg, ok := demoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for a demo, sorted.
func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
