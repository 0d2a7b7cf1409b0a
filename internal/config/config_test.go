package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Demo != "pendulum" {
		t.Errorf("expected demo pendulum, got %s", cfg.Demo)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Demo = "incline"
	cfg.Params.Angle = Param(42)
	cfg.Params.Friction = Param(0.3)

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Demo != "incline" {
		t.Errorf("expected demo incline, got %s", loaded.Demo)
	}
	if loaded.Params.Angle == nil || *loaded.Params.Angle != 42 {
		t.Errorf("angle lost in round trip: %+v", loaded.Params)
	}
	if loaded.Params.Friction == nil || *loaded.Params.Friction != 0.3 {
		t.Errorf("friction lost in round trip: %+v", loaded.Params)
	}
	if loaded.Params.Mass != nil {
		t.Errorf("unset param resurrected in round trip: %+v", loaded.Params)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParamMapSkipsUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Length = Param(2.0)
	cfg.Params.Angle = Param(15)

	m := cfg.ParamMap()
	if len(m) != 2 {
		t.Errorf("expected 2 set params, got %d: %v", len(m), m)
	}
	if m["length"] != 2.0 || m["angle"] != 15 {
		t.Errorf("unexpected param map: %v", m)
	}
}

func TestParamMapKeepsExplicitZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	yaml := "demo: incline\nparams:\n  angle: 30\n  friction: 0\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	m := cfg.ParamMap()
	v, ok := m["friction"]
	if !ok {
		t.Fatalf("friction: 0 dropped from param map: %v", m)
	}
	if v != 0 {
		t.Errorf("expected friction 0, got %v", v)
	}
	if _, ok := m["mass"]; ok {
		t.Errorf("unset mass appeared in param map: %v", m)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "moon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Gravity == nil || *cfg.Params.Gravity != 1.62 {
		t.Errorf("expected lunar gravity, got %+v", cfg.Params.Gravity)
	}

	if GetPreset("pendulum", "nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("nonexistent", "moon") != nil {
		t.Error("expected nil for unknown demo")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("projectile")
	if len(names) == 0 {
		t.Error("expected presets for projectile")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown demo")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		demo, param string
		in, out     float64
	}{
		{"pendulum", "length", 0.1, 0.5},
		{"pendulum", "length", 99, 5},
		{"pendulum", "length", 2, 2},
		{"pendulum", "angle", 0, 1},
		{"pendulum", "angle", 120, 90},
		{"incline", "friction", -0.5, 0},
		{"incline", "friction", 2, 1},
		{"particles", "coulomb", 7, 5},
		{"particles", "gravity", -1, 0},
		{"unknown", "param", 123, 123},
		{"pendulum", "unknown", -7, -7},
	}

	for _, tt := range tests {
		if got := Clamp(tt.demo, tt.param, tt.in); got != tt.out {
			t.Errorf("Clamp(%s, %s, %v) = %v, want %v", tt.demo, tt.param, tt.in, got, tt.out)
		}
	}
}
