package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Wonder != "lorenz" {
		t.Errorf("expected wonder lorenz, got %s", cfg.Wonder)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wonders.yaml")
	cfg := DefaultConfig()
	cfg.Wonder = "mandelbrot"
	cfg.Seed = 42
	cfg.SetParam("mandelbrot", "maxiter", 300)
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Wonder != "mandelbrot" || got.Seed != 42 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.ParamsFor("mandelbrot")["maxiter"] != 300 {
		t.Errorf("expected maxiter 300, got %v", got.ParamsFor("mandelbrot"))
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("wonder: koch\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Wonder != "koch" || cfg.Width != DefaultWidth || cfg.FPS != DefaultFPS {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParamsForIsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetParam("lorenz", "rho", 28)
	p := cfg.ParamsFor("lorenz")
	p["rho"] = 1
	if cfg.ParamsFor("lorenz")["rho"] != 28 {
		t.Error("ParamsFor leaked the underlying map")
	}
	if len(cfg.ParamsFor("koch")) != 0 {
		t.Error("expected no overrides for koch")
	}
}

func TestGetPreset(t *testing.T) {
	p, err := GetPreset("lorenz", "turbulent")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if p["rho"] != 99.96 {
		t.Errorf("expected rho 99.96, got %f", p["rho"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, err := GetPreset("lorenz", "nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if _, err := GetPreset("nonexistent", "classic"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetParam("hilbert", "speed", 9)
	if err := cfg.ApplyPreset("hilbert", "coarse"); err != nil {
		t.Fatal(err)
	}
	p := cfg.ParamsFor("hilbert")
	if p["order"] != 4 || p["speed"] != 0.2 {
		t.Errorf("unexpected params %v", p)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("lorenz")
	if len(presets) != 3 || presets[0] != "classic" {
		t.Errorf("expected sorted lorenz presets, got %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent wonder")
	}
}

func TestParseParam(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		value   float64
		wantErr bool
	}{
		{"rho=28", "rho", 28, false},
		{" MaxIter = 400 ", "maxiter", 400, false},
		{"dt=1e-3", "dt", 0.001, false},
		{"rho", "", 0, true},
		{"=3", "", 0, true},
		{"rho=fast", "", 0, true},
	}
	for _, tt := range tests {
		name, v, err := ParseParam(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("%q: expected ErrInvalid, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || name != tt.name || v != tt.value {
			t.Errorf("%q: expected %s=%v, got %s=%v (%v)", tt.in, tt.name, tt.value, name, v, err)
		}
	}
}
