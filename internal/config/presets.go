package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets are named parameter sets per wonder.
var Presets = map[string]map[string]map[string]float64{
	"lorenz": {
		"classic":   {"sigma": 10, "rho": 28, "beta": 8.0 / 3.0, "dt": 0.008},
		"turbulent": {"rho": 99.96, "dt": 0.004, "steps": 10},
		"smooth":    {"integrator": 1, "dt": 0.01},
	},
	"mandelbrot": {
		"seahorse": {"centerx": -0.745, "centery": 0.1, "scale": 12000, "maxiter": 400},
		"elephant": {"centerx": 0.282, "centery": 0.01, "scale": 6000, "maxiter": 300},
		"sharp":    {"renderscale": 1},
	},
	"poincare": {
		"dense": {"geodesics": 180, "segments": 40},
	},
	"blackhole": {
		"edge-on": {"lensing": 24000, "speed": 0.5},
		"calm":    {"speed": 0.2, "flare": 0},
	},
	"riemann": {
		"fine": {"rings": 24, "spokes": 90},
	},
	"covering": {
		"five": {"sheets": 5},
	},
	"klein": {
		"rapids": {"flow": 4},
	},
	"hilbert": {
		"coarse": {"order": 4, "speed": 0.2},
		"fine":   {"order": 7, "speed": 4},
	},
	"peano": {
		"fine": {"order": 4, "speed": 3},
	},
	"koch": {
		"slow": {"period": 6000},
	},
}

func GetPreset(wonder, preset string) (map[string]float64, error) {
	p, ok := Presets[wonder][preset]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownPreset, wonder, preset)
	}
	return p, nil
}

// ListPresets returns the preset names for a wonder, sorted.
func ListPresets(wonder string) []string {
	wonderPresets, ok := Presets[wonder]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(wonderPresets))
	for name := range wonderPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
