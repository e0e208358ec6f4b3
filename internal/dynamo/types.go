package dynamo

import (
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Control []float64

// System is an ODE right-hand side dX/dt = f(X, u, t).
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

// Configurable exposes named numeric parameters for runtime tuning.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// CheckParam validates a parameter update against a closed interval.
func CheckParam(name string, value, min, max float64) error {
	if math.IsNaN(value) || value < min || value > max {
		return &ParamError{Name: name, Value: value, Min: min, Max: max}
	}
	return nil
}
