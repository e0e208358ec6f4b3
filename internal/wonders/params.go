package wonders

import (
	"math"
	"sort"

	"github.com/san-kum/wonders/internal/dynamo"
)

// param binds a tunable name to a field of a wonder.
type param struct {
	ptr      *float64
	min, max float64
	// onSet runs after a successful update.
	onSet func()
}

type paramSet map[string]param

func (p paramSet) GetParams() map[string]float64 {
	out := make(map[string]float64, len(p))
	for name, v := range p {
		out[name] = *v.ptr
	}
	return out
}

func (p paramSet) SetParam(name string, value float64) error {
	v, ok := p[name]
	if !ok {
		return dynamo.UnknownParam(name)
	}
	if err := dynamo.CheckParam(name, value, v.min, v.max); err != nil {
		return err
	}
	*v.ptr = value
	if v.onSet != nil {
		v.onSet()
	}
	return nil
}

func whole(v float64) int { return int(math.Round(v)) }

// ParamNames lists the tunable names of v, sorted. Wonders without
// parameters yield nil.
func ParamNames(v Visualizer) []string {
	cfg, ok := v.(dynamo.Configurable)
	if !ok {
		return nil
	}
	params := cfg.GetParams()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Nudge scales a parameter by factor and returns the value applied.
// Whole-number values move by at least one so counts and orders never
// stall.
func Nudge(v Visualizer, name string, factor float64) (float64, error) {
	cfg, ok := v.(dynamo.Configurable)
	if !ok {
		return 0, dynamo.UnknownParam(name)
	}
	cur, ok := cfg.GetParams()[name]
	if !ok {
		return 0, dynamo.UnknownParam(name)
	}
	next := cur * factor
	if cur == math.Trunc(cur) {
		next = math.Round(next)
		if next == cur {
			if factor >= 1 {
				next++
			} else {
				next--
			}
		}
	}
	if err := cfg.SetParam(name, next); err != nil {
		return cur, err
	}
	return next, nil
}
