package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	errUnknownOp = errors.New("unknown op")
	errArity     = errors.New("wrong number of inputs for op")
)

// op is an elementwise kernel over aligned input elements.
type op struct {
	arity int // -1 accepts any number of inputs
	fn    func(args []float64) float64
}

var ops = map[string]op{
	"add": {2, func(a []float64) float64 { return a[0] + a[1] }},
	"sub": {2, func(a []float64) float64 { return a[0] - a[1] }},
	"mul": {2, func(a []float64) float64 { return a[0] * a[1] }},
	"div": {2, func(a []float64) float64 { return a[0] / a[1] }},
	"min": {2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
	"max": {2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},
	"pow": {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"fma": {3, func(a []float64) float64 { return math.FMA(a[0], a[1], a[2]) }},
	"lerp": {3, func(a []float64) float64 {
		return a[0] + (a[1]-a[0])*a[2]
	}},
	// clamp(x, lo, hi)
	"clamp": {3, func(a []float64) float64 { return math.Min(math.Max(a[0], a[1]), a[2]) }},
	"sum": {-1, func(a []float64) float64 {
		s := 0.0
		for _, v := range a {
			s += v
		}
		return s
	}},
}

func lookupOp(name string, inputs int) (op, error) {
	o, ok := ops[name]
	if !ok {
		return op{}, fmt.Errorf("%w: %q (available: %v)", errUnknownOp, name, opNames())
	}
	if o.arity >= 0 && o.arity != inputs {
		return op{}, fmt.Errorf("%w: %s takes %d, got %d", errArity, name, o.arity, inputs)
	}
	return o, nil
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
