// Package ode integrates small systems of first order ordinary
// differential equations across a fixed time grid, returning one
// state per grid sample.
package ode

import (
	"errors"
	"fmt"
)

// Func is a first order vector field: given a time and a state it
// returns the state derivative. An integrator may evaluate it at
// times and states between grid samples and in any order, so it must
// be free of side effects and must not retain its arguments.
type Func func(t float64, y []float64) []float64

// Integrator steps a vector field across a time grid. Integrate
// returns one state per grid sample, the first being a copy of y0.
type Integrator interface {
	Integrate(f Func, y0 []float64, ts []float64) ([][]float64, error)
}

// ErrGrid is returned for time grids too short to integrate over.
var ErrGrid = errors.New("need at least two time samples")

// Span returns n evenly spaced time samples from t0 to tf inclusive.
func Span(t0, tf float64, n int) []float64 {
	ts := make([]float64, n)
	if n == 1 {
		ts[0] = t0
		return ts
	}
	dt := (tf - t0) / float64(n-1)
	for i := range ts {
		ts[i] = t0 + float64(i)*dt
	}
	return ts
}

// step returns y advanced along the derivative d by h.
func step(y, d []float64, h float64) []float64 {
	out := make([]float64, len(y))
	for k := range out {
		out[k] = y[k] + h*d[k]
	}
	return out
}

// Euler is the explicit first order integrator. It is cheap and
// adequate for dense grids.
type Euler struct{}

// Integrate implements Integrator.
func (Euler) Integrate(f Func, y0 []float64, ts []float64) ([][]float64, error) {
	if len(ts) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGrid, len(ts))
	}
	ys := make([][]float64, len(ts))
	ys[0] = append([]float64(nil), y0...)
	for i := 1; i < len(ts); i++ {
		h := ts[i] - ts[i-1]
		ys[i] = step(ys[i-1], f(ts[i-1], ys[i-1]), h)
	}
	return ys, nil
}

// RK4 is the classic fourth order Runge-Kutta integrator.
type RK4 struct{}

// Integrate implements Integrator.
func (RK4) Integrate(f Func, y0 []float64, ts []float64) ([][]float64, error) {
	if len(ts) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGrid, len(ts))
	}
	ys := make([][]float64, len(ts))
	ys[0] = append([]float64(nil), y0...)
	for i := 1; i < len(ts); i++ {
		t, y := ts[i-1], ys[i-1]
		h := ts[i] - t
		k1 := f(t, y)
		k2 := f(t+h/2, step(y, k1, h/2))
		k3 := f(t+h/2, step(y, k2, h/2))
		k4 := f(t+h, step(y, k3, h))
		out := make([]float64, len(y))
		for k := range out {
			out[k] = y[k] + h*(k1[k]+2*k2[k]+2*k3[k]+k4[k])/6
		}
		ys[i] = out
	}
	return ys, nil
}
