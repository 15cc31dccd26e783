package sixdof

import (
	"errors"
	"math"
	"testing"

	"zappem.net/pub/kinematics/sixdof/ode"
	"zappem.net/pub/math/geom"
)

func TestGain(t *testing.T) {
	grid := ode.Span(0, 10, 10000)
	if k := Gain(grid); math.Abs(k-0.001) > 1e-12 {
		t.Errorf("gain: got=%v want=0.001", k)
	}
	if k := Gain(nil); k != 0 {
		t.Errorf("gain of empty grid: got=%v want=0", k)
	}
}

// TestVectorFieldPure confirms the state space function neither
// mutates its input nor depends on evaluation order.
func TestVectorFieldPure(t *testing.T) {
	r := unitArm(t)
	target := targetPose(t, r)
	f := r.VectorField(target, 0.001)

	y := []float64{0.01, -0.02, 0.03, 0, 0.05, -0.01}
	saved := append([]float64(nil), y...)
	a := f(3.7, y)
	f(0.2, []float64{1, 1, 1, 1, 1, 1})
	b := f(3.7, y)
	for i := range y {
		if y[i] != saved[i] {
			t.Fatalf("state mutated at %d: %v != %v", i, y[i], saved[i])
		}
		if a[i] != b[i] {
			t.Errorf("re-evaluation differs at %d: %v != %v", i, a[i], b[i])
		}
	}
}

// targetPose synthesizes the reference target from the fixed input
// configuration of 0.1 radians on every joint.
func targetPose(t *testing.T, r *Arm) Pose {
	t.Helper()
	in := make([]geom.Angle, Joints)
	for i := range in {
		in[i] = 0.1
	}
	ps := Decompose(mustForward(t, r, in).End())
	if len(ps) == 0 {
		t.Fatalf("input configuration decomposed to nothing")
	}
	return ps[0]
}

func TestSolveShape(t *testing.T) {
	r := unitArm(t)
	target := targetPose(t, r)
	grid := ode.Span(0, 1, 10)
	if _, err := r.Solve([]geom.Angle{0, 0}, target, grid, ode.Euler{}); !errors.Is(err, ErrShape) {
		t.Errorf("short joint vector should be rejected: %v", err)
	}
	if _, err := r.Solve(make([]geom.Angle, Joints), target, grid[:1], ode.Euler{}); !errors.Is(err, ErrShape) {
		t.Errorf("single sample grid should be rejected: %v", err)
	}
}

// TestSolveEndToEnd reproduces the reference scenario: unit links,
// all-zero start, target pose from the 0.1 radian input configuration
// and ten thousand samples over ten seconds. The trajectory's final
// pose error must come out smaller than its initial one; monotonic
// convergence is not required.
func TestSolveEndToEnd(t *testing.T) {
	r := unitArm(t)
	target := targetPose(t, r)
	grid := ode.Span(0, 10, 10000)

	tr, err := r.Solve(make([]geom.Angle, Joints), target, grid, ode.RK4{})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(tr) != len(grid) {
		t.Fatalf("trajectory length: got=%d want=%d", len(tr), len(grid))
	}
	for i, q := range tr[0] {
		if q != 0 {
			t.Fatalf("trajectory did not start at q0: joint %d is %v", i, q)
		}
	}

	errAt := func(q []geom.Angle) float64 {
		ps := Decompose(mustForward(t, r, q).End())
		if len(ps) == 0 {
			t.Fatalf("trajectory sample decomposed to nothing")
		}
		var s float64
		for _, v := range target.Sub(ps[0]) {
			s += v * v
		}
		return math.Sqrt(s)
	}
	first := errAt(tr[0])
	last := errAt(tr[len(tr)-1])
	if last >= first {
		t.Errorf("no net convergence: first error %v, final error %v", first, last)
	}
}
