package sixdof

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"zappem.net/pub/kinematics/sixdof/ode"
	"zappem.net/pub/math/geom"
)

// Gain derives the pose error scaling constant from an integration
// grid: the grid span divided by the sample count. The control law
// ties its proportional gain to the grid resolution, so this one
// constant serves as both the discretization step and the gain; it is
// the solver's single tunable.
func Gain(grid []float64) float64 {
	if len(grid) < 2 {
		return 0
	}
	return (grid[len(grid)-1] - grid[0]) / float64(len(grid))
}

// VectorField returns the state space function f(t, q) whose integral
// steers the arm's pose toward target. Every evaluation runs the
// forward kinematics, the Jacobian and the pose decomposition afresh
// and returns J (target - pose) * gain as the joint velocity. The
// closure captures only the arm, the target and the gain, so an
// integrator is free to evaluate it at arbitrary intermediate states
// and non-monotonic times.
//
// A state whose orientation cannot be decomposed yields zero
// velocity. A singular Jacobian is used as-is and can command
// unstable velocities; inspect with Singular if that matters to the
// caller.
func (r *Arm) VectorField(target Pose, gain float64) ode.Func {
	return func(t float64, y []float64) []float64 {
		dq := make([]float64, len(y))
		q := make([]geom.Angle, len(y))
		for i, v := range y {
			q[i] = geom.Angle(v)
		}
		fs, err := r.Forward(q)
		if err != nil {
			// Shapes are validated before integration starts.
			return dq
		}
		j, err := Jacobian(fs)
		if err != nil {
			return dq
		}
		ps := Decompose(fs.End())
		if len(ps) == 0 {
			// Degenerate orientation: no pose error to steer by.
			return dq
		}
		d := target.Sub(ps[0])
		for i := range d {
			d[i] *= gain
		}
		var v mat.VecDense
		v.MulVec(j, mat.NewVecDense(Joints, d))
		for i := range dq {
			dq[i] = v.AtVec(i)
		}
		return dq
	}
}

// Solve integrates the differential inverse kinematics from the
// initial configuration q0 across grid, stepping the vector field
// with itg, and returns one joint configuration per grid sample.
//
// There is no convergence check: the solver always runs the whole
// grid and returns whatever trajectory results, including one that
// never approaches the target.
func (r *Arm) Solve(q0 []geom.Angle, target Pose, grid []float64, itg ode.Integrator) ([][]geom.Angle, error) {
	if len(q0) != Joints {
		return nil, fmt.Errorf("%w: require six joint angles not %d", ErrShape, len(q0))
	}
	if len(grid) < 2 {
		return nil, fmt.Errorf("%w: require at least two grid samples not %d", ErrShape, len(grid))
	}
	y0 := make([]float64, Joints)
	for i, q := range q0 {
		y0[i] = float64(q)
	}
	ys, err := itg.Integrate(r.VectorField(target, Gain(grid)), y0, grid)
	if err != nil {
		return nil, err
	}
	tr := make([][]geom.Angle, len(ys))
	for i, y := range ys {
		tr[i] = make([]geom.Angle, Joints)
		for k, v := range y {
			tr[i][k] = geom.Angle(v)
		}
	}
	return tr, nil
}
