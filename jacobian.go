package sixdof

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Jacobian builds the 6x6 geometric Jacobian for a frame chain.
// Column i couples joint i to the end effector: the top three rows
// are z_i x (o_ee - o_i), the linear velocity each unit of joint
// speed induces, and the bottom three rows are the joint axis z_i
// itself. The angular rule holds because every joint is revolute.
func Jacobian(fs Frames) (*mat.Dense, error) {
	if len(fs) != Joints+1 {
		return nil, fmt.Errorf("%w: require %d frames not %d", ErrShape, Joints+1, len(fs))
	}
	oe := origin(fs.End())
	j := mat.NewDense(Joints, Joints, nil)
	for i := 0; i < Joints; i++ {
		z := axis(fs[i])
		lin := z.Cross(oe.Sub(origin(fs[i])))
		for r := 0; r < 3; r++ {
			j.Set(r, i, lin[r])
			j.Set(r+3, i, z[r])
		}
	}
	return j, nil
}

// Singular reports whether the Jacobian determinant is within eps of
// zero, meaning the arm has lost one or more degrees of freedom at
// the evaluated configuration. A singular Jacobian degrades the
// accuracy of velocity commands derived from it; it is not in itself
// a failure.
func Singular(j *mat.Dense) bool {
	return math.Abs(mat.Det(j)) < eps
}
