// Package sixdof computes forward and differential-inverse kinematics
// for a six degree-of-freedom serial manipulator described by fixed
// Denavit-Hartenberg parameters.
//
// The arm is a chain of six revolute joints. Each joint i carries a
// fixed DH row (theta offset, offset d along z, length a along x,
// twist alpha about x) built once from the six link lengths:
//
//	J1 = Rz(q1) Tz(l1) Rx(+pi/2)
//	J2 = Rz(q2) Tx(l2)
//	J3 = Rz(q3) Tx(l3) Rx(-pi/2)
//	J4 = Rz(q4) Tz(l4) Rx(-pi/2)
//	J5 = Rz(q5-pi/2) Rx(-pi/2)
//	J6 = Rz(q6) Tz(l5+l6)
//
// Forward kinematics chains these transforms into world frames, the
// geometric Jacobian relates joint velocities to end-effector motion,
// and Solve integrates a velocity control law over a time grid to
// steer the arm's pose toward a target.
package sixdof

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// Joints is the number of revolute joints in the arm.
const Joints = 6

// eps bounds how far from zero a computed value can stray and still
// be treated as zero by the numeric predicates of this package.
const eps = 1e-9

// Err* are the errors exported by this package.
var (
	ErrShape       = errors.New("structurally invalid input")
	ErrBadJoint    = errors.New("invalid joint")
	ErrNoCandidate = errors.New("no decomposition candidate")
)

// link holds the fixed Denavit-Hartenberg row for one joint.
type link struct {
	theta geom.Angle
	d     float64
	a     float64
	alpha geom.Angle
}

// Arm holds the fixed geometry of a six joint manipulator. An Arm is
// immutable after construction and safe for concurrent use.
type Arm struct {
	links [Joints]link
}

// NewArm builds an arm from its six link lengths. The lengths are
// folded into the fixed DH table; they are the only geometry the arm
// carries.
func NewArm(lengths ...float64) (*Arm, error) {
	if len(lengths) != Joints {
		return nil, fmt.Errorf("%w: require six link lengths not %d", ErrShape, len(lengths))
	}
	for i, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: link %d length %g is not positive", ErrShape, i+1, l)
		}
	}
	l1, l2, l3, l4, l5, l6 := lengths[0], lengths[1], lengths[2], lengths[3], lengths[4], lengths[5]
	right := geom.Degrees(90)
	return &Arm{links: [Joints]link{
		{0, l1, 0, right},
		{0, 0, l2, 0},
		{0, 0, l3, -right},
		{0, l4, 0, -right},
		{-right, 0, 0, -right},
		{0, l5 + l6, 0, 0},
	}}, nil
}

// Transform returns the homogeneous transform carrying frame i into
// frame i+1 for joint angle q. It is the closed form of the product
// Rz(q+theta) Tz(d) Tx(a) Rx(alpha); that composition order is part
// of the arm's geometry, not a representation choice.
func (r *Arm) Transform(i int, q geom.Angle) (mgl64.Mat4, error) {
	if i < 0 || i >= Joints {
		return mgl64.Mat4{}, fmt.Errorf("%w: joint %d", ErrBadJoint, i)
	}
	ln := r.links[i]
	th := q + ln.theta
	st, ct := th.S(), th.C()
	sa, ca := ln.alpha.S(), ln.alpha.C()
	return mgl64.Mat4FromRows(
		mgl64.Vec4{ct, -st * ca, st * sa, ln.a * ct},
		mgl64.Vec4{st, ct * ca, -ct * sa, ln.a * st},
		mgl64.Vec4{0, sa, ca, ln.d},
		mgl64.Vec4{0, 0, 0, 1},
	), nil
}
