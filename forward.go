package sixdof

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// Frames is the chain of world coordinate frames for a posed arm: the
// identity base frame followed by one accumulated frame per joint.
// Frame i is the product of the per-joint transforms 0..i-1.
type Frames []mgl64.Mat4

// End returns the end-effector frame of the chain.
func (f Frames) End() mgl64.Mat4 {
	return f[len(f)-1]
}

// axis returns the rotation axis (third rotation column) of a frame.
func axis(t mgl64.Mat4) mgl64.Vec3 {
	return t.Col(2).Vec3()
}

// origin returns the translation of a frame.
func origin(t mgl64.Mat4) mgl64.Vec3 {
	return t.Col(3).Vec3()
}

// Forward evaluates the forward kinematics for the joint angles j and
// returns the full frame chain, freshly allocated. It is a pure
// function of j: no state of the arm changes and no result aliases a
// previous one.
func (r *Arm) Forward(j []geom.Angle) (Frames, error) {
	if len(j) != Joints {
		return nil, fmt.Errorf("%w: require six joint angles not %d", ErrShape, len(j))
	}
	fs := make(Frames, Joints+1)
	fs[0] = mgl64.Ident4()
	for i, q := range j {
		t, err := r.Transform(i, q)
		if err != nil {
			return nil, err
		}
		fs[i+1] = fs[i].Mul4(t)
	}
	return fs, nil
}
