package sixdof

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// Pose is a cartesian position together with a three angle
// decomposition of an orientation: rotations about the fixed x, y and
// z axes applied in that order.
type Pose struct {
	V mgl64.Vec3
	A [3]geom.Angle
}

// Sub returns the six component difference p minus o: three position
// deltas followed by three angle deltas.
func (p Pose) Sub(o Pose) []float64 {
	d := p.V.Sub(o.V)
	return []float64{
		d[0], d[1], d[2],
		float64(p.A[0] - o.A[0]),
		float64(p.A[1] - o.A[1]),
		float64(p.A[2] - o.A[2]),
	}
}

// Decompose extracts the position and orientation angles of a
// homogeneous transform. For most orientations two angle triples
// reproduce the rotation block, one for each sign branch m2 of the
// decomposition; both are returned with the m2=-1 branch first. When
// the [0,2] entry of the rotation block is within eps of zero the
// branch is degenerate under this convention and contributes no
// candidate, so the result may be empty. Callers must check the
// length before indexing.
func Decompose(t mgl64.Mat4) []Pose {
	v := origin(t)
	var ps []Pose
	for _, m2 := range []float64{-1, 1} {
		if a, ok := branch(t, m2); ok {
			ps = append(ps, Pose{V: v, A: a})
		}
	}
	return ps
}

// branch solves one sign branch of the orientation decomposition.
func branch(t mgl64.Mat4, m2 float64) ([3]geom.Angle, bool) {
	if math.Abs(t.At(0, 2)) < eps {
		return [3]geom.Angle{}, false
	}
	a3 := geom.Angle(math.Atan2(-t.At(0, 1)*m2, t.At(0, 0)*m2))
	c3 := a3.C()
	var a2 geom.Angle
	if math.Abs(c3) >= eps {
		a2 = geom.Angle(math.Atan2(t.At(0, 2), t.At(0, 0)/c3))
	} else {
		s3 := a3.S()
		a2 = geom.Angle(math.Atan2(t.At(0, 2), t.At(0, 1)/-s3))
	}
	c2 := a2.C()
	a1 := geom.Angle(math.Atan2(-t.At(1, 2)/c2, t.At(2, 2)/c2))
	return [3]geom.Angle{a1, a2, a3}, true
}

// Compose rebuilds the homogeneous transform a pose describes. It is
// the inverse of Decompose up to the branch choice.
func Compose(p Pose) mgl64.Mat4 {
	return mgl64.Translate3D(p.V.X(), p.V.Y(), p.V.Z()).
		Mul4(mgl64.HomogRotate3DX(float64(p.A[0]))).
		Mul4(mgl64.HomogRotate3DY(float64(p.A[1]))).
		Mul4(mgl64.HomogRotate3DZ(float64(p.A[2])))
}

// Closest picks the candidate pose whose angles are nearest to ref,
// weighting all angles equally. Use it to keep a trajectory of
// decompositions on one branch. It returns ErrNoCandidate if ps is
// empty.
func Closest(ref Pose, ps []Pose) (int, error) {
	best := -1
	var bestD float64
	for i, p := range ps {
		var d float64
		for k, a := range p.A {
			e := float64(a - ref.A[k])
			d += e * e
		}
		if best == -1 || d < bestD {
			best, bestD = i, d
		}
	}
	if best == -1 {
		return best, ErrNoCandidate
	}
	return best, nil
}
