// Program sixdofsim drives a six axis arm from a starting
// configuration toward the pose of a reference configuration using
// differential inverse kinematics, and plots the joint trajectories.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"zappem.net/pub/kinematics/sixdof"
	"zappem.net/pub/kinematics/sixdof/ode"
	"zappem.net/pub/math/geom"
)

var (
	length = flag.Float64("length", 1, "uniform link length")
	input  = flag.Float64("input", 0.1, "per joint angle (rad) of the reference configuration that defines the target pose")
	t0     = flag.Float64("t0", 0, "start of the integration window (s)")
	tf     = flag.Float64("tf", 10, "end of the integration window (s)")
	steps  = flag.Int("steps", 10000, "number of time grid samples")
	out    = flag.String("out", "joints.png", "file to plot the joint trajectories to")
)

// norm is the magnitude of a six component pose delta.
func norm(d []float64) float64 {
	var s float64
	for _, v := range d {
		s += v * v
	}
	return math.Sqrt(s)
}

func main() {
	flag.Parse()

	var lengths []float64
	for i := 0; i < sixdof.Joints; i++ {
		lengths = append(lengths, *length)
	}
	arm, err := sixdof.NewArm(lengths...)
	if err != nil {
		log.Fatalf("failed to define arm: %v", err)
	}

	ref := make([]geom.Angle, sixdof.Joints)
	q0 := make([]geom.Angle, sixdof.Joints)
	for i := range ref {
		ref[i] = geom.Angle(*input)
	}
	fs, err := arm.Forward(ref)
	if err != nil {
		log.Fatalf("reference kinematics: %v", err)
	}
	ps := sixdof.Decompose(fs.End())
	if len(ps) == 0 {
		log.Fatalf("reference pose is degenerate; pick another -input")
	}
	target := ps[0]

	grid := ode.Span(*t0, *tf, *steps)
	tr, err := arm.Solve(q0, target, grid, ode.RK4{})
	if err != nil {
		log.Fatalf("solve failed: %v", err)
	}

	report := func(tag string, q []geom.Angle) {
		fs, err := arm.Forward(q)
		if err != nil {
			log.Fatalf("%s kinematics: %v", tag, err)
		}
		j, err := sixdof.Jacobian(fs)
		if err != nil {
			log.Fatalf("%s jacobian: %v", tag, err)
		}
		if cs := sixdof.Decompose(fs.End()); len(cs) != 0 {
			log.Printf("%s pose error %.6f singular=%v", tag, norm(target.Sub(cs[0])), sixdof.Singular(j))
		} else {
			log.Printf("%s pose degenerate singular=%v", tag, sixdof.Singular(j))
		}
	}
	report("initial", tr[0])
	report("final", tr[len(tr)-1])

	p := plot.New()
	p.Title.Text = "Joint angles during configuration change"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Joint angles (rad)"
	for j := 0; j < sixdof.Joints; j++ {
		xys := make(plotter.XYs, len(grid))
		for i := range grid {
			xys[i].X = grid[i]
			xys[i].Y = float64(tr[i][j])
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			log.Fatalf("failed to trace joint %d: %v", j, err)
		}
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("joint %d", j), line)
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		log.Fatalf("failed to save %q: %v", *out, err)
	}
	log.Printf("wrote %q", *out)
}
