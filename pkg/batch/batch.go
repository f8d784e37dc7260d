// Package batch evaluates triangle updates listed in a YAML case file.
//
// A case file looks like:
//
//	cases:
//	  - name: corner
//	    i: [0, 0, 0]
//	    j: [1, 0, 0]
//	    k: [0, 1, 0]
//	    j_polar: {distance: 1, angle: 0}
//	    k_polar: {distance: 1, angle: 1.5707963}
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gpcunfold/pkg/analysis"
	"github.com/philipparndt/gpcunfold/pkg/geodesic"
	"github.com/philipparndt/gpcunfold/pkg/geometry"
)

// PolarSpec is the YAML form of a polar coordinate
type PolarSpec struct {
	Distance float64 `yaml:"distance"`
	Angle    float64 `yaml:"angle"`
}

// Case is one update request
type Case struct {
	Name   string    `yaml:"name"`
	I      []float64 `yaml:"i,flow"`
	J      []float64 `yaml:"j,flow"`
	K      []float64 `yaml:"k,flow"`
	JPolar PolarSpec `yaml:"j_polar"`
	KPolar PolarSpec `yaml:"k_polar"`
}

type file struct {
	Cases []Case `yaml:"cases"`
}

// Outcome is the result of evaluating one case. Err is set when the case
// failed validation, in which case Result is zero.
type Outcome struct {
	Case   Case
	Result geodesic.Result
	Err    error
}

func toVector(name string, xyz []float64) (geometry.Vector3, error) {
	if len(xyz) != 3 {
		return geometry.Vector3{}, fmt.Errorf("point %s has %d coordinates, want 3", name, len(xyz))
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// Triangle converts the case's points
func (c Case) Triangle() (geodesic.Triangle, error) {
	i, err := toVector("i", c.I)
	if err != nil {
		return geodesic.Triangle{}, err
	}
	j, err := toVector("j", c.J)
	if err != nil {
		return geodesic.Triangle{}, err
	}
	k, err := toVector("k", c.K)
	if err != nil {
		return geodesic.Triangle{}, err
	}
	return geodesic.NewTriangle(i, j, k), nil
}

// Known returns the polar coordinates at J and K
func (c Case) Known() (geodesic.Polar, geodesic.Polar) {
	return geodesic.Polar{Distance: c.JPolar.Distance, Angle: c.JPolar.Angle},
		geodesic.Polar{Distance: c.KPolar.Distance, Angle: c.KPolar.Angle}
}

// Load reads a case file from disk
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open case file: %w", err)
	}
	defer f.Close()

	cases, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes a case file. Unknown keys are rejected.
func Parse(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode cases: %w", err)
	}

	for idx, c := range f.Cases {
		if _, err := c.Triangle(); err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", idx, c.Name, err)
		}
	}
	return f.Cases, nil
}

// Evaluate checks and solves a single case
func Evaluate(c Case, minArea float64) Outcome {
	tri, err := c.Triangle()
	if err != nil {
		return Outcome{Case: c, Err: err}
	}
	pj, pk := c.Known()
	if err := analysis.CheckUpdate(tri, pj, pk, minArea); err != nil {
		return Outcome{Case: c, Err: err}
	}
	return Outcome{Case: c, Result: geodesic.Solve(tri, pj, pk)}
}

// Run evaluates every case in order. Invalid cases do not stop the run.
func Run(cases []Case, minArea float64) []Outcome {
	outcomes := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		outcomes = append(outcomes, Evaluate(c, minArea))
	}
	return outcomes
}
