package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gpcunfold/pkg/analysis"
	"github.com/philipparndt/gpcunfold/pkg/geometry"
	"github.com/philipparndt/gpcunfold/pkg/stl"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestUpdateCommand(t *testing.T) {
	out, err := execute(t, "update",
		"--i", "0,0,0", "--j", "1,0,0", "--k", "0,1,0",
		"--uj", "1", "--uk", "1", "--thetak", "1.5707963267948966",
		"--precision", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "u=1.4142 θ=0.7854 rad")
	assert.Contains(t, out, "[interior]")
}

func TestUpdateCommandDegrees(t *testing.T) {
	out, err := execute(t, "update",
		"--i", "0,0,0", "--j", "1,0,0", "--k", "0,1,0",
		"--uj", "5", "--uk", "1", "--thetaj", "0.3", "--thetak", "1.5707963267948966",
		"--degrees", "--precision", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "u=2.0 θ=90.0°")
	assert.Contains(t, out, "[no-intersection]")
}

func TestUpdateCommandRejectsDegenerateTriangle(t *testing.T) {
	_, err := execute(t, "update",
		"--i", "0,0,0", "--j", "1,0,0", "--k", "2,0,0",
		"--uj", "1", "--uk", "2")
	assert.ErrorIs(t, err, analysis.ErrDegenerateTriangle)
}

func TestUpdateCommandRejectsShortPoint(t *testing.T) {
	_, err := execute(t, "update",
		"--i", "0,0", "--j", "1,0,0", "--k", "0,1,0",
		"--uj", "1", "--uk", "1")
	assert.Error(t, err)
}

func TestUpdateCommandRequiresDistances(t *testing.T) {
	_, err := execute(t, "update", "--i", "0,0,0", "--j", "1,0,0", "--k", "0,1,0")
	assert.Error(t, err)
}

func TestAngleCommand(t *testing.T) {
	out, err := execute(t, "angle", "--v1", "1,0,0", "--v2", "0,3,0", "--degrees", "--precision", "1")
	require.NoError(t, err)
	assert.Equal(t, "90.0°\n", out)

	_, err = execute(t, "angle", "--v1", "0,0,0", "--v2", "0,3,0")
	assert.Error(t, err)
}

func writeCases(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBatchCommandYAML(t *testing.T) {
	path := writeCases(t, `cases:
  - name: corner
    i: [0, 0, 0]
    j: [1, 0, 0]
    k: [0, 1, 0]
    j_polar: {distance: 1, angle: 0}
    k_polar: {distance: 1, angle: 1.5707963267948966}
`)

	out, err := execute(t, "batch", path, "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Name     string  `yaml:"name"`
			Distance float64 `yaml:"distance"`
			Branch   string  `yaml:"branch"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "corner", doc.Results[0].Name)
	assert.Equal(t, "interior", doc.Results[0].Branch)
	assert.InDelta(t, 1.41421356, doc.Results[0].Distance, 1e-6)
}

func TestBatchCommandReportsFailures(t *testing.T) {
	path := writeCases(t, `cases:
  - name: good
    i: [0, 0, 0]
    j: [1, 0, 0]
    k: [0, 1, 0]
    j_polar: {distance: 1, angle: 0}
    k_polar: {distance: 1, angle: 1}
  - name: same-jk
    i: [0, 0, 0]
    j: [1, 0, 0]
    k: [1, 0, 0]
    j_polar: {distance: 1, angle: 0}
    k_polar: {distance: 1, angle: 1}
`)

	out, err := execute(t, "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 case(s) failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[interior]")
	assert.Contains(t, lines[1], "coincident vertices")
}

func writeModel(t *testing.T, triangles ...geometry.Triangle) string {
	t.Helper()
	model := stl.NewModel("test")
	for _, tri := range triangles {
		model.AddTriangle(tri)
	}

	var buf bytes.Buffer
	require.NoError(t, stl.WriteBinary(&buf, model))
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestFacetCommand(t *testing.T) {
	path := writeModel(t,
		geometry.NewTriangle(
			geometry.NewVector3(0, 0, 1),
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(0, 1, 0),
		),
		geometry.NewTriangle(
			geometry.NewVector3(0, 0, 1),
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(1, 1, 0),
			geometry.NewVector3(0, 1, 0),
		),
	)

	out, err := execute(t, "facet", path, "--index", "0",
		"--uj", "1", "--uk", "1", "--thetak", "1.5707963267948966", "--precision", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "facet 0")
	assert.Contains(t, out, "u=1.4142 θ=0.7854 rad")

	// Solving for the third vertex of facet 1 makes J=(1,0,0) and K=(1,1,0).
	out, err = execute(t, "facet", path, "--index", "1", "--solve", "3",
		"--uj", "5", "--uk", "1", "--thetaj", "0.5", "--thetak", "2", "--precision", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "u=2.000 θ=2.000 rad")

	_, err = execute(t, "facet", path, "--index", "2", "--uj", "1", "--uk", "1")
	assert.Error(t, err)

	_, err = execute(t, "facet", path, "--solve", "4", "--uj", "1", "--uk", "1")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	path := writeModel(t,
		geometry.NewTriangle(
			geometry.Vector3{},
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(3, 0, 0),
			geometry.NewVector3(0, 4, 0),
		),
		geometry.NewTriangle(
			geometry.Vector3{},
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(2, 0, 0),
		),
	)

	out, err := execute(t, "info", path, "--precision", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Triangles: 2")
	assert.Contains(t, out, "Surface Area: 6.00 square units")
	assert.Contains(t, out, "Degenerate facets: 1")
	assert.Contains(t, out, "  #1")
}
