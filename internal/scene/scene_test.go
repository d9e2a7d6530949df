package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spline"
)

const exampleScene = `
[spline]
kind = "spline"
degree = 2
continuity = 1
points = [[0, 0], [1, 1], [2, 1], [3, 0], [0, 0], [5, 1], [6, 0]]

[sampler]
kind = "constant"
resolution = 1
total = 3

[render]
thickness = 0.5
`

func TestDecode(t *testing.T) {
	sc, err := Decode(strings.NewReader(exampleScene))
	require.NoError(t, err)

	assert.Equal(t, KindSpline, sc.Spline.Kind)
	assert.Equal(t, 2, sc.Spline.Degree)
	assert.Equal(t, 1, sc.Spline.Continuity)
	assert.Len(t, sc.Spline.Points, 7)
	assert.Equal(t, 0.5, sc.Render.Thickness)
	// Omitted settings keep their defaults.
	assert.Equal(t, Default().Sampler.MaxAngle, sc.Sampler.MaxAngle)

	sp := sc.NewSpline()
	assert.Equal(t, 7, sp.Len())
	// The fifth point is derived by tangent continuity.
	assert.Equal(t, spline.Pt(4, -1), sp.Points()[4])

	s, err := sc.NewSampler()
	require.NoError(t, err)
	assert.Equal(t, []spline.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 0}}, sp.Sample(s))
}

func TestDecodeKinds(t *testing.T) {
	for kind, want := range map[string]spline.Spline{
		KindPolyline: &spline.Polyline{},
		KindCurve:    &spline.BezierCurve{},
		KindSpline:   spline.NewBezierSpline(2, 1),
	} {
		sc, err := Decode(strings.NewReader("[spline]\nkind = \"" + kind + "\"\npoints = [[0, 0], [1, 1]]\n"))
		require.NoError(t, err, kind)
		sp := sc.NewSpline()
		assert.IsType(t, want, sp, kind)
		assert.Equal(t, []spline.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, sp.Points(), kind)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"spline kind", "[spline]\nkind = \"nurbs\"\n"},
		{"degree", "[spline]\ndegree = -1\n"},
		{"continuity", "[spline]\ncontinuity = -2\n"},
		{"point", "[spline]\npoints = [[0, 0], [1]]\n"},
		{"sampler kind", "[sampler]\nkind = \"uniform\"\n"},
		{"total", "[sampler]\ntotal = 1\n"},
		{"max length", "[sampler]\nkind = \"spatial\"\nmax_length = 0.0\n"},
		{"thickness", "[render]\nthickness = -1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}

	_, err := Decode(strings.NewReader("[sampler]\nkind = \"uniform\"\n"))
	assert.ErrorIs(t, err, spline.ErrInvalidSampler)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("[spline\nkind = 1"))
	var derr *toml.DecodeError
	assert.ErrorAs(t, err, &derr)
	assert.Contains(t, err.Error(), "line ")

	_, err = Decode(strings.NewReader("[spline]\ncolour = \"red\"\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidScene))
}

func TestEncodeRoundTrip(t *testing.T) {
	sc := Default()
	sc.Spline.Points = [][]float64{{0, 0}, {0.5, 1}, {1, 0}}
	var buf bytes.Buffer
	require.NoError(t, sc.Encode(&buf))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sc, got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(exampleScene), 0o644))
	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "constant", sc.Sampler.Kind)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[render]\nthickness = -1.0\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidScene)
	assert.Contains(t, err.Error(), bad)
}
