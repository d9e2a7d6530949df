// Package scene loads spline scenes from TOML files.
//
// A scene names a spline model with its points, the sampler used to turn
// it into a polyline, and rendering settings:
//
//	[spline]
//	kind = "spline"
//	degree = 2
//	continuity = 1
//	points = [[0, 0], [1, 1], [2, 1], [3, 0]]
//
//	[sampler]
//	kind = "curvature"
//	total = 256
//	max_angle = 5.0
//	max_distance = 0.01
//
//	[render]
//	thickness = 0.02
//
// Omitted settings keep the values of [Default].
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/spline"
)

// Spline kinds.
const (
	KindPolyline = "polyline"
	KindCurve    = "curve"
	KindSpline   = "spline"
)

// ErrInvalidScene is returned for scenes that decode but cannot be built.
var ErrInvalidScene = errors.New("invalid scene")

type Scene struct {
	Spline  Spline  `toml:"spline"`
	Sampler Sampler `toml:"sampler"`
	Render  Render  `toml:"render"`
}

type Spline struct {
	// Kind is one of "polyline", "curve" and "spline".
	Kind string `toml:"kind"`
	// Degree is the number of control points per segment of a spline.
	Degree int `toml:"degree"`
	// Continuity is the continuity level of a spline.
	Continuity int `toml:"continuity"`
	// Points are pushed in order, each as [x, y].
	Points [][]float64 `toml:"points"`
}

type Sampler struct {
	// Kind is one of "constant", "spatial" and "curvature".
	Kind        string  `toml:"kind"`
	Resolution  int     `toml:"resolution"`
	Total       int     `toml:"total"`
	MaxLength   float64 `toml:"max_length"`
	MaxAngle    float64 `toml:"max_angle"`
	MaxDistance float64 `toml:"max_distance"`
}

type Render struct {
	// Thickness is the line width in curve units.
	Thickness float64 `toml:"thickness"`
}

// Default returns the scene settings used for omitted values. It has no
// points.
func Default() Scene {
	return Scene{
		Spline: Spline{
			Kind:       KindSpline,
			Degree:     2,
			Continuity: 1,
		},
		Sampler: Sampler{
			Kind:        spline.CurvatureKind.String(),
			Resolution:  5,
			Total:       256,
			MaxLength:   0.05,
			MaxAngle:    5,
			MaxDistance: 0.01,
		},
		Render: Render{
			Thickness: 0.01,
		},
	}
}

// Load reads and validates the scene stored at path.
func Load(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()
	sc, err := Decode(f)
	if err != nil {
		return Scene{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return sc, nil
}

// Decode reads and validates a scene. Unknown keys are rejected.
func Decode(r io.Reader) (Scene, error) {
	sc := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Scene{}, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return Scene{}, err
	}
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// Encode writes sc as TOML.
func (sc Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(sc)
}

// Validate checks that sc describes a spline and a sampler that can be
// built.
func (sc Scene) Validate() error {
	switch sc.Spline.Kind {
	case KindPolyline, KindCurve, KindSpline:
	default:
		return fmt.Errorf("%w: unknown spline kind %q", ErrInvalidScene, sc.Spline.Kind)
	}
	if sc.Spline.Degree < 0 {
		return fmt.Errorf("%w: degree must not be negative, got %d", ErrInvalidScene, sc.Spline.Degree)
	}
	if sc.Spline.Continuity < 0 {
		return fmt.Errorf("%w: continuity must not be negative, got %d", ErrInvalidScene, sc.Spline.Continuity)
	}
	for i, p := range sc.Spline.Points {
		if len(p) != 2 {
			return fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrInvalidScene, i, len(p))
		}
	}
	if !(sc.Render.Thickness >= 0) {
		return fmt.Errorf("%w: thickness must not be negative, got %g", ErrInvalidScene, sc.Render.Thickness)
	}
	if _, err := sc.SamplerConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}

// Points returns the scene's points.
func (sc Scene) Points() []spline.Point {
	out := make([]spline.Point, len(sc.Spline.Points))
	for i, p := range sc.Spline.Points {
		out[i] = spline.Pt(p[0], p[1])
	}
	return out
}

// NewSpline returns the spline model described by sc, with all points
// pushed. sc must be valid.
func (sc Scene) NewSpline() spline.Spline {
	var sp spline.Spline
	switch sc.Spline.Kind {
	case KindPolyline:
		sp = &spline.Polyline{}
	case KindCurve:
		sp = &spline.BezierCurve{}
	default:
		sp = spline.NewBezierSpline(sc.Spline.Degree, sc.Spline.Continuity)
	}
	sp.Set(sc.Points())
	return sp
}

// SamplerConfig converts the sampler settings and validates them.
func (sc Scene) SamplerConfig() (spline.SamplerConfig, error) {
	kind, err := spline.ParseSamplerKind(sc.Sampler.Kind)
	if err != nil {
		return spline.SamplerConfig{}, err
	}
	cfg := spline.SamplerConfig{
		Kind:        kind,
		Resolution:  sc.Sampler.Resolution,
		Total:       sc.Sampler.Total,
		MaxLength:   sc.Sampler.MaxLength,
		MaxAngle:    sc.Sampler.MaxAngle,
		MaxDistance: sc.Sampler.MaxDistance,
	}
	return cfg, cfg.Validate()
}

// NewSampler returns the sampler described by sc.
func (sc Scene) NewSampler() (spline.Sampler, error) {
	cfg, err := sc.SamplerConfig()
	if err != nil {
		return nil, err
	}
	return cfg.New()
}
