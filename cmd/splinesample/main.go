// Command splinesample samples the spline described by a TOML scene and
// writes the result as JSON buffers, an SVG document or a PNG image.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/render"
	"honnef.co/go/spline/internal/scene"
)

const usage = `splinesample - sample a spline scene

Usage:
  splinesample [options] <scene.toml>

Options:
  -o <file>       Output file; the extension selects the format
                  (.json, .svg, .png). Default: JSON on stdout.
  -width <n>      Image width in pixels (default 800)
  -height <n>     Image height in pixels (default 600)
  -no-handles     Do not draw the spline's points in images
  -v              Log every sampling pass

Examples:
  splinesample scene.toml
  splinesample -o curve.svg scene.toml
  splinesample -width 1024 -height 1024 -o curve.png scene.toml
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// output is the JSON representation of the sampled buffers.
type output struct {
	Points   []float32 `json:"points"`
	Handles  []float32 `json:"handles"`
	Samples  []float32 `json:"samples"`
	Vectors  []float32 `json:"vectors"`
	Segments int       `json:"segments"`
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		input   string
		out     string
		verbose bool
	)
	opts := render.DefaultOptions()

	intArg := func(i int, name string) (int, bool) {
		if i >= len(args) {
			fmt.Fprintf(stderr, "Missing value for %s\n", name)
			return 0, false
		}
		n, err := strconv.Atoi(args[i])
		if err != nil || n <= 0 {
			fmt.Fprintf(stderr, "Invalid value for %s: %q\n", name, args[i])
			return 0, false
		}
		return n, true
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			fmt.Fprint(stdout, usage)
			return 0
		case "-o", "--output":
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "Missing value for %s\n", args[i])
				return 2
			}
			out = args[i+1]
			i++
		case "-width":
			n, ok := intArg(i+1, args[i])
			if !ok {
				return 2
			}
			opts.Width = n
			i++
		case "-height":
			n, ok := intArg(i+1, args[i])
			if !ok {
				return 2
			}
			opts.Height = n
			i++
		case "-no-handles":
			opts.Handles = false
		case "-v":
			verbose = true
		default:
			if input != "" {
				fmt.Fprintf(stderr, "Unexpected argument: %s\n", args[i])
				fmt.Fprint(stderr, usage)
				return 2
			}
			input = args[i]
		}
	}
	if input == "" {
		fmt.Fprint(stderr, usage)
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	spline.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer spline.SetLogger(nil)

	sc, err := scene.Load(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	s, err := sc.NewSampler()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	opts.Thickness = sc.Render.Thickness
	if out != "" && filepath.Ext(out) != ".json" {
		if err := opts.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	var b spline.Buffers
	b.Update(sc.NewSpline(), s)

	if out == "" {
		if err := writeJSON(stdout, &b); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	switch ext := filepath.Ext(out); ext {
	case ".json":
		err = writeJSON(f, &b)
	case ".svg":
		err = render.SVG(f, &b, opts)
	case ".png":
		err = render.PNG(f, &b, opts)
	default:
		err = fmt.Errorf("unknown output format %q", ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(out)
		fmt.Fprintf(stderr, "Error writing %s: %v\n", out, err)
		return 1
	}
	fmt.Fprintf(stdout, "Written: %s\n", out)
	return 0
}

func writeJSON(w io.Writer, b *spline.Buffers) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output{
		Points:   b.Points,
		Handles:  b.Handles,
		Samples:  b.Samples,
		Vectors:  b.Vectors,
		Segments: b.Segments(),
	})
}
