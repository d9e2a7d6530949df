package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
[spline]
kind = "curve"
points = [[0, 0], [0.5, 1], [1, 0]]

[sampler]
kind = "spatial"
max_length = 0.5
total = 100
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{writeScene(t, testScene)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var got output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, []float32{0, 0, 0.5, 1, 1, 0}, got.Points)
	assert.Equal(t, []float32{0.5, 1, 0.5, -1}, got.Handles)
	assert.Equal(t, []float32{0, 0, 0.25, 0.375, 0.5, 0.5, 0.75, 0.375, 1, 0}, got.Samples)
	assert.Len(t, got.Vectors, len(got.Samples))
	assert.Equal(t, 4, got.Segments)
	assert.Empty(t, stderr.String())
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", writeScene(t, testScene)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "sampling pass")
}

func TestRunFiles(t *testing.T) {
	path := writeScene(t, testScene)
	dir := t.TempDir()

	for _, name := range []string{"out.json", "out.svg", "out.png"} {
		out := filepath.Join(dir, name)
		var stdout, stderr bytes.Buffer
		code := run([]string{"-o", out, "-width", "64", "-height", "48", path}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "Written: "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		switch filepath.Ext(name) {
		case ".json":
			assert.True(t, json.Valid(data))
		case ".svg":
			assert.True(t, strings.HasPrefix(string(data), `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="48"`))
		case ".png":
			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 64, img.Bounds().Dx())
			assert.Equal(t, 48, img.Bounds().Dy())
		}
	}
}

func TestRunErrors(t *testing.T) {
	path := writeScene(t, testScene)
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no input", nil, 2, "Usage:"},
		{"two inputs", []string{path, path}, 2, "Unexpected argument"},
		{"missing output", []string{path, "-o"}, 2, "Missing value"},
		{"bad width", []string{"-width", "x", path}, 2, "Invalid value"},
		{"zero height", []string{"-height", "0", path}, 2, "Invalid value"},
		{"missing scene", []string{filepath.Join(t.TempDir(), "none.toml")}, 1, "Error"},
		{"invalid scene", []string{writeScene(t, "[sampler]\ntotal = 1\n")}, 1, "invalid scene"},
		{"tiny canvas", []string{"-width", "30", "-o", filepath.Join(t.TempDir(), "out.svg"), path}, 1, "leaves no room"},
		{"unknown format", []string{"-o", filepath.Join(t.TempDir(), "out.gif"), path}, 1, "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), tt.msg)
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Usage:")
}
