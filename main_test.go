package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/recursive_art/pkg/engine"
)

func TestRunRecipeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.bmp")
	recipe := filepath.Join(dir, "recipe.json")

	var out bytes.Buffer
	err := run([]string{"-width", "12", "-height", "9", "-seed", "3", "-format", "json", "-recipe", recipe, first}, &out, io.Discard)
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, int64(108), report.Pixels)
	assert.Equal(t, first, report.Output)
	assert.FileExists(t, first)
	assert.FileExists(t, recipe)

	out.Reset()
	err = run([]string{"-width", "4", "-height", "4", "-from", recipe, second}, &out, io.Discard)
	require.NoError(t, err)
	assert.FileExists(t, second)
	assert.Contains(t, out.String(), report.Channels[0].Expr)
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "art.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width = 5\nheight = 5\nformat = \"json\"\n"), 0o644))

	var out bytes.Buffer
	// flags win over the file
	err := run([]string{"-config", cfgPath, "-height", "3", filepath.Join(dir, "a.png")}, &out, io.Discard)
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 5, report.Width)
	assert.Equal(t, 3, report.Height)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	assert.Error(t, run([]string{"-width", "0", filepath.Join(dir, "a.png")}, &out, io.Discard))
	assert.Error(t, run([]string{filepath.Join(dir, "a.xyz")}, &out, io.Discard))
	assert.Error(t, run([]string{filepath.Join(dir, "missing", "a.png")}, &out, io.Discard))
	assert.Error(t, run([]string{"a.png", "b.png"}, &out, io.Discard))
	assert.Error(t, run([]string{"-from", filepath.Join(dir, "none.json"), filepath.Join(dir, "a.png")}, &out, io.Discard))
}

func TestRunJSONStdoutOnly(t *testing.T) {
	dir := t.TempDir()
	recipe := filepath.Join(dir, "recipe.json")

	var out, status bytes.Buffer
	err := run([]string{"-width", "6", "-height", "4", "-seed", "9", "-format", "json", "-recipe", recipe, filepath.Join(dir, "a.png")}, &out, &status)
	require.NoError(t, err)

	dec := json.NewDecoder(&out)
	dec.DisallowUnknownFields()
	var report engine.Report
	require.NoError(t, dec.Decode(&report))
	assert.False(t, dec.More(), "trailing output after the JSON report")

	assert.Contains(t, status.String(), "Wrote recipe")
	assert.Contains(t, status.String(), "seed 9")
}

func TestRunFromKeepsRecipeSeed(t *testing.T) {
	dir := t.TempDir()
	recipe := filepath.Join(dir, "recipe.json")

	var out bytes.Buffer
	err := run([]string{"-width", "5", "-height", "5", "-seed", "31", "-recipe", recipe, filepath.Join(dir, "a.png")}, &out, io.Discard)
	require.NoError(t, err)

	out.Reset()
	again := filepath.Join(dir, "again.json")
	err = run([]string{"-width", "3", "-height", "3", "-format", "json", "-from", recipe, "-recipe", again, filepath.Join(dir, "b.png")}, &out, io.Discard)
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, int64(31), report.Seed)

	f, err := os.Open(again)
	require.NoError(t, err)
	defer f.Close()
	_, written, err := engine.ReadRecipe(f)
	require.NoError(t, err)
	assert.Equal(t, int64(31), written.Seed)
}
