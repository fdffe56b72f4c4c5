package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func resetFlags(t *testing.T) {
	t.Helper()
	*dataFileName = ""
	*mapFileName = ""
	*printWKT = false
	*engine = "dijkstra"
	*exportCSV = ""
	*metricsFile = ""
}

func TestRunQueries(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	*mapFileName = filepath.Join(dir, "map.geojson")
	*metricsFile = filepath.Join(dir, "cityroute.prom")
	*printWKT = true

	in := strings.NewReader("Bishkek\nOsh\nAtlantis\nBishkek\nBishkek\nKant")
	var out bytes.Buffer
	require.NoError(t, run(in, &out, zap.NewNop()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "PUTI Logistic Application!\nCities we operate in:\n"))
	assert.Contains(t, text, "Bishkek --> Osh 600km")
	assert.Contains(t, text, "Enter the start city: ")
	assert.Contains(t, text, "Shortest path: Bishkek -> Osh (length 390)\nBishkek -> Tokmok -> Kant -> Osh\nLINESTRING(")
	assert.Contains(t, text, "City should exist. You can add the city.")
	assert.Contains(t, text, "Shortest path: Bishkek -> Kant (length 90)")

	b, err := os.ReadFile(*mapFileName)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(b)
	require.NoError(t, err)
	highlighted := fc.Features[len(fc.Features)-1]
	assert.True(t, highlighted.PropertyMustBool("highlight"))
	assert.Len(t, highlighted.Geometry.LineString, 3, "map must show the last found path")

	metrics, err := os.ReadFile(*metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `cityroute_queries_total{result="found"} 2`)
	assert.Contains(t, string(metrics), `cityroute_queries_total{result="invalid_node"} 1`)
}

func TestRunYAMLDatasetWithContraction(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	*dataFileName = filepath.Join(dir, "chui.yml")
	*engine = "ch"
	*exportCSV = filepath.Join(dir, "chui.csv")
	data := `title: Chui
cities:
  - {name: Bishkek, lat: 42.87, lon: 74.59}
  - {name: Tokmok, lat: 42.84, lon: 75.29}
  - {name: Kant, lat: 42.89, lon: 74.85}
  - {name: Karakol, lat: 42.48, lon: 78.39}
routes:
  - {from: Bishkek, to: Tokmok, distance: 70}
  - {from: Tokmok, to: Kant, distance: 20}
`
	require.NoError(t, os.WriteFile(*dataFileName, []byte(data), 0644))

	in := strings.NewReader("Kant\nBishkek\nBishkek\nKarakol\n")
	var out bytes.Buffer
	require.NoError(t, run(in, &out, zap.NewNop()))

	assert.Contains(t, out.String(), "Shortest path: Kant -> Bishkek (length 90)")
	assert.Contains(t, out.String(), "No path from Bishkek to Karakol.")
	assert.FileExists(t, filepath.Join(dir, "chui_cities.csv"))
	assert.FileExists(t, filepath.Join(dir, "chui_routes.csv"))
}

func TestRunBadDataset(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	*dataFileName = filepath.Join(dir, "broken.yaml")
	data := `cities:
  - {name: Bishkek, lat: 42.87, lon: 74.59}
routes:
  - {from: Bishkek, to: Atlantis, distance: 1}
`
	require.NoError(t, os.WriteFile(*dataFileName, []byte(data), 0644))

	err := run(strings.NewReader(""), &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestRunUnknownEngine(t *testing.T) {
	resetFlags(t)
	*engine = "astar"
	err := run(strings.NewReader(""), &bytes.Buffer{}, zap.NewNop())
	assert.Error(t, err)
}
