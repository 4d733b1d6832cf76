package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailmate/data/model"
)

var testRegion = model.Region{
	Latitude:  48.7767,
	Longitude: -121.8132,
	LatDelta:  0.01,
	LngDelta:  0.01,
}

func TestRenderMapSize(t *testing.T) {
	out := RenderMap(testRegion, model.MapStandard, nil, 40, 10)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
}

func TestRenderMapCenterMarker(t *testing.T) {
	markers := []Marker{{
		Latitude:  testRegion.Latitude,
		Longitude: testRegion.Longitude,
		Title:     "You",
		Self:      true,
	}}
	out := RenderMap(testRegion, model.MapStandard, markers, 41, 11)
	require.Contains(t, out, selfGlyph)

	// The marker lands on the middle row.
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[5], selfGlyph)
}

func TestRenderMapPeerMarkers(t *testing.T) {
	markers := []Marker{
		{Latitude: testRegion.Latitude + 0.001, Longitude: testRegion.Longitude + 0.001, Title: "Jordan", Color: model.PaletteColor(0)},
		{Latitude: testRegion.Latitude - 0.0008, Longitude: testRegion.Longitude + 0.0015, Title: "Sam", Color: model.PaletteColor(1)},
	}
	out := RenderMap(testRegion, model.MapStandard, markers, 40, 12)
	assert.Equal(t, 2, strings.Count(out, peerGlyph))
}

func TestRenderMapSkipsOffViewportMarkers(t *testing.T) {
	markers := []Marker{{
		Latitude:  testRegion.Latitude + 1, // far outside the viewport
		Longitude: testRegion.Longitude,
		Title:     "Far",
		Color:     model.PaletteColor(0),
	}}
	out := RenderMap(testRegion, model.MapStandard, markers, 40, 10)
	assert.NotContains(t, out, peerGlyph)
}

func TestRenderMapModesDiffer(t *testing.T) {
	std := RenderMap(testRegion, model.MapStandard, nil, 30, 8)
	sat := RenderMap(testRegion, model.MapSatellite, nil, 30, 8)
	hyb := RenderMap(testRegion, model.MapHybrid, nil, 30, 8)

	assert.NotEqual(t, std, sat)
	assert.NotEqual(t, sat, hyb)
	assert.NotEqual(t, std, hyb)

	assert.Contains(t, sat, "▒")
	assert.NotContains(t, std, "▒")
	// Hybrid keeps the reference grid over the terrain fill.
	assert.Contains(t, hyb, "▒")
	assert.Contains(t, hyb, "·")
}

func TestRenderMapMinimumSize(t *testing.T) {
	assert.NotPanics(t, func() {
		RenderMap(testRegion, model.MapStandard, nil, 0, 0)
	})
}
