package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trailmate/data/model"
)

// Marker is a point drawn on the map panel.
type Marker struct {
	Latitude  float64
	Longitude float64
	Title     string
	Color     string
	Self      bool
}

const (
	selfGlyph = "◉"
	peerGlyph = "●"
)

// RenderMap draws the viewport as a character grid of the given size,
// styled per display mode, with markers projected onto it. Markers
// outside the viewport are not drawn.
func RenderMap(region model.Region, mode model.MapMode, markers []Marker, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	cells := make([][]string, height)
	for row := range cells {
		cells[row] = make([]string, width)
		for col := range cells[row] {
			cells[row][col] = tile(mode, row, col)
		}
	}

	for _, mk := range markers {
		if !region.Contains(mk.Latitude, mk.Longitude) {
			continue
		}
		col := project(mk.Longitude, region.Longitude-region.LngDelta/2, region.LngDelta, width)
		// Rows count from the top edge, so latitude is flipped.
		row := project(region.Latitude+region.LatDelta/2-mk.Latitude, 0, region.LatDelta, height)

		glyph := peerGlyph
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(mk.Color))
		if mk.Self {
			glyph = selfGlyph
			style = selfMarkerStyle
		}
		cells[row][col] = style.Render(glyph)
	}

	rows := make([]string, height)
	for i, row := range cells {
		rows[i] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

// project maps a coordinate offset within a span onto a cell index,
// clamped to the grid.
func project(value, min, span float64, cellCount int) int {
	idx := int((value - min) / span * float64(cellCount))
	if idx < 0 {
		idx = 0
	}
	if idx >= cellCount {
		idx = cellCount - 1
	}
	return idx
}

// tile returns the background glyph for one cell. Standard shows a faint
// reference grid, satellite a terrain fill, hybrid terrain with the grid
// on top.
func tile(mode model.MapMode, row, col int) string {
	onGrid := row%4 == 0 || col%10 == 0
	switch mode {
	case model.MapSatellite:
		return terrainStyle.Render("▒")
	case model.MapHybrid:
		if onGrid {
			return gridStyle.Render("·")
		}
		return terrainStyle.Render("▒")
	default:
		if onGrid {
			return gridStyle.Render("·")
		}
		return " "
	}
}
