package model

import "time"

// Peer is another group member's position as shown on the map. Until the
// real device-to-device feed exists, peers are fabricated locally from
// fixed offsets.
type Peer struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	Timestamp time.Time
	Color     string // hex color from MarkerPalette
}

// MarkerPalette is the fixed set of peer marker colors, assigned by list
// position.
var MarkerPalette = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#FFD93D",
	"#6BCB77",
	"#4D96FF",
}

// PaletteColor returns the marker color for the peer at index i.
func PaletteColor(i int) string {
	return MarkerPalette[i%len(MarkerPalette)]
}
