package model

// MapMode selects the map tile rendering style.
type MapMode int

const (
	MapStandard MapMode = iota
	MapSatellite
	MapHybrid
)

func (m MapMode) String() string {
	return [...]string{"Standard", "Satellite", "Hybrid"}[m]
}

// Next advances to the following mode, wrapping back to Standard after
// Hybrid.
func (m MapMode) Next() MapMode {
	return (m + 1) % 3
}
