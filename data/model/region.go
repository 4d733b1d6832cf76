package model

// Region is the map viewport: a center coordinate and the latitude and
// longitude spans it covers.
type Region struct {
	Latitude  float64
	Longitude float64
	LatDelta  float64
	LngDelta  float64
}

// Zoom limits. Below the minimum the viewport covers a few meters and the
// projection degenerates; above the maximum a whole hemisphere.
const (
	MinDelta = 0.0005
	MaxDelta = 90.0
)

// RegionAround returns a region of the given spans centered on p.
func RegionAround(p Position, latDelta, lngDelta float64) Region {
	return Region{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		LatDelta:  latDelta,
		LngDelta:  lngDelta,
	}
}

// CenteredOn moves the viewport center to p, keeping the current spans.
func (r Region) CenteredOn(p Position) Region {
	r.Latitude = p.Latitude
	r.Longitude = p.Longitude
	return r
}

// Pan shifts the viewport center by the given degree offsets.
func (r Region) Pan(dLat, dLng float64) Region {
	r.Latitude += dLat
	r.Longitude += dLng
	return r
}

// ZoomIn halves both spans.
func (r Region) ZoomIn() Region {
	if r.LatDelta/2 >= MinDelta {
		r.LatDelta /= 2
	}
	if r.LngDelta/2 >= MinDelta {
		r.LngDelta /= 2
	}
	return r
}

// ZoomOut doubles both spans.
func (r Region) ZoomOut() Region {
	if r.LatDelta*2 <= MaxDelta {
		r.LatDelta *= 2
	}
	if r.LngDelta*2 <= MaxDelta {
		r.LngDelta *= 2
	}
	return r
}

// Contains reports whether the coordinate falls inside the viewport.
func (r Region) Contains(lat, lng float64) bool {
	return lat >= r.Latitude-r.LatDelta/2 && lat <= r.Latitude+r.LatDelta/2 &&
		lng >= r.Longitude-r.LngDelta/2 && lng <= r.Longitude+r.LngDelta/2
}
