// Package geo provides the small amount of spherical geometry the app
// needs: great-circle distance between fixes and dead-reckoned
// destination points for the simulated walker.
package geo

import (
	"math"

	"trailmate/data/model"
)

// EarthRadius is the WGS84 semi-major axis in meters.
const EarthRadius = 6378137.0

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Distance returns the haversine great-circle distance between two fixes
// in meters.
func Distance(a, b model.Position) float64 {
	lat1 := DegreesToRadians(a.Latitude)
	lon1 := DegreesToRadians(a.Longitude)
	lat2 := DegreesToRadians(b.Latitude)
	lon2 := DegreesToRadians(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius * c
}

// Destination returns the coordinate reached by traveling dist meters
// from (lat, lng) along the given bearing (degrees clockwise from north).
func Destination(lat, lng, bearing, dist float64) (float64, float64) {
	lat1 := DegreesToRadians(lat)
	lon1 := DegreesToRadians(lng)
	brng := DegreesToRadians(bearing)
	d := dist / EarthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) +
		math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2),
	)

	return RadiansToDegrees(lat2), RadiansToDegrees(lon2)
}
