package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trailmate/data/model"
)

func TestDistanceZero(t *testing.T) {
	p := model.Position{Latitude: 48.7767, Longitude: -121.8132}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistanceKnownPoints(t *testing.T) {
	// Paris to London, roughly 344 km.
	paris := model.Position{Latitude: 48.8566, Longitude: 2.3522}
	london := model.Position{Latitude: 51.5074, Longitude: -0.1278}

	d := Distance(paris, london)
	assert.InDelta(t, 344000, d, 5000)

	// Symmetric.
	assert.InDelta(t, d, Distance(london, paris), 0.001)
}

func TestDistanceSmallOffset(t *testing.T) {
	// 0.001 degrees of latitude is about 111 meters.
	a := model.Position{Latitude: 48.7767, Longitude: -121.8132}
	b := model.Position{Latitude: 48.7777, Longitude: -121.8132}

	assert.InDelta(t, 111, Distance(a, b), 2)
}

func TestDestinationRoundTrip(t *testing.T) {
	lat, lng := 48.7767, -121.8132

	// Walk 500 m north, then measure the distance back.
	lat2, lng2 := Destination(lat, lng, 0, 500)
	d := Distance(
		model.Position{Latitude: lat, Longitude: lng},
		model.Position{Latitude: lat2, Longitude: lng2},
	)
	assert.InDelta(t, 500, d, 1)
	assert.Greater(t, lat2, lat)
	assert.InDelta(t, lng, lng2, 1e-9)
}

func TestDestinationEast(t *testing.T) {
	lat, lng := 48.7767, -121.8132
	lat2, lng2 := Destination(lat, lng, 90, 200)

	assert.InDelta(t, lat, lat2, 1e-5)
	assert.Greater(t, lng2, lng)
}
