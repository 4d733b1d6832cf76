package model

import "time"

// Position is a single location reading as delivered by the device,
// not derived or validated.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // horizontal accuracy in meters
	Timestamp time.Time
}

func NewPosition(latitude, longitude float64) Position {
	return Position{
		Latitude:  latitude,
		Longitude: longitude,
		Timestamp: time.Now(),
	}
}
