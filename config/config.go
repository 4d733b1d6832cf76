// Package config carries the compiled-in tuning constants, with an
// optional ini file to override them.
package config

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Defaults.
const (
	DefaultUpdateInterval = 5 * time.Second
	DefaultMinDistance    = 10.0 // meters
	DefaultLatDelta       = 0.01
	DefaultLngDelta       = 0.01
)

// Config holds the location and viewport tuning knobs.
type Config struct {
	// UpdateInterval is how often the position watch samples.
	UpdateInterval time.Duration
	// MinDistance is the movement threshold in meters between delivered
	// position updates.
	MinDistance float64
	// LatDelta and LngDelta are the initial viewport zoom spans in
	// degrees.
	LatDelta float64
	LngDelta float64
	// LogFile receives diagnostics; empty disables logging.
	LogFile string
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		UpdateInterval: DefaultUpdateInterval,
		MinDistance:    DefaultMinDistance,
		LatDelta:       DefaultLatDelta,
		LngDelta:       DefaultLngDelta,
	}
}

// Load reads overrides from an ini file on top of the defaults. An empty
// path returns the defaults unchanged.
//
//	[location]
//	update_interval = 5s
//	min_distance    = 10
//
//	[map]
//	lat_delta = 0.01
//	lng_delta = 0.01
//
//	[logging]
//	file = trailmate.log
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}

	loc := file.Section("location")
	cfg.UpdateInterval = loc.Key("update_interval").MustDuration(cfg.UpdateInterval)
	cfg.MinDistance = loc.Key("min_distance").MustFloat64(cfg.MinDistance)

	mp := file.Section("map")
	cfg.LatDelta = mp.Key("lat_delta").MustFloat64(cfg.LatDelta)
	cfg.LngDelta = mp.Key("lng_delta").MustFloat64(cfg.LngDelta)

	cfg.LogFile = file.Section("logging").Key("file").MustString(cfg.LogFile)

	if cfg.UpdateInterval <= 0 {
		return cfg, fmt.Errorf("update_interval must be positive, got %s", cfg.UpdateInterval)
	}
	if cfg.MinDistance < 0 {
		return cfg, fmt.Errorf("min_distance must not be negative, got %v", cfg.MinDistance)
	}
	if cfg.LatDelta <= 0 || cfg.LngDelta <= 0 {
		return cfg, fmt.Errorf("zoom deltas must be positive, got %v/%v", cfg.LatDelta, cfg.LngDelta)
	}

	return cfg, nil
}
