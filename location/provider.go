// Package location exposes the device location-services capability:
// a permission request, a one-shot position fetch, and a cancellable
// recurring position subscription parameterized by a time interval and a
// minimum movement distance.
package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"trailmate/data/model"
)

// Permission is the outcome of a location permission request.
type Permission int

const (
	PermissionUndetermined Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	return [...]string{"Undetermined", "Granted", "Denied"}[p]
}

// ErrPermissionDenied is returned by position calls made without a
// granted permission.
var ErrPermissionDenied = errors.New("location permission denied")

// WatchOptions parameterizes a recurring position subscription.
type WatchOptions struct {
	// Interval is how often the device samples its position.
	Interval time.Duration
	// MinDistance is the minimum movement in meters between delivered
	// updates. Zero delivers every sample.
	MinDistance float64
}

// Provider is a source of device positions.
type Provider interface {
	// RequestPermission asks for access to location services.
	RequestPermission(ctx context.Context) (Permission, error)

	// CurrentPosition returns a single fix.
	CurrentPosition(ctx context.Context) (model.Position, error)

	// WatchPosition starts a recurring subscription delivering fixes to
	// fn until the returned handle is removed. fn is called from the
	// provider's goroutine.
	WatchPosition(opts WatchOptions, fn func(model.Position)) (*Subscription, error)
}

// Subscription is the handle for an active position watch. Remove is safe
// to call more than once and from any exit path.
type Subscription struct {
	ID   string
	stop chan struct{}
	once sync.Once
}

// NewSubscription returns a live handle. Providers hand one out per
// WatchPosition call and stop delivering when its stop channel closes.
func NewSubscription(id string) *Subscription {
	return &Subscription{
		ID:   id,
		stop: make(chan struct{}),
	}
}

// Remove cancels the subscription. No callbacks are started after Remove
// returns.
func (s *Subscription) Remove() {
	s.once.Do(func() {
		close(s.stop)
	})
}

// Stopped returns a channel that is closed once the subscription has
// been removed.
func (s *Subscription) Stopped() <-chan struct{} {
	return s.stop
}

// Done reports whether the subscription has been removed.
func (s *Subscription) Done() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}
