package location

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trailmate/data/model"
	"trailmate/geo"
)

// SimulatedGPS is a Provider backed by a random walk instead of a GPS
// chip. Each sample drifts a few meters from the previous one, the way a
// hiker's fix wanders along a trail.
type SimulatedGPS struct {
	mu         sync.Mutex
	pos        model.Position
	permission Permission
	stepMeters float64
	heading    float64
	rng        *rand.Rand
	log        *zap.Logger
}

// SimulatedOption configures a SimulatedGPS.
type SimulatedOption func(*SimulatedGPS)

// WithPermission fixes the permission outcome. The default is granted.
func WithPermission(p Permission) SimulatedOption {
	return func(g *SimulatedGPS) { g.permission = p }
}

// WithStep sets the distance in meters the walker covers per sample.
func WithStep(meters float64) SimulatedOption {
	return func(g *SimulatedGPS) { g.stepMeters = meters }
}

// WithSeed makes the walk deterministic.
func WithSeed(seed int64) SimulatedOption {
	return func(g *SimulatedGPS) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a logger for watch-loop diagnostics.
func WithLogger(log *zap.Logger) SimulatedOption {
	return func(g *SimulatedGPS) { g.log = log }
}

// NewSimulatedGPS returns a simulated device standing at the given
// coordinate.
func NewSimulatedGPS(lat, lng float64, opts ...SimulatedOption) *SimulatedGPS {
	g := &SimulatedGPS{
		pos: model.Position{
			Latitude:  lat,
			Longitude: lng,
			Accuracy:  5,
			Timestamp: time.Now(),
		},
		permission: PermissionGranted,
		stepMeters: 15,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	// The heading must come from g.rng so WithSeed fully determines the walk.
	g.heading = g.rng.Float64() * 360
	return g
}

func (g *SimulatedGPS) RequestPermission(ctx context.Context) (Permission, error) {
	select {
	case <-ctx.Done():
		return PermissionUndetermined, ctx.Err()
	default:
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.permission, nil
}

func (g *SimulatedGPS) CurrentPosition(ctx context.Context) (model.Position, error) {
	select {
	case <-ctx.Done():
		return model.Position{}, ctx.Err()
	default:
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.permission != PermissionGranted {
		return model.Position{}, ErrPermissionDenied
	}
	return g.pos, nil
}

// WatchPosition samples the walk every opts.Interval and delivers fixes
// that moved at least opts.MinDistance meters since the last delivery.
func (g *SimulatedGPS) WatchPosition(opts WatchOptions, fn func(model.Position)) (*Subscription, error) {
	g.mu.Lock()
	if g.permission != PermissionGranted {
		g.mu.Unlock()
		return nil, ErrPermissionDenied
	}
	lastDelivered := g.pos
	g.mu.Unlock()

	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}

	sub := NewSubscription(uuid.NewString())
	g.log.Info("watch started",
		zap.String("subscription", sub.ID),
		zap.Duration("interval", opts.Interval),
		zap.Float64("min_distance", opts.MinDistance),
	)

	go func() {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-sub.stop:
				g.log.Info("watch removed", zap.String("subscription", sub.ID))
				return
			case <-ticker.C:
				pos := g.advance()
				if geo.Distance(lastDelivered, pos) < opts.MinDistance {
					continue
				}
				lastDelivered = pos
				fn(pos)
			}
		}
	}()

	return sub, nil
}

// advance moves the walker one step and returns the new fix. The heading
// wanders up to 40 degrees per step so the track bends like a trail
// rather than jittering.
func (g *SimulatedGPS) advance() model.Position {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.heading += (g.rng.Float64() - 0.5) * 80
	lat, lng := geo.Destination(g.pos.Latitude, g.pos.Longitude, g.heading, g.stepMeters)

	g.pos = model.Position{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  3 + g.rng.Float64()*7,
		Timestamp: time.Now(),
	}
	return g.pos
}
