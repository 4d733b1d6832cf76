// Package group holds the hiking-group membership state for the share
// screen. Membership lives only for the screen session: nothing is
// persisted and nothing is validated against a backend.
package group

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"trailmate/data/model"
)

var (
	ErrEmptyCode = errors.New("group code is required")
	ErrEmptyName = errors.New("display name is required")
)

// fabricatedPeers are the stand-in group members, placed at fixed degree
// offsets from the member's own position. They are replaced by the real
// device-to-device feed once one exists.
var fabricatedPeers = []struct {
	name string
	dLat float64
	dLng float64
}{
	{"Jordan", 0.0010, 0.0010},
	{"Sam", -0.0008, 0.0015},
}

// Session is the membership record: a group code, a display name and an
// active flag, plus the current peer list.
type Session struct {
	mu       sync.Mutex
	code     string
	name     string
	active   bool
	peers    []model.Peer
	joinedAt time.Time
}

func NewSession() *Session {
	return &Session{}
}

// Join activates membership in the group identified by code. Both code
// and name must be non-empty; on validation failure no state changes.
// Peers are fabricated from the member's own position.
func (s *Session) Join(code, name string, origin model.Position) error {
	if code == "" {
		return ErrEmptyCode
	}
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.code = code
	s.name = name
	s.active = true
	s.joinedAt = time.Now()

	s.peers = make([]model.Peer, 0, len(fabricatedPeers))
	for i, fp := range fabricatedPeers {
		s.peers = append(s.peers, model.Peer{
			ID:        uuid.NewString(),
			Name:      fp.name,
			Latitude:  origin.Latitude + fp.dLat,
			Longitude: origin.Longitude + fp.dLng,
			Timestamp: time.Now(),
			Color:     model.PaletteColor(i),
		})
	}
	return nil
}

// Leave clears the code, name and peer list and deactivates membership.
func (s *Session) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.code = ""
	s.name = ""
	s.active = false
	s.peers = nil
	s.joinedAt = time.Time{}
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Session) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Peers returns a copy of the current peer list.
func (s *Session) Peers() []model.Peer {
	s.mu.Lock()
	defer s.mu.Unlock()
	peers := make([]model.Peer, len(s.peers))
	copy(peers, s.peers)
	return peers
}
