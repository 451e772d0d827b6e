package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/models"
)

// SessionStore holds the single active identity, if any, mirrored to the
// session slot. Logout of a customer cascades into clearing the cart — the
// two stores share one logout path, and an administrator has no cart to
// clear.
type SessionStore struct {
	mu      sync.Mutex
	slots   *bridge.Store
	cart    *CartStore
	current *models.Identity
}

// NewSessionStore restores the identity from the persisted slot; a missing
// or undecodable slot starts the session anonymous.
func NewSessionStore(slots *bridge.Store, cart *CartStore) *SessionStore {
	s := &SessionStore{slots: slots, cart: cart}
	if raw, ok := slots.Get(bridge.SlotSession); ok {
		var id models.Identity
		if err := json.Unmarshal([]byte(raw), &id); err != nil {
			log.Printf("⚠️ Discarding undecodable session slot: %v", err)
		} else {
			s.current = &id
		}
	}
	return s
}

// Current returns a copy of the active identity, or nil when anonymous.
func (s *SessionStore) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// Login replaces the current identity unconditionally and persists it.
// Validating the identity's shape is the login form's job, not ours.
func (s *SessionStore) Login(id models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id

	data, err := json.Marshal(id)
	if err != nil {
		log.Printf("❌ Failed to encode session: %v", err)
		return
	}
	if err := s.slots.Put(bridge.SlotSession, string(data)); err != nil {
		log.Printf("❌ Failed to persist session: %v", err)
	}
}

// Logout clears the identity and its slot. A departing customer also loses
// the cart; a departing administrator keeps the cart untouched but loses the
// stored bearer token.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	outgoing := s.current
	s.current = nil
	if err := s.slots.Delete(bridge.SlotSession); err != nil {
		log.Printf("❌ Failed to remove session slot: %v", err)
	}
	s.mu.Unlock()

	if outgoing == nil {
		return
	}
	if outgoing.Role == models.RoleCustomer {
		s.cart.Clear()
	}
	if outgoing.Role == models.RoleAdministrator {
		if err := s.slots.Delete(bridge.SlotAdminToken); err != nil {
			log.Printf("❌ Failed to remove admin token slot: %v", err)
		}
	}
}
