package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/models"
)

// CartStore holds the current cart lines in memory and rewrites the persisted
// cart slot on every mutation, so the slot and the in-memory sequence are
// always consistent once a mutator returns. One instance per process; the
// mutex serializes mutators the way the browser's event loop did.
type CartStore struct {
	mu    sync.Mutex
	slots *bridge.Store
	lines []models.CartLine
}

// AddOutcome reports what AddItem did. ExceedsStock is set when the merged
// quantity went past the snapshot's stock count — AddItem itself never
// clamps, that is the caller's call (see the cart handlers).
type AddOutcome struct {
	Line         models.CartLine `json:"line"`
	Merged       bool            `json:"merged"`
	ExceedsStock bool            `json:"exceeds_stock"`
}

// NewCartStore restores the cart from the persisted slot. A missing or
// undecodable slot yields an empty cart, never an error.
func NewCartStore(slots *bridge.Store) *CartStore {
	c := &CartStore{slots: slots}
	if raw, ok := slots.Get(bridge.SlotCart); ok {
		var lines []models.CartLine
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			log.Printf("⚠️ Discarding undecodable cart slot: %v", err)
		} else {
			c.lines = lines
		}
	}
	return c
}

// Lines returns a copy of the cart in first-add order.
func (c *CartStore) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CartStore) Subtotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.LineTotal()
	}
	return total
}

// AddItem merges into an existing line for the same phone id (quantity +1) or
// appends a new line with quantity 1. The snapshot is captured at add time
// and is not refreshed by later catalog changes.
func (c *CartStore) AddItem(phone models.Phone) AddOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Phone.ID == phone.ID {
			c.lines[i].Quantity++
			c.persistLocked()
			return AddOutcome{
				Line:         c.lines[i],
				Merged:       true,
				ExceedsStock: c.lines[i].Quantity > c.lines[i].Phone.Stock,
			}
		}
	}

	line := models.CartLine{Phone: phone, Quantity: 1}
	c.lines = append(c.lines, line)
	c.persistLocked()
	return AddOutcome{Line: line, ExceedsStock: phone.Stock < 1}
}

// RemoveItem drops the line for phoneID; absent ids are a no-op.
func (c *CartStore) RemoveItem(phoneID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Phone.ID == phoneID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persistLocked()
			return
		}
	}
}

// SetQuantity replaces the line's quantity. Zero or negative removes the
// line. Clamping to stock is the caller's responsibility. Returns false when
// no line matches.
func (c *CartStore) SetQuantity(phoneID string, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Phone.ID != phoneID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		c.persistLocked()
		return true
	}
	return false
}

// Clear empties the cart and removes the persisted slot entirely.
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	if err := c.slots.Delete(bridge.SlotCart); err != nil {
		log.Printf("❌ Failed to remove cart slot: %v", err)
	}
}

// persistLocked rewrites the whole cart slot. Mutators call it before
// returning; write failures are logged, the in-memory cart stays the source
// of truth for the rest of the session.
func (c *CartStore) persistLocked() {
	lines := c.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		log.Printf("❌ Failed to encode cart: %v", err)
		return
	}
	if err := c.slots.Put(bridge.SlotCart, string(data)); err != nil {
		log.Printf("❌ Failed to persist cart: %v", err)
	}
}
