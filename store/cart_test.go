package store

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestSlots(t *testing.T) *bridge.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "state.db")), &gorm.Config{})
	require.NoError(t, err)
	slots, err := bridge.Open(db)
	require.NoError(t, err)
	return slots
}

func phone(id string, price, stock int) models.Phone {
	return models.Phone{ID: id, Brand: "Apple", Model: "iPhone 12 128GB", Price: price, Stock: stock}
}

// persistedLines re-reads the cart slot the way a fresh process would.
func persistedLines(t *testing.T, slots *bridge.Store) ([]models.CartLine, bool) {
	t.Helper()
	raw, ok := slots.Get(bridge.SlotCart)
	if !ok {
		return nil, false
	}
	var lines []models.CartLine
	require.NoError(t, json.Unmarshal([]byte(raw), &lines))
	return lines, true
}

func TestAddItemMergesByID(t *testing.T) {
	cart := NewCartStore(newTestSlots(t))

	first := cart.AddItem(phone("A", 1000, 3))
	assert.False(t, first.Merged)
	assert.Equal(t, 1, first.Line.Quantity)

	second := cart.AddItem(phone("A", 1000, 3))
	assert.True(t, second.Merged)
	assert.Equal(t, 2, second.Line.Quantity)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemMergeInvariant(t *testing.T) {
	cart := NewCartStore(newTestSlots(t))

	adds := []string{"A", "B", "A", "C", "B", "A"}
	for _, id := range adds {
		cart.AddItem(phone(id, 500, 10))
	}

	lines := cart.Lines()
	require.Len(t, lines, 3)
	// Insertion order is first-add order; quantity equals the add count.
	assert.Equal(t, "A", lines[0].Phone.ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "B", lines[1].Phone.ID)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, "C", lines[2].Phone.ID)
	assert.Equal(t, 1, lines[2].Quantity)
}

func TestAddItemReportsExceedsStock(t *testing.T) {
	cart := NewCartStore(newTestSlots(t))

	p := phone("A", 1000, 1)
	assert.False(t, cart.AddItem(p).ExceedsStock)
	// Add does not clamp; it reports.
	outcome := cart.AddItem(p)
	assert.True(t, outcome.ExceedsStock)
	assert.Equal(t, 2, outcome.Line.Quantity)
}

func TestMutatorsPersistSynchronously(t *testing.T) {
	slots := newTestSlots(t)
	cart := NewCartStore(slots)

	cart.AddItem(phone("A", 1000, 5))
	cart.AddItem(phone("B", 2000, 5))
	got, ok := persistedLines(t, slots)
	require.True(t, ok)
	assert.Equal(t, cart.Lines(), got)

	cart.SetQuantity("B", 4)
	got, ok = persistedLines(t, slots)
	require.True(t, ok)
	assert.Equal(t, cart.Lines(), got)

	cart.RemoveItem("A")
	got, ok = persistedLines(t, slots)
	require.True(t, ok)
	assert.Equal(t, cart.Lines(), got)
}

func TestRestoreFromSlot(t *testing.T) {
	slots := newTestSlots(t)
	cart := NewCartStore(slots)
	cart.AddItem(phone("A", 1000, 5))
	cart.SetQuantity("A", 3)

	restored := NewCartStore(slots)
	assert.Equal(t, cart.Lines(), restored.Lines())
}

func TestRestoreCorruptSlotYieldsEmptyCart(t *testing.T) {
	slots := newTestSlots(t)
	require.NoError(t, slots.Put(bridge.SlotCart, "{not json"))

	cart := NewCartStore(slots)
	assert.Empty(t, cart.Lines())
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	slots := newTestSlots(t)
	cart := NewCartStore(slots)
	cart.AddItem(phone("A", 1000, 5))

	assert.True(t, cart.SetQuantity("A", 0))
	assert.Empty(t, cart.Lines())

	// Absent ids are reported, not errors.
	assert.False(t, cart.SetQuantity("A", 2))
	assert.False(t, cart.SetQuantity("missing", -1))
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := NewCartStore(newTestSlots(t))
	cart.AddItem(phone("A", 1000, 5))
	cart.RemoveItem("missing")
	assert.Len(t, cart.Lines(), 1)
}

func TestClearRemovesSlot(t *testing.T) {
	slots := newTestSlots(t)
	cart := NewCartStore(slots)
	cart.AddItem(phone("A", 1000, 5))
	cart.AddItem(phone("B", 2000, 5))

	cart.Clear()
	assert.Empty(t, cart.Lines())
	_, ok := slots.Get(bridge.SlotCart)
	assert.False(t, ok, "cart slot should be absent after clear")
}

func TestSubtotal(t *testing.T) {
	cart := NewCartStore(newTestSlots(t))
	cart.AddItem(phone("A", 1000, 5))
	cart.AddItem(phone("A", 1000, 5))
	cart.AddItem(phone("B", 2500, 5))
	assert.Equal(t, 4500, cart.Subtotal())
}
