package bridge

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names used by the stores. All three are plain key→string values with
// no schema versioning; a missing or undecodable value degrades to empty.
const (
	SlotSession    = "session"
	SlotCart       = "cart"
	SlotAdminToken = "admin_token"
)

// Slot is one durable key→string entry, the local stand-in for the browser's
// localStorage the storefront used to persist session and cart state.
type Slot struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

type Store struct {
	db *gorm.DB
}

// Open migrates the slot table and returns the store.
func Open(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the value for key and whether it was present. Read failures are
// logged and reported as absent; nothing at this layer is fatal.
func (s *Store) Get(key string) (string, bool) {
	var slot Slot
	if err := s.db.First(&slot, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Failed to read slot %q: %v", key, err)
		}
		return "", false
	}
	return slot.Value, true
}

// Put upserts the value for key.
func (s *Store) Put(key, value string) error {
	slot := Slot{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
}

// Delete removes the slot; deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Slot{}, "key = ?", key).Error
}
