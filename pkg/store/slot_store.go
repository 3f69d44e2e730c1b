package store

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"platefinder/entities"
)

// Slot keys in use. Profile and order history have independent lifecycles;
// clearing one never touches the other.
const (
	SlotProfile      = "profile"
	SlotOrderHistory = "orderHistory"
)

type (
	// SlotStore is a string-keyed store of JSON documents. Implementations
	// do not interpret the value; decoding and defaulting is the caller's
	// concern. Mutations of an existing slot go through Update so the whole
	// read-modify-write cycle is serialized.
	SlotStore interface {
		Get(ctx context.Context, key string) (string, bool, error)
		Put(ctx context.Context, key string, value string) error
		Update(ctx context.Context, key string, fn func(current string, ok bool) (string, error)) error
		Delete(ctx context.Context, key string) error
	}

	slotStore struct {
		db *gorm.DB
		mu sync.Mutex
	}
)

func NewSlotStore(db *gorm.DB) SlotStore {
	return &slotStore{db: db}
}

func (s *slotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var slot entities.Slot
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return slot.Value, true, nil
}

// Put performs a last-writer-wins upsert of the whole slot value.
func (s *slotStore) Put(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := entities.Slot{Key: key, Value: value}
	return s.db.WithContext(ctx).Save(&slot).Error
}

// Update applies fn to the current slot value and writes the result back
// while holding the store mutex, so two concurrent read-modify-write cycles
// in this process cannot lose each other's writes. There is deliberately no
// cross-process version check.
func (s *slotStore) Update(ctx context.Context, key string, fn func(current string, ok bool) (string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := "", true
	var slot entities.Slot
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&slot).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		ok = false
	} else {
		current = slot.Value
	}

	next, err := fn(current, ok)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(&entities.Slot{Key: key, Value: next}).Error
}

func (s *slotStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.WithContext(ctx).Delete(&entities.Slot{}, "key = ?", key).Error
}
