package cart

import (
	"encoding/json"

	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
	"cafe-client/internal/localstore"
)

// storageKey is the single durable-storage key holding the cart: a JSON array
// of {id, name, price, quantity} records.
const storageKey = "cart"

// Store persists cart line items across sessions.
type Store interface {
	Load() ([]domain.CartLineItem, error)
	Save(items []domain.CartLineItem) error
}

// PersistentStore keeps the cart in durable local storage, write-through on
// every mutation.
type PersistentStore struct {
	kv  *localstore.Store
	log *logger.Logger
}

func NewPersistentStore(kv *localstore.Store, log *logger.Logger) *PersistentStore {
	return &PersistentStore{kv: kv, log: log}
}

// Load reads the persisted cart. A missing key yields an empty cart. A value
// that is not a well-formed sequence of line items is discarded with a
// warning and an empty cart is returned; Load never fails on bad data, only
// on storage-level errors.
func (s *PersistentStore) Load() ([]domain.CartLineItem, error) {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load", Err: err}
	}
	if !ok {
		return nil, nil
	}

	var items []domain.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("cart_storage_malformed", map[string]any{"error": err.Error()})
		_ = s.kv.Delete(storageKey)
		return nil, nil
	}
	for _, li := range items {
		if li.Quantity < 1 {
			s.log.Warn("cart_storage_malformed", map[string]any{"item_id": li.ID, "quantity": li.Quantity})
			_ = s.kv.Delete(storageKey)
			return nil, nil
		}
	}
	return items, nil
}

// Save serializes the cart and writes it through to durable storage.
func (s *PersistentStore) Save(items []domain.CartLineItem) error {
	if items == nil {
		items = []domain.CartLineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	if err := s.kv.Set(storageKey, string(b)); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	return nil
}
