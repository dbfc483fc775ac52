// Package selection holds the persisted mapping of product id to desired
// quantity. Every mutation writes through to the durable store before
// returning; the selection survives catalog reloads and is only emptied
// when the user clears it.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Key is the durable-store key the serialized selection lives under.
const Key = "selected-products"

// KV is the string-keyed durable store the selection persists through.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// Entry is the per-product selection state. Quantity is always >= 1; an
// entry that would drop below 1 is removed instead.
type Entry struct {
	Quantity int `json:"quantity"`
}

var (
	ErrQuantity      = errors.New("selection: quantity must be at least 1")
	ErrNoPersistence = errors.New("selection: no durable store configured")
)

// Store is the in-memory selection backed by a durable key-value store.
type Store struct {
	kv      KV
	entries map[int]Entry
}

// Load initializes a store from the durable value under Key. A missing,
// empty, or unparsable value yields an empty selection; corrupt persisted
// state is never surfaced as an error.
func Load(kv KV) *Store {
	s := &Store{kv: kv, entries: map[int]Entry{}}
	if kv == nil {
		return s
	}
	data, err := kv.Read(Key)
	if err != nil || len(data) == 0 {
		return s
	}
	var decoded map[string]Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		return s
	}
	for k, e := range decoded {
		id, err := strconv.Atoi(k)
		if err != nil || e.Quantity < 1 {
			continue
		}
		s.entries[id] = e
	}
	return s
}

// Add inserts or overwrites the entry for id. Quantities below 1 are
// rejected; the store never persists an invalid entry.
func (s *Store) Add(id, quantity int) error {
	if quantity < 1 {
		return ErrQuantity
	}
	s.entries[id] = Entry{Quantity: quantity}
	return s.persist()
}

// Remove deletes the entry for id; removing an absent id is a no-op.
func (s *Store) Remove(id int) error {
	if _, ok := s.entries[id]; !ok {
		return nil
	}
	delete(s.entries, id)
	return s.persist()
}

// SetQuantity updates the quantity of an existing entry. Setting below 1
// removes the entry; an absent id is a no-op.
func (s *Store) SetQuantity(id, quantity int) error {
	if _, ok := s.entries[id]; !ok {
		return nil
	}
	if quantity < 1 {
		return s.Remove(id)
	}
	s.entries[id] = Entry{Quantity: quantity}
	return s.persist()
}

// Clear empties the selection.
func (s *Store) Clear() error {
	s.entries = map[int]Entry{}
	return s.persist()
}

// Snapshot returns a copy of the current mapping keyed by product id.
func (s *Store) Snapshot() map[int]Entry {
	out := make(map[int]Entry, len(s.entries))
	for id, e := range s.entries {
		out[id] = e
	}
	return out
}

// Len reports the number of selected products.
func (s *Store) Len() int {
	return len(s.entries)
}

// Selected reports whether id is in the selection.
func (s *Store) Selected(id int) bool {
	_, ok := s.entries[id]
	return ok
}

// Quantity returns the selected quantity for id, or 0 when unselected.
func (s *Store) Quantity(id int) int {
	return s.entries[id].Quantity
}

func (s *Store) persist() error {
	if s.kv == nil {
		return ErrNoPersistence
	}
	encoded := make(map[string]Entry, len(s.entries))
	for id, e := range s.entries {
		encoded[strconv.Itoa(id)] = e
	}
	data, err := json.Marshal(encoded)
	if err != nil {
		return err
	}
	if err := s.kv.Write(Key, data); err != nil {
		return fmt.Errorf("selection: persist: %w", err)
	}
	return nil
}
