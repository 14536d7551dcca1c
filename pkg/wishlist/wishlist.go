// Package wishlist keeps a visitor's saved product ids as a persisted
// set on the client side. Membership never leaves the device; the
// server has no wishlist table.
package wishlist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
)

const storageKey = "wishlist"

// Storage is a keyed byte store, the shape of browser local storage.
type Storage interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// ErrKeyNotFound is returned by Storage.Get for absent keys.
var ErrKeyNotFound = errors.New("wishlist: key not found")

// Set is a persisted set of product ids. Mutations write through to
// storage immediately.
type Set struct {
	storage Storage
	ids     map[string]bool
}

// Load reads the persisted set. A missing or corrupt payload starts an
// empty wishlist rather than failing.
func Load(storage Storage) *Set {
	s := &Set{storage: storage, ids: make(map[string]bool)}

	data, err := storage.Get(storageKey)
	if err != nil {
		return s
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return s
	}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s
}

// Add inserts the product id; adding an existing id is a no-op.
func (s *Set) Add(productID string) error {
	if s.ids[productID] {
		return nil
	}
	s.ids[productID] = true
	return s.persist()
}

// Remove deletes the product id if present.
func (s *Set) Remove(productID string) error {
	if !s.ids[productID] {
		return nil
	}
	delete(s.ids, productID)
	return s.persist()
}

// Toggle flips membership and reports the new state.
func (s *Set) Toggle(productID string) (bool, error) {
	if s.ids[productID] {
		return false, s.Remove(productID)
	}
	return true, s.Add(productID)
}

func (s *Set) Contains(productID string) bool {
	return s.ids[productID]
}

func (s *Set) Len() int {
	return len(s.ids)
}

// Items returns the ids in sorted order for stable display.
func (s *Set) Items() []string {
	items := make([]string, 0, len(s.ids))
	for id := range s.ids {
		items = append(items, id)
	}
	sort.Strings(items)
	return items
}

// Clear empties the wishlist.
func (s *Set) Clear() error {
	s.ids = make(map[string]bool)
	return s.persist()
}

func (s *Set) persist() error {
	data, err := json.Marshal(s.Items())
	if err != nil {
		return err
	}
	return s.storage.Put(storageKey, data)
}

// FileStorage persists keys as files in a directory, the local
// equivalent of browser storage for the desktop client.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, key+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

func (f *FileStorage) Put(key string, value []byte) error {
	return os.WriteFile(filepath.Join(f.dir, key+".json"), value, 0o644)
}
