package services

import (
	"sort"
	"strings"
	"sync"
)

// StateStorage persists serialized aggregates under string keys. Write must
// replace the whole payload for the key in one step.
type StateStorage interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, payload []byte) error
	Remove(key string) error
}

type StateKeyLister interface {
	ListKeys(prefix string) ([]string, error)
}

type MemoryStateStorage struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStateStorage() *MemoryStateStorage {
	return &MemoryStateStorage{entries: make(map[string][]byte)}
}

func (storage *MemoryStateStorage) Read(key string) ([]byte, bool, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	payload, ok := storage.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

func (storage *MemoryStateStorage) Write(key string, payload []byte) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	storage.entries[key] = append([]byte(nil), payload...)
	return nil
}

func (storage *MemoryStateStorage) Remove(key string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	delete(storage.entries, key)
	return nil
}

func (storage *MemoryStateStorage) ListKeys(prefix string) ([]string, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	keys := make([]string, 0, len(storage.entries))
	for key := range storage.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
