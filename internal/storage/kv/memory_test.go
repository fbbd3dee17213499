package kv

import (
	"context"
	"sync"
	"time"
)

// memoryBackend is an in-memory Backend for unit tests, honoring TTLs.
type memoryBackend struct {
	mu   sync.Mutex
	data map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{data: make(map[string]memoryEntry)}
}

func (b *memoryBackend) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.data[namespace+":"+key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(b.data, namespace+":"+key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (b *memoryBackend) Set(_ context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	b.data[namespace+":"+key] = entry
	return nil
}

func (b *memoryBackend) Delete(_ context.Context, namespace, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, namespace+":"+key)
	return nil
}
