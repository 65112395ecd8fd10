package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	entry   Entry
	expires time.Time
}

// sweepInterval bounds how often Set scans for expired items.
const sweepInterval = time.Minute

// MemoryStore is a process-wide Store guarded by a mutex.
// Expired items are dropped on read and by a sweep run from Set at most once
// per sweepInterval.
type MemoryStore struct {
	mu        sync.Mutex
	items     map[string]memoryItem
	now       func() time.Time
	nextSweep time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

// WithClock replaces the time source, used by tests to move past expiry.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok {
		return Entry{}, ErrCacheMiss
	}
	if !s.now().Before(item.expires) {
		delete(s.items, key)
		return Entry{}, ErrCacheMiss
	}

	body := make([]byte, len(item.entry.Body))
	copy(body, item.entry.Body)
	entry := item.entry
	entry.Body = body
	return entry, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	body := make([]byte, len(entry.Body))
	copy(body, entry.Body)
	entry.Body = body

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !now.Before(s.nextSweep) {
		s.sweep(now)
	}
	s.items[key] = memoryItem{entry: entry, expires: now.Add(ttl)}
	return nil
}

// Len reports the number of stored items, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *MemoryStore) sweep(now time.Time) {
	for key, item := range s.items {
		if !now.Before(item.expires) {
			delete(s.items, key)
		}
	}
	s.nextSweep = now.Add(sweepInterval)
}
