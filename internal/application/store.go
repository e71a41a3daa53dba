package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"homingai-bridge/internal/domain"
)

type EntryStore interface {
	Add(ctx context.Context, entry domain.Entry) error
	Get(ctx context.Context, id string) (domain.Entry, error)
	FindByUniqueID(ctx context.Context, domainName, uniqueID string) (domain.Entry, bool, error)
	List(ctx context.Context, domainName string) ([]domain.Entry, error)
	Remove(ctx context.Context, id string) error
}

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]domain.Entry)}
}

func (m *MemoryStore) Add(_ context.Context, entry domain.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[entry.ID]; exists {
		return fmt.Errorf("entry %s already exists", entry.ID)
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[id]
	if !ok {
		return domain.Entry{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	return entry, nil
}

func (m *MemoryStore) FindByUniqueID(_ context.Context, domainName, uniqueID string) (domain.Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, entry := range m.entries {
		if entry.Domain == domainName && entry.UniqueID == uniqueID {
			return entry, true, nil
		}
	}
	return domain.Entry{}, false, nil
}

// List returns entries of one domain, or of all domains when domainName is
// empty, oldest first.
func (m *MemoryStore) List(_ context.Context, domainName string) ([]domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		if domainName == "" || entry.Domain == domainName {
			result = append(result, entry)
		}
	}
	SortEntries(result)
	return result, nil
}

func (m *MemoryStore) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	delete(m.entries, id)
	return nil
}

// SortEntries orders entries by creation time, then ID.
func SortEntries(entries []domain.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}
