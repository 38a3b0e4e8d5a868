package store

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/bryanwahyu/textlens/internal/domain/analysis"
)

// Memory is a process-lifetime analysis.Repository: a map keyed by record
// id plus an insertion-order index so List stays deterministic. All
// operations are guarded by a RWMutex because handlers run in parallel
// goroutines. Records are stored and returned by value copy so callers
// never share memory with the store.
type Memory struct {
	mu    sync.RWMutex
	byID  map[domain.RecordID]domain.Record
	order []domain.RecordID
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[domain.RecordID]domain.Record)}
}

func (m *Memory) Save(_ context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[rec.ID]; ok {
		return fmt.Errorf("duplicate analysis id: %s", rec.ID)
	}
	m.byID[rec.ID] = *rec
	m.order = append(m.order, rec.ID)
	return nil
}

func (m *Memory) Get(_ context.Context, id domain.RecordID) (*domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (m *Memory) List(_ context.Context) ([]domain.ListItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]domain.ListItem, 0, len(m.order))
	for _, id := range m.order {
		rec := m.byID[id]
		items = append(items, domain.ListItem{ID: rec.ID, Timestamp: rec.Timestamp})
	}
	return items, nil
}

func (m *Memory) Replace(_ context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[rec.ID] = *rec
	return nil
}

func (m *Memory) Delete(_ context.Context, id domain.RecordID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
