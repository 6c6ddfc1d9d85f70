package cache

import (
	"sync"

	"puntoventa-backend/models"
)

// SaleSnapshotStore stages a prior sale so a fresh draft cart can be
// hydrated from it. A snapshot lives only until it is consumed: Consume
// returns it and deletes it in the same step, so stale snapshots can never
// leak into a later flow.
type SaleSnapshotStore struct {
	mu     sync.Mutex
	byUser map[string]models.Sale
}

// NewSaleSnapshotStore returns an empty store.
func NewSaleSnapshotStore() *SaleSnapshotStore {
	return &SaleSnapshotStore{byUser: make(map[string]models.Sale)}
}

// Stage saves a snapshot for the user, replacing any previous one.
func (s *SaleSnapshotStore) Stage(userID string, sale models.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = sale
}

// Consume returns the staged snapshot for the user and clears it.
func (s *SaleSnapshotStore) Consume(userID string) (models.Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.byUser[userID]
	if ok {
		delete(s.byUser, userID)
	}
	return sale, ok
}
