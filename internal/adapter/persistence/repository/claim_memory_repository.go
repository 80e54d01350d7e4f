package repository

import (
	"context"
	"fmt"
	"sync"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase/interfaces"
)

// ClaimMemoryRepository keeps claims in process memory, in insertion order.
// Every read returns deep copies; an update swaps the whole record under the lock.
type ClaimMemoryRepository struct {
	mu     sync.RWMutex
	claims []entities.Claim
	index  map[string]int
}

var _ interfaces.IClaimRepository = (*ClaimMemoryRepository)(nil)

func NewClaimMemoryRepository() *ClaimMemoryRepository {
	return &ClaimMemoryRepository{index: make(map[string]int)}
}

func (r *ClaimMemoryRepository) Add(_ context.Context, c entities.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[c.ID]; ok {
		return fmt.Errorf("claim %s already stored", c.ID)
	}
	r.index[c.ID] = len(r.claims)
	r.claims = append(r.claims, c.Clone())
	return nil
}

func (r *ClaimMemoryRepository) Update(_ context.Context, id string, c entities.Claim) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false, nil
	}
	next := c.Clone()
	next.ID = id
	r.claims[i] = next
	return true, nil
}

func (r *ClaimMemoryRepository) GetByID(_ context.Context, id string) (entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entities.Claim{}, nil
	}
	return r.claims[i].Clone(), nil
}

func (r *ClaimMemoryRepository) List(_ context.Context) ([]entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Claim, len(r.claims))
	for i, c := range r.claims {
		out[i] = c.Clone()
	}
	return out, nil
}
