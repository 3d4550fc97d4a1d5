package archive

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// memoryRepository backs the archive when no database is configured. Entries
// live for the lifetime of the process.
type memoryRepository struct {
	roadmaps map[uuid.UUID]Roadmap
	mu       sync.RWMutex
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		roadmaps: make(map[uuid.UUID]Roadmap),
	}
}

func (r *memoryRepository) Create(ctx context.Context, rm *Roadmap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roadmaps[rm.ID] = *rm
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Roadmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.roadmaps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rm, nil
}

func (r *memoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Roadmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Roadmap
	for _, rm := range r.roadmaps {
		if rm.ownedBy(ownerID) {
			rm := rm
			out = append(out, &rm)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roadmaps[id]; !ok {
		return ErrNotFound
	}
	delete(r.roadmaps, id)
	return nil
}
