package repository

import (
	"context"

	"woz/internal/catalog"
	"woz/internal/domain"
)

// MemoryRepository serves products from the in-process catalog store.
type MemoryRepository struct {
	store *catalog.Store
}

func NewMemoryRepository(store *catalog.Store) *MemoryRepository {
	return &MemoryRepository{store: store}
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Snapshot(), nil
}

func (r *MemoryRepository) FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.FindByIDs(ids), nil
}
