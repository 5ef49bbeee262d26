package product

import (
	"go.uber.org/zap"

	"woz/internal/catalog"
	"woz/internal/product/repository"
)

func NewModule(store *catalog.Store, logger *zap.Logger) *Controller {
	repo := repository.NewMemoryRepository(store)
	svc := NewService(repo)
	uc := NewSearchUseCase(svc)
	return NewController(uc, logger)
}
