package usecase

import (
	"context"

	"crash-dashboard-service/internal/dataset/core/domain"
)

type GetFilterOptionsUseCase struct {
	ds *domain.Dataset
}

func NewGetFilterOptionsUseCase(ds *domain.Dataset) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{ds: ds}
}

// Execute returns the option lists computed at load time. They never
// change while the process is up.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (domain.FilterOptions, error) {
	return uc.ds.Options, nil
}
