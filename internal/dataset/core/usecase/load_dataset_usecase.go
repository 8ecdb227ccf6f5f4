package usecase

import (
	"context"
	"errors"

	"crash-dashboard-service/internal/dataset/core/domain"
	"crash-dashboard-service/internal/dataset/core/ports"
)

var ErrEmptyDataset = errors.New("crash source returned no records")

type LoadDatasetUseCase struct {
	source ports.CrashSourcePort
}

func NewLoadDatasetUseCase(source ports.CrashSourcePort) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{source: source}
}

// Execute loads the crash table and derives the filter universe. It runs
// once at process start; any error here is fatal to the caller, there is
// no partial service.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*domain.Dataset, error) {
	records, schema, err := uc.source.LoadCrashes(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return domain.BuildDataset(records, schema), nil
}
