package usecase_test

import (
	"context"
	"errors"
	"testing"

	"crash-dashboard-service/internal/dataset/core/domain"
	"crash-dashboard-service/internal/dataset/core/usecase"
)

// fakeCrashSource implements CrashSourcePort for tests.
type fakeCrashSource struct {
	LoadFn func(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error)
	called bool
}

func (f *fakeCrashSource) LoadCrashes(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error) {
	f.called = true
	if f.LoadFn != nil {
		return f.LoadFn(ctx)
	}
	return nil, domain.Schema{}, nil
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestLoadDataset_Success(t *testing.T) {
	year := 2020
	source := &fakeCrashSource{
		LoadFn: func(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error) {
			return []domain.CrashRecord{
					{Borough: "BROOKLYN", Year: &year, VehicleTypes: []string{"Sedan"}},
					{Borough: "QUEENS", Year: &year},
				},
				domain.Schema{HasYear: true, HasCoordinates: true},
				nil
		},
	}

	uc := usecase.NewLoadDatasetUseCase(source)

	ds, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !source.called {
		t.Fatalf("expected LoadCrashes to be called")
	}
	if len(ds.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ds.Records))
	}
	if !ds.Schema.HasCoordinates {
		t.Fatalf("expected schema to pass through")
	}
	if len(ds.Options.Boroughs) != 2 || ds.Options.Boroughs[0] != "BROOKLYN" {
		t.Fatalf("expected sorted borough options, got %v", ds.Options.Boroughs)
	}
}

// ------------------------------------------------------------
// FAILURES ARE FATAL: errors propagate, no partial dataset
// ------------------------------------------------------------

func TestLoadDataset_SourceError(t *testing.T) {
	source := &fakeCrashSource{
		LoadFn: func(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error) {
			return nil, domain.Schema{}, errors.New("file missing")
		},
	}

	uc := usecase.NewLoadDatasetUseCase(source)

	ds, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if ds != nil {
		t.Fatalf("expected nil dataset on error")
	}
}

func TestLoadDataset_EmptySource(t *testing.T) {
	source := &fakeCrashSource{}

	uc := usecase.NewLoadDatasetUseCase(source)

	ds, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, usecase.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
	if ds != nil {
		t.Fatalf("expected nil dataset on error")
	}
}
