package usecase

import (
	"context"
	"errors"

	datasetdomain "crash-dashboard-service/internal/dataset/core/domain"
	"crash-dashboard-service/internal/report/core/domain"
)

var ErrInvalidInjuryType = errors.New("invalid injury_type value")

type GenerateReportInput struct {
	Borough             *string
	Year                *int
	InjuryType          string // "", "all", "injured", "killed"
	VehicleTypes        []string
	ContributingFactors []string
}

// GenerateReportUseCase recomputes the dashboard report against the
// dataset loaded at startup. The dataset is read-only, so the usecase is
// safe for concurrent requests without locking.
type GenerateReportUseCase struct {
	ds *datasetdomain.Dataset
}

func NewGenerateReportUseCase(ds *datasetdomain.Dataset) *GenerateReportUseCase {
	return &GenerateReportUseCase{ds: ds}
}

// Execute validates the selection and runs the filter/aggregate pipeline.
// An empty vehicle-type or contributing-factor list means "no filter",
// matching a UI control with nothing picked. Values outside the dataset's
// option universe are not rejected; they simply match no rows.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, in GenerateReportInput) (*domain.Report, error) {
	injury := domain.InjuryType(in.InjuryType)
	if in.InjuryType == "" {
		injury = domain.InjuryAll
	}
	switch injury {
	case domain.InjuryAll, domain.InjuryInjured, domain.InjuryKilled:
	default:
		return nil, ErrInvalidInjuryType
	}

	sel := domain.FilterSelection{
		Borough:             in.Borough,
		Year:                in.Year,
		InjuryType:          injury,
		VehicleTypes:        pruneEmpty(in.VehicleTypes),
		ContributingFactors: pruneEmpty(in.ContributingFactors),
	}

	return domain.Generate(uc.ds, sel), nil
}

func pruneEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
