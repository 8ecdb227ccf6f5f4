package ports

import (
	"context"

	"crash-dashboard-service/internal/dataset/core/domain"
)

type CrashSourcePort interface {
	// LoadCrashes reads the full crash table in one pass. The returned
	// schema reports which optional columns the source carries; charts
	// depending on an absent column degrade to the empty marker.
	LoadCrashes(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error)
}
