package availabilityRepo

import (
	"context"
	"errors"

	"homely/models"
)

// ErrConfigUnavailable is returned when the scheduling configuration cannot
// be read. Fatal to the request; no slots can be computed without it.
var ErrConfigUnavailable = errors.New("scheduling configuration unavailable")

// AvailabilityRepository serves the scheduling configuration snapshot:
// weekly business-hour windows, cadence policy and per-category limits.
// Read once per request and treated as immutable for its duration.
type AvailabilityRepository interface {
	GetSchedulingConfiguration(ctx context.Context) (*models.SchedulingConfig, error)
	UpsertSchedulingConfiguration(ctx context.Context, cfg *models.SchedulingConfig) error
}
