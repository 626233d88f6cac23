package catalogRepo

import (
	"context"
	"errors"

	"homely/models"
)

// ErrServiceNotFound is returned when a service id does not resolve.
var ErrServiceNotFound = errors.New("service not found")

// CatalogRepository defines the read contract the scheduler consumes from
// the service catalog, plus the writes used by seeding and back-office.
type CatalogRepository interface {
	// GetServiceDurationInfo resolves one service to its duration and owning category.
	GetServiceDurationInfo(ctx context.Context, serviceID string) (*models.ServiceDurationInfo, error)
	// GetAllServiceDurationInfos returns the full duration index keyed by service id.
	GetAllServiceDurationInfos(ctx context.Context) (map[string]models.ServiceDurationInfo, error)
	// ListCategoryIDs returns the ids of all catalog categories.
	ListCategoryIDs(ctx context.Context) ([]string, error)
	// CreateService persists a new catalog service.
	CreateService(ctx context.Context, svc *models.Service) error
	// CreateCategory persists a new catalog category.
	CreateCategory(ctx context.Context, cat *models.Category) error
}
