package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"homely/config"
	"homely/database"
	"homely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo is the MongoDB-backed catalog repository.
type MongoCatalogRepo struct {
	servicesColl   *mongo.Collection
	categoriesColl *mongo.Collection
}

// NewMongoCatalogRepo returns a catalog repository bound to the configured database.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCatalogRepo{
		servicesColl:   db.Collection("services"),
		categoriesColl: db.Collection("categories"),
	}
}

func (repo *MongoCatalogRepo) GetServiceDurationInfo(ctx context.Context, serviceID string) (*models.ServiceDurationInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := repo.servicesColl.FindOne(ctx, bson.M{"id": serviceID, "active": true}).Decode(&svc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}

	return &models.ServiceDurationInfo{
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		CategoryID:      svc.CategoryID,
	}, nil
}

func (repo *MongoCatalogRepo) GetAllServiceDurationInfos(ctx context.Context) (map[string]models.ServiceDurationInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	projection := options.Find().SetProjection(bson.M{
		"id":               1,
		"duration_minutes": 1,
		"category_id":      1,
	})
	cursor, err := repo.servicesColl.Find(ctx, bson.M{"active": true}, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service duration index: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode service duration index: %w", err)
	}

	index := make(map[string]models.ServiceDurationInfo, len(services))
	for _, svc := range services {
		index[svc.ID] = models.ServiceDurationInfo{
			ServiceID:       svc.ID,
			DurationMinutes: svc.DurationMinutes,
			CategoryID:      svc.CategoryID,
		}
	}
	return index, nil
}

func (repo *MongoCatalogRepo) ListCategoryIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.categoriesColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	ids := make([]string, 0, len(categories))
	for _, cat := range categories {
		ids = append(ids, cat.ID)
	}
	return ids, nil
}

func (repo *MongoCatalogRepo) CreateService(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.servicesColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (repo *MongoCatalogRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.categoriesColl.InsertOne(ctx, cat); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}
