package availabilityRepo

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

// configDocID identifies the single scheduling configuration document.
const configDocID = "default"

// MongoAvailabilityRepo is the MongoDB-backed configuration repository.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo returns a configuration repository bound to the configured database.
func NewMongoAvailabilityRepo() *MongoAvailabilityRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAvailabilityRepo{coll: db.Collection("scheduling_config")}
}

func (repo *MongoAvailabilityRepo) GetSchedulingConfiguration(ctx context.Context) (*models.SchedulingConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		ConfigID string                  `bson:"config_id"`
		Config   models.SchedulingConfig `bson:"config"`
	}
	err := repo.coll.FindOne(ctx, bson.M{"config_id": configDocID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConfigUnavailable
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	return &doc.Config, nil
}

func (repo *MongoAvailabilityRepo) UpsertSchedulingConfiguration(ctx context.Context, cfg *models.SchedulingConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"config_id": configDocID,
		"config":    cfg,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"config_id": configDocID}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert scheduling configuration: %w", err)
	}
	return nil
}
