package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest snapshot of the scheduling backends.
type HealthStatus struct {
	Mongo             bool      `json:"mongo"`
	SessionCache      bool      `json:"sessionCache"`
	AvailabilityCache bool      `json:"availabilityCache"`
	CheckedAt         time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor polls the Mongo ledger and both Redis caches and keeps
// the in-memory snapshot current. Runs once immediately so /health never
// serves a zero value.
func StartHealthMonitor(mongoClient *mongo.Client) {
	check := func(ctx context.Context) {
		status := HealthStatus{
			Mongo:             mongoClient.Ping(ctx, nil) == nil,
			SessionCache:      GetSessionCacheClient().Ping(ctx).Err() == nil,
			AvailabilityCache: GetAvailabilityCacheClient().Ping(ctx).Err() == nil,
			CheckedAt:         time.Now(),
		}
		if !status.Mongo || !status.SessionCache || !status.AvailabilityCache {
			GetLogger().Warn("backend health degraded",
				zap.Bool("mongo", status.Mongo),
				zap.Bool("sessionCache", status.SessionCache),
				zap.Bool("availabilityCache", status.AvailabilityCache))
		}

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	go func() {
		ctx := context.Background()
		check(ctx)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check(ctx)
		}
	}()
}
