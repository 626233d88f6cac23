package cron

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"homely/config"
	catalogRepo "homely/database/repository/catalog"
	"homely/services/scheduling"
	"homely/services/tasks"
	"homely/utils"
)

// InitPrecomputeWorker runs the availability precompute worker in the
// background. Each run recomputes the next available day for every catalog
// category and caches it for the storefront badges.
func InitPrecomputeWorker(svc scheduling.SchedulingService, catalog catalogRepo.CatalogRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAvailabilityPrecompute, handlePrecomputeTask(svc, catalog))

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("availability precompute worker stopped", zap.Error(err))
		}
	}()

	// Prime the cache on startup so badges are populated before the first booking.
	go func() {
		client := asynq.NewClient(redisOpts)
		defer client.Close()
		enqueuer := &tasks.Enqueuer{Client: client}
		if err := enqueuer.EnqueuePrecompute(context.Background()); err != nil {
			logger.Warn("failed to enqueue initial availability precompute", zap.Error(err))
		}
	}()
}

func handlePrecomputeTask(svc scheduling.SchedulingService, catalog catalogRepo.CatalogRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()
		cache := utils.GetAvailabilityCacheClient()

		categoryIDs, err := catalog.ListCategoryIDs(ctx)
		if err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			date, err := svc.NextAvailableDayForCategory(ctx, categoryID)
			if err != nil {
				logger.Warn("precompute failed for category",
					zap.String("categoryID", categoryID), zap.Error(err))
				continue
			}

			key := utils.NextAvailableDayPrefix + categoryID
			if date == "" {
				// Scan bound exhausted: drop the badge rather than show a stale date.
				if err := cache.Del(ctx, key).Err(); err != nil {
					logger.Warn("failed to clear next-day cache",
						zap.String("categoryID", categoryID), zap.Error(err))
				}
				continue
			}
			if err := cache.Set(ctx, key, date, utils.NextAvailableDayTTL).Err(); err != nil {
				logger.Warn("failed to cache next available day",
					zap.String("categoryID", categoryID), zap.Error(err))
			}
		}

		logger.Info("availability precompute completed",
			zap.Int("categories", len(categoryIDs)),
			zap.Duration("ttl", utils.NextAvailableDayTTL))
		return nil
	}
}
