package reconcile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/pkg/logger"
)

// SeedSummary tallies one seed run for a single entity type.
type SeedSummary struct {
	Entity  string
	Created int
	Skipped int
	Failed  int
}

// HasFailures reports whether any record hit a real error. Duplicate
// skips are expected on re-runs and do not count.
func (s SeedSummary) HasFailures() bool { return s.Failed > 0 }

// SeedRecord is one insertable record: its key for log output and a
// create closure binding the typed repository call.
type SeedRecord struct {
	Key    string
	Create func(ctx context.Context) error
}

// Seed inserts records one at a time. A duplicate key means the record
// was migrated by an earlier run and counts as skipped; any other error
// is logged with the record key and the batch continues.
func Seed(ctx context.Context, entity string, records []SeedRecord) SeedSummary {
	summary := SeedSummary{Entity: entity}
	for _, rec := range records {
		err := rec.Create(ctx)
		switch {
		case err == nil:
			summary.Created++
			logger.Info(ctx, "seed: created",
				zap.String("entity", entity),
				zap.String("id", rec.Key))
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			summary.Skipped++
			logger.Info(ctx, "seed: already migrated, skipped",
				zap.String("entity", entity),
				zap.String("id", rec.Key))
		default:
			summary.Failed++
			logger.Error(ctx, "seed: insert failed",
				zap.String("entity", entity),
				zap.String("id", rec.Key),
				zap.Error(err))
		}
	}

	logger.Info(ctx, "seed: done",
		zap.String("entity", entity),
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return summary
}
