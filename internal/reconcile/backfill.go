// Package reconcile implements the batch engines behind the admin
// scripts: field backfills that converge existing rows onto a
// desired-state map, and seed migrations that move static datasets into
// the datastore. Both run sequentially with per-record isolation; one
// bad record never aborts a batch.
package reconcile

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/logger"
)

// BackfillSummary tallies one backfill run.
type BackfillSummary struct {
	Updated  int
	NotFound int
	Failed   int
}

// Backfiller applies a desired-state map onto one named column of an
// existing table. The write is unconditional: a value that already
// matches is still written, so idempotence holds at the data level
// rather than the write-count level.
type Backfiller struct {
	updater repositories.FieldUpdater
	field   string
	entity  string
}

// NewBackfiller creates a backfiller for one column of one table.
func NewBackfiller(updater repositories.FieldUpdater, entity, field string) *Backfiller {
	return &Backfiller{updater: updater, entity: entity, field: field}
}

// Run applies desired onto the table, one record at a time, in sorted
// key order so tallies and logs are reproducible. Keys missing from the
// table are counted as not-found and skipped; re-running a partially
// applied batch is a normal workflow, not an error. Run itself only
// fails on a nil updater, never on per-record outcomes.
func (b *Backfiller) Run(ctx context.Context, desired map[string]string) (BackfillSummary, error) {
	if b.updater == nil {
		return BackfillSummary{}, errors.New("reconcile: nil field updater")
	}

	keys := make([]string, 0, len(desired))
	for k := range desired {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var summary BackfillSummary
	for _, key := range keys {
		err := b.updater.UpdateField(ctx, key, b.field, desired[key])
		switch {
		case err == nil:
			summary.Updated++
			logger.Info(ctx, "backfill: updated",
				zap.String("entity", b.entity),
				zap.String("id", key),
				zap.String("field", b.field))
		case errors.Is(err, domainerrors.ErrNotFound):
			summary.NotFound++
			logger.Warn(ctx, "backfill: record not found",
				zap.String("entity", b.entity),
				zap.String("id", key))
		default:
			summary.Failed++
			logger.Error(ctx, "backfill: update failed",
				zap.String("entity", b.entity),
				zap.String("id", key),
				zap.Error(err))
		}
	}

	logger.Info(ctx, "backfill: done",
		zap.String("entity", b.entity),
		zap.String("field", b.field),
		zap.Int("updated", summary.Updated),
		zap.Int("not_found", summary.NotFound),
		zap.Int("failed", summary.Failed))
	return summary, nil
}
