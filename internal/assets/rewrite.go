package assets

import (
	"context"

	"go.uber.org/zap"

	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/logger"
)

// Table pairs one entity's image-reference lister with its field
// updater. Both sides are usually the same repository.
type Table struct {
	Entity  string
	Lister  repositories.ImageRefLister
	Updater repositories.FieldUpdater
}

// RewriteSummary tallies one rewrite pass across all tables.
type RewriteSummary struct {
	Scanned int
	Updated int
	Failed  int
}

// Rewrite walks every image-like reference in the given tables, resolves
// each through the mapper, and writes back only the values that changed.
// Per-row failures are logged and counted; the pass always completes.
func Rewrite(ctx context.Context, mapper *Mapper, tables []Table) RewriteSummary {
	var summary RewriteSummary
	for _, table := range tables {
		refs, err := table.Lister.ListImageRefs(ctx)
		if err != nil {
			summary.Failed++
			logger.Error(ctx, "rewrite: listing image references failed",
				zap.String("entity", table.Entity),
				zap.Error(err))
			continue
		}

		for _, ref := range refs {
			summary.Scanned++
			resolved := mapper.Resolve(ref.Value)
			if resolved == ref.Value {
				continue
			}
			if err := table.Updater.UpdateField(ctx, ref.ID, ref.Field, resolved); err != nil {
				summary.Failed++
				logger.Error(ctx, "rewrite: update failed",
					zap.String("entity", table.Entity),
					zap.String("id", ref.ID),
					zap.String("field", ref.Field),
					zap.Error(err))
				continue
			}
			summary.Updated++
			logger.Info(ctx, "rewrite: reference updated",
				zap.String("entity", table.Entity),
				zap.String("id", ref.ID),
				zap.String("field", ref.Field))
		}
	}

	logger.Info(ctx, "rewrite: done",
		zap.Int("scanned", summary.Scanned),
		zap.Int("updated", summary.Updated),
		zap.Int("failed", summary.Failed))
	return summary
}
