// Command backfill-descriptions converges the jobs table onto the
// compiled-in description map, then fills missing company logos from
// the matching portfolio investment. Best effort: per-record problems
// are logged and counted, and the process still exits 0.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub.backend/internal/config"
	domainerrors "talenthub.backend/internal/domain/errors"
	domainrepo "talenthub.backend/internal/domain/repositories"
	"talenthub.backend/internal/infrastructure/repositories"
	"talenthub.backend/internal/reconcile"
	"talenthub.backend/internal/refdata"
	"talenthub.backend/pkg/logger"
	"talenthub.backend/pkg/utils"
)

var openDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	ctx := context.Background()

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		logger.Error(ctx, "failed to connect to database", zap.Error(err))
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	jobRepo := repositories.NewJobRepository(db)
	invRepo := repositories.NewInvestmentRepository(db)

	backfiller := reconcile.NewBackfiller(jobRepo, "jobs", "description")
	if _, err := backfiller.Run(ctx, refdata.JobDescriptions); err != nil {
		logger.Error(ctx, "description backfill could not start", zap.Error(err))
		return 1
	}

	backfillLogos(ctx, jobRepo, invRepo)
	return 0
}

// backfillLogos fills empty job logos from the investment whose title
// matches the job's company string. The match is by convention, not a
// foreign key, so a missing investment is normal.
func backfillLogos(ctx context.Context, jobRepo domainrepo.JobRepository, invRepo domainrepo.InvestmentRepository) {
	jobs, _, err := jobRepo.List(ctx, domainrepo.JobFilter{}, utils.GetPaginationParams(1, 0))
	if err != nil {
		logger.Error(ctx, "logo backfill: listing jobs failed", zap.Error(err))
		return
	}

	desired := map[string]string{}
	for _, job := range jobs {
		if job.CompanyLogo.Valid && job.CompanyLogo.String != "" {
			continue
		}
		inv, err := invRepo.GetByTitle(ctx, job.Company)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrNotFound) {
				logger.Error(ctx, "logo backfill: investment lookup failed",
					zap.String("company", job.Company), zap.Error(err))
			}
			continue
		}
		if inv.LogoURL != "" {
			desired[job.ID] = inv.LogoURL
		}
	}

	if len(desired) == 0 {
		logger.Info(ctx, "logo backfill: nothing to update")
		return
	}
	_, _ = reconcile.NewBackfiller(jobRepo, "jobs", "company_logo").Run(ctx, desired)
}
