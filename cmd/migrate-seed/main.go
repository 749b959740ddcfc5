// Command migrate-seed inserts the compiled-in datasets (investments,
// affiliations, jobs, candidates) into the datastore. Duplicate keys
// count as already migrated; any real failure turns the exit code
// nonzero once the whole batch has run.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub.backend/internal/config"
	"talenthub.backend/internal/infrastructure/repositories"
	"talenthub.backend/internal/reconcile"
	"talenthub.backend/internal/refdata"
	"talenthub.backend/pkg/logger"
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

	invRepo := repositories.NewInvestmentRepository(db)
	affRepo := repositories.NewAffiliationRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)

	var records []reconcile.SeedRecord
	for _, inv := range refdata.SeedInvestments() {
		inv := inv
		records = append(records, reconcile.SeedRecord{Key: inv.ID, Create: func(ctx context.Context) error {
			return invRepo.Create(ctx, &inv)
		}})
	}
	summaries := []reconcile.SeedSummary{reconcile.Seed(ctx, "investments", records)}

	records = records[:0]
	for _, aff := range refdata.SeedAffiliations() {
		aff := aff
		records = append(records, reconcile.SeedRecord{Key: aff.ID, Create: func(ctx context.Context) error {
			return affRepo.Create(ctx, &aff)
		}})
	}
	summaries = append(summaries, reconcile.Seed(ctx, "affiliations", records))

	records = records[:0]
	for _, job := range refdata.SeedJobs() {
		job := job
		records = append(records, reconcile.SeedRecord{Key: job.ID, Create: func(ctx context.Context) error {
			return jobRepo.Create(ctx, &job)
		}})
	}
	summaries = append(summaries, reconcile.Seed(ctx, "jobs", records))

	records = records[:0]
	for _, cand := range refdata.SeedCandidates() {
		cand := cand
		records = append(records, reconcile.SeedRecord{Key: cand.ID, Create: func(ctx context.Context) error {
			return candidateRepo.Create(ctx, &cand)
		}})
	}
	summaries = append(summaries, reconcile.Seed(ctx, "candidates", records))

	exit := 0
	for _, s := range summaries {
		if s.HasFailures() {
			exit = 1
		}
	}
	logger.Info(ctx, "seed migration finished", zap.Int("exit_code", exit))
	return exit
}
