// Command seed-test manages the fixture rows used by the end-to-end
// suite. Fixtures all carry the "test-" id prefix; cleaning touches
// nothing else. Default is clean-then-seed.
package main

import (
	"context"
	"flag"
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

// prefixDeleter is the slice of the repositories the cleaner needs.
type prefixDeleter interface {
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
}

// resolveModes maps the flag pair onto the run phases. Passing both
// flags behaves like passing neither: the default clean-then-seed.
func resolveModes(cleanOnly, seedOnly bool) (doClean, doSeed bool) {
	if cleanOnly == seedOnly {
		return true, true
	}
	return cleanOnly, seedOnly
}

func main() {
	os.Exit(run())
}

func run() int {
	cleanOnly := flag.Bool("clean", false, "delete fixture rows and exit")
	seedOnly := flag.Bool("seed", false, "insert fixture rows without cleaning first")
	flag.Parse()

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
	candidateRepo := repositories.NewCandidateRepository(db)

	doClean, doSeed := resolveModes(*cleanOnly, *seedOnly)

	if doClean {
		cleaners := map[string]prefixDeleter{
			"jobs":          jobRepo,
			"candidates":    candidateRepo,
			"curated_links": repositories.NewCuratedLinkRepository(db),
			"announcements": repositories.NewAnnouncementRepository(db),
			"investments":   repositories.NewInvestmentRepository(db),
			"affiliations":  repositories.NewAffiliationRepository(db),
			"blog_posts":    repositories.NewBlogPostRepository(db),
		}
		for entity, repo := range cleaners {
			n, err := repo.DeleteByIDPrefix(ctx, refdata.TestIDPrefix)
			if err != nil {
				logger.Error(ctx, "fixture clean failed", zap.String("entity", entity), zap.Error(err))
				return 1
			}
			logger.Info(ctx, "fixture rows removed", zap.String("entity", entity), zap.Int64("count", n))
		}
	}

	if !doSeed {
		return 0
	}

	var records []reconcile.SeedRecord
	for _, job := range refdata.TestJobs() {
		job := job
		records = append(records, reconcile.SeedRecord{Key: job.ID, Create: func(ctx context.Context) error {
			return jobRepo.Create(ctx, &job)
		}})
	}
	summaries := []reconcile.SeedSummary{reconcile.Seed(ctx, "jobs", records)}

	records = records[:0]
	for _, cand := range refdata.TestCandidates() {
		cand := cand
		records = append(records, reconcile.SeedRecord{Key: cand.ID, Create: func(ctx context.Context) error {
			return candidateRepo.Create(ctx, &cand)
		}})
	}
	summaries = append(summaries, reconcile.Seed(ctx, "candidates", records))

	for _, s := range summaries {
		if s.HasFailures() {
			return 1
		}
	}
	return 0
}
