// Command migrate-assets uploads the local image tree to object storage
// and rewrites stored logo/image references to the uploaded URLs.
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

	"talenthub.backend/internal/assets"
	"talenthub.backend/internal/config"
	"talenthub.backend/internal/infrastructure/repositories"
	"talenthub.backend/internal/infrastructure/storage"
	"talenthub.backend/pkg/logger"
)

// assetSubdirs is the fixed folder set holding images. Anything else
// under the asset root is not migrated.
var assetSubdirs = []string{"logos", "covers", "team"}

// localPrefix is how stored references addressed the old local tree.
const localPrefix = "/assets"

var openDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

func main() {
	os.Exit(run())
}

func run() int {
	root := flag.String("dir", "./public/assets", "local asset tree to migrate")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	ctx := context.Background()

	store, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		logger.Error(ctx, "failed to initialize object storage", zap.Error(err))
		return 1
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		logger.Error(ctx, "failed to connect to database", zap.Error(err))
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	files, err := assets.Walk(*root, assetSubdirs)
	if err != nil {
		logger.Error(ctx, "failed to walk asset tree", zap.String("root", *root), zap.Error(err))
		return 1
	}
	logger.Info(ctx, "asset walk complete", zap.Int("files", len(files)))

	mapping := assets.NewUploader(store).UploadAll(ctx, files)
	mapper := assets.NewMapper(mapping, localPrefix, cfg.Storage.PublicBaseURL)

	jobRepo := repositories.NewJobRepository(db)
	annRepo := repositories.NewAnnouncementRepository(db)
	invRepo := repositories.NewInvestmentRepository(db)
	affRepo := repositories.NewAffiliationRepository(db)
	postRepo := repositories.NewBlogPostRepository(db)

	assets.Rewrite(ctx, mapper, []assets.Table{
		{Entity: "jobs", Lister: jobRepo, Updater: jobRepo},
		{Entity: "announcements", Lister: annRepo, Updater: annRepo},
		{Entity: "investments", Lister: invRepo, Updater: invRepo},
		{Entity: "affiliations", Lister: affRepo, Updater: affRepo},
		{Entity: "blog_posts", Lister: postRepo, Updater: postRepo},
	})
	return 0
}
