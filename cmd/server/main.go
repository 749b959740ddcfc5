package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub.backend/internal/config"
	"talenthub.backend/internal/infrastructure/repositories"
	"talenthub.backend/internal/interfaces/http/handlers"
	"talenthub.backend/internal/interfaces/http/middleware"
	"talenthub.backend/internal/usecases"
	"talenthub.backend/pkg/logger"
	"talenthub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis backs the public list cache only; the server still serves
	// every request without it.
	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, list caching disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	}

	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	linkRepo := repositories.NewCuratedLinkRepository(db)
	annRepo := repositories.NewAnnouncementRepository(db)
	invRepo := repositories.NewInvestmentRepository(db)
	affRepo := repositories.NewAffiliationRepository(db)
	postRepo := repositories.NewBlogPostRepository(db)
	apiKeyRepo := repositories.NewAPIKeyRepository(db)

	apiKeyUsecase := usecases.NewAPIKeyUsecase(apiKeyRepo)
	listCache := redis.NewListCache(cfg.Redis.ListTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAPIV1Routes(r, routeDeps{
		jobHandler:          handlers.NewJobHandler(jobRepo, listCache),
		candidateHandler:    handlers.NewCandidateHandler(candidateRepo, listCache),
		curatedLinkHandler:  handlers.NewCuratedLinkHandler(linkRepo),
		announcementHandler: handlers.NewAnnouncementHandler(annRepo),
		investmentHandler:   handlers.NewInvestmentHandler(invRepo),
		affiliationHandler:  handlers.NewAffiliationHandler(affRepo),
		blogPostHandler:     handlers.NewBlogPostHandler(postRepo),
		apiKeyHandler:       handlers.NewAPIKeyHandler(apiKeyUsecase),
		metaHandler:         handlers.NewMetaHandler(),
		publicHandler:       handlers.NewPublicHandler(jobRepo, candidateRepo, listCache),
		apiKeyUsecase:       apiKeyUsecase,
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
