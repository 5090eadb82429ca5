package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venomous-dashboard/notes-service/internal/config"
	"github.com/venomous-dashboard/notes-service/internal/handler"
	"github.com/venomous-dashboard/notes-service/internal/middleware"
	"github.com/venomous-dashboard/notes-service/internal/repository"
	"github.com/venomous-dashboard/notes-service/internal/routes"
	"github.com/venomous-dashboard/notes-service/internal/service"
	pkgcache "github.com/venomous-dashboard/notes-service/pkg/cache"
	pkglogger "github.com/venomous-dashboard/notes-service/pkg/logger"
	pkgredis "github.com/venomous-dashboard/notes-service/pkg/redis"
)

func main() {
	dotenvFiles := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		// Logger may not be configured yet; fail loudly either way
		pkglogger.Init("production")
		pkglogger.Get().Fatal().Err(err).Msg("invalid configuration")
	}

	pkglogger.Init(cfg.Env)
	log := pkglogger.Get()
	log.Info().Str("env", cfg.Env).Strs("dotenv", dotenvFiles).Msg("starting notes service")

	// Postgres connection, pinged once at startup
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get database handle")
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("database ping failed")
	}
	log.Info().Msg("connected to Postgres")

	// Redis connection, pinged once at startup
	redisClient, err := pkgredis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPoolSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	log.Info().Msg("connected to Redis")

	cacheService := pkgcache.NewService(redisClient)

	// Repositories
	memoRepo := repository.NewMemoRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	chapterRepo := repository.NewChapterRepository(db)

	// Services
	memoSvc := service.NewMemoService(memoRepo, cacheService)
	articleSvc := service.NewArticleService(articleRepo, chapterRepo, cacheService)
	chapterSvc := service.NewChapterService(chapterRepo, articleRepo, cacheService)

	// Handlers
	memoHandler := handler.NewMemoHandler(memoSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)
	chapterHandler := handler.NewChapterHandler(chapterSvc)

	if cfg.Env != "development" && cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-User-ID", "X-User-Email", "X-User-Role"},
		AllowCredentials: false,
	}))

	routes.Setup(router, memoHandler, articleHandler, chapterHandler, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Int("port", cfg.Port).Msg("notes service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("database close failed")
	}
	log.Info().Msg("stopped")
}
