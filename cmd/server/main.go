package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/config"
	"github.com/fadilmartias/skillsyncer/internal/domain/fiber/handler"
	applogger "github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/fadilmartias/skillsyncer/internal/metrics"
	"github.com/fadilmartias/skillsyncer/internal/middleware"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/repository"
	"github.com/fadilmartias/skillsyncer/internal/service"
	"github.com/fadilmartias/skillsyncer/internal/usecase"
	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	appLog := applogger.New(appConfig.LogLevel, appConfig.LogFormat)
	defer appLog.Sync()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.HeaderUserID + ", " + middleware.HeaderUserRole,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()
	m := metrics.New()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postingRepo := repository.NewPostingRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	var embedder service.EmbeddingService
	gemini, err := service.NewGeminiService(ctx, appLog)
	switch {
	case err == nil:
		embedder = gemini
	case errors.Is(err, service.ErrEmbeddingsDisabled):
		appLog.Warn("embeddings disabled, recommendations rank by match score", nil)
	default:
		appLog.WithError(err).Error("gemini unavailable, recommendations rank by match score", nil)
	}

	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, appConfig.UploadDir, m, appLog)
	postingUC := usecase.NewPostingUsecase(postingRepo, userRepo, profileRepo, embedder, m, appLog)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, postingRepo, profileRepo,
		connectLocker(ctx, appLog), newNotifier(ctx, appLog), m, appLog)

	handler.NewJobseekerHandler(profileUC, postingUC, applicationUC).RegisterRoutes(app)
	handler.NewEmployerHandler(postingUC, applicationUC).RegisterRoutes(app)

	app.Static("/uploads", appConfig.UploadDir)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "SkillSyncer API is running",
			Data:    fiber.Map{"time": time.Now().UTC()},
		})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			appLog.Debug("runtime stats", map[string]interface{}{"goroutines": runtime.NumGoroutine()})
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		appLog.Info("shutting down", nil)
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLog.WithError(err).Error("shutdown failed", nil)
		}
	}()

	addr := appConfig.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	appLog.Info("server running", map[string]interface{}{"addr": addr})
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	pgDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	pgDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	pgDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	for _, ext := range []string{`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`, `CREATE EXTENSION IF NOT EXISTS vector`} {
		if err := db.Exec(ext).Error; err != nil {
			log.Fatalf("enable extension: %v", err)
		}
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.JobseekerProfile{},
		&model.InternshipPosting{},
		&model.InternshipApplication{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

// connectLocker returns the redis submission lock, or a no-op lock when
// redis cannot be reached.
func connectLocker(ctx context.Context, log applogger.Logger) service.SubmissionLocker {
	cfg := config.LoadRedisConfig()
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Warn("redis unavailable, submission lock disabled", map[string]interface{}{"addr": cfg.Addr})
		_ = rdb.Close()
		return service.NoopLocker{}
	}
	return service.NewSubmissionLock(rdb, cfg.LockTTL)
}

func newNotifier(ctx context.Context, log applogger.Logger) service.Notifier {
	cfg := config.LoadSESConfig()
	if !cfg.Enabled() {
		return service.NewLogNotifier(log)
	}
	n, err := service.NewSESNotifier(ctx, cfg.Region, cfg.FromAddress, log)
	if err != nil {
		log.WithError(err).Warn("ses unavailable, logging notifications instead", nil)
		return service.NewLogNotifier(log)
	}
	return n
}
