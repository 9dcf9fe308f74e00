// @title         fundi API
// @version       1.0
// @description   Маркетплейс локальных услуг: каталог исполнителей, заявки клиентов, отклики, приглашения и отзывы.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/spf13/pflag"

	_ "github.com/artem13815/fundi/docs"

	"github.com/artem13815/fundi/api/http"
	"github.com/artem13815/fundi/api/http/handlers"
	"github.com/artem13815/fundi/pkg/application"
	"github.com/artem13815/fundi/pkg/auth"
	"github.com/artem13815/fundi/pkg/cache"
	"github.com/artem13815/fundi/pkg/catalog"
	"github.com/artem13815/fundi/pkg/config"
	"github.com/artem13815/fundi/pkg/feed"
	"github.com/artem13815/fundi/pkg/health"
	"github.com/artem13815/fundi/pkg/health/checkers"
	"github.com/artem13815/fundi/pkg/job"
	"github.com/artem13815/fundi/pkg/logger"
	"github.com/artem13815/fundi/pkg/repository/memory"
	pgrepo "github.com/artem13815/fundi/pkg/repository/postgres"
	"github.com/artem13815/fundi/pkg/review"
	"github.com/artem13815/fundi/pkg/security/jwt"
	"github.com/artem13815/fundi/pkg/storage/postgres"
	redisstore "github.com/artem13815/fundi/pkg/storage/redis"
)

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file (default .env)")
	port := pflag.String("port", "", "HTTP port, overrides PORT")
	seedFile := pflag.String("seed-file", "", "catalog seed YAML, overrides CATALOG_SEED_FILE")
	pflag.Parse()

	// Load configuration from env/.env
	cfg := config.Load(*envFile)
	if *port != "" {
		cfg.Port = *port
	}
	if *seedFile != "" {
		cfg.CatalogSeedFile = *seedFile
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)
	if err := cfg.Validate(); err != nil {
		fatal(log, "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := catalog.LoadSeed(cfg.CatalogSeedFile)
	if err != nil {
		fatal(log, "load catalog seed", err)
	}
	store, err := catalog.NewStore(seed)
	if err != nil {
		fatal(log, "build catalog", err)
	}

	var (
		readiness []health.Checker
		pageCache catalog.PageCache
	)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			fatal(log, "redis connect", err)
		}
		defer rdb.Close()
		pageCache = cache.New(rdb, time.Duration(cfg.CatalogCacheTTL)*time.Second)
		readiness = append(readiness, checkers.NewRedisChecker(rdb))
		log.Info("catalog cache enabled", "ttl_seconds", cfg.CatalogCacheTTL)
	}
	catalogUC := catalog.NewService(store, pageCache)

	// Repositories: Postgres when DATABASE_URL is set, otherwise in-memory.
	var (
		jobsRepo    job.Repository
		appsRepo    application.Repository
		reviewsRepo review.Repository
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			fatal(log, "postgres connect", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			fatal(log, "postgres migrate", err)
		}
		jobsRepo = pgrepo.NewJobRepository(pool)
		appsRepo = pgrepo.NewApplicationRepository(pool)
		reviewsRepo = pgrepo.NewReviewRepository(pool)
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
		log.Info("using postgres storage")
	} else {
		db := memory.NewDB()
		defer db.Close()
		jobsRepo = memory.NewJobRepository(db)
		appsRepo = memory.NewApplicationRepository(db)
		reviewsRepo = memory.NewReviewRepository(db)
		log.Info("using in-memory storage")
	}

	if cfg.SeedDemoJobs {
		n, err := job.SeedDemo(ctx, jobsRepo, seed.DemoJobs)
		if err != nil {
			fatal(log, "seed demo jobs", err)
		}
		log.Info("demo jobs seeded", "count", n)
	}

	jobUC := job.NewService(jobsRepo, catalogUC)
	feedUC := feed.NewService(catalogUC, jobsRepo, cfg.FeedExcludeUnavailable)
	appUC := application.NewService(appsRepo, jobsRepo, catalogUC)
	reviewUC := review.NewService(reviewsRepo)

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	var authMW fiber.Handler
	if cfg.AuthRequired {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(http.RequestLogger(log))
	app.Use(recover.New())

	// Register routes
	http.Register(app, http.Handlers{
		Auth:         handlers.NewAuthHandler(auth.NewAuthService(jwtGen)),
		Health:       handlers.NewHealthHandler(health.NewService(readiness...)),
		Catalog:      handlers.NewCatalogHandler(catalogUC),
		Jobs:         handlers.NewJobHandler(jobUC, feedUC),
		Applications: handlers.NewApplicationHandler(appUC),
		Reviews:      handlers.NewReviewHandler(reviewUC),
	}, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	log.Info("HTTP server listening", "port", cfg.Port, "auth_required", cfg.AuthRequired)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server stopped", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	os.Exit(1)
}
