// ABOUTME: Dependency construction for the application
// ABOUTME: Wires drivers, repositories, services and handlers together
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"news-remix/config"
	"news-remix/driver"
	"news-remix/handler"
	"news-remix/ratelimit"
	"news-remix/repository"
	"news-remix/service"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	DBPool         *pgxpool.Pool
	RedisClient    *redis.Client
	ArticleHandler *handler.ArticleHandler
	JobHandler     *handler.JobHandler
	Config         *config.Config
	Logger         *slog.Logger
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, func(), error) {
	dbPool, err := driver.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := driver.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// The lock is advisory; the service still works without Redis,
		// losing only concurrent-transform protection.
		log.Warn("redis unreachable, processing locks degraded", "addr", cfg.Redis.Addr, "error", err)
	}

	// Drivers
	limiter := ratelimit.New(cfg.RateLimit.MinInterval)
	newsClient := driver.NewNewsClient(
		driver.NewHTTPClient(cfg.HTTP, cfg.News.Timeout),
		limiter, cfg.News, cfg.RateLimit, cfg.HTTP.UserAgent, log)
	rewriterClient := driver.NewRewriterClient(
		driver.NewHTTPClient(cfg.HTTP, cfg.Rewriter.Timeout),
		cfg.Rewriter, cfg.Retry, log)
	speechClient := driver.NewSpeechClient(
		driver.NewHTTPClient(cfg.HTTP, cfg.Speech.Timeout),
		cfg.Speech, log)

	// Repositories
	articleRepo := repository.NewArticleRepository(dbPool, log)
	newsRepo := repository.NewNewsRepository(newsClient, log)
	rewriteRepo := repository.NewRewriteRepository(rewriterClient, log)
	speechRepo := repository.NewSpeechRepository(speechClient)
	lockRepo := repository.NewProcessingLockRepository(redisClient, cfg.Redis.LockTTL, log)

	// Services
	ingestionService := service.NewIngestionService(articleRepo, newsRepo,
		cfg.Retention.DefaultLimit, cfg.Retention.FetchDelay, log)
	transformService := service.NewTransformService(articleRepo, rewriteRepo, speechRepo, lockRepo, log)
	audioService := service.NewAudioService(articleRepo, speechRepo, log)

	// Handlers
	articleHandler := handler.NewArticleHandler(ingestionService, transformService,
		audioService, cfg.News.PageSize, log)
	jobHandler := handler.NewJobHandler(ingestionService, cfg.News.PageSize,
		cfg.Retention.KeepCount, log)

	cleanup := func() {
		dbPool.Close()
		if err := redisClient.Close(); err != nil {
			log.Error("failed to close redis client", "error", err)
		}
	}

	return &Dependencies{
		DBPool:         dbPool,
		RedisClient:    redisClient,
		ArticleHandler: articleHandler,
		JobHandler:     jobHandler,
		Config:         cfg,
		Logger:         log,
	}, cleanup, nil
}
