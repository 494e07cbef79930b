package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/console-service/internal/api/http"
	"github.com/spec-kit/console-service/internal/api/http/handlers"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/config"
	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/feed"
	"github.com/spec-kit/console-service/internal/identity"
	"github.com/spec-kit/console-service/internal/observability"
	"github.com/spec-kit/console-service/internal/persistence"
	"github.com/spec-kit/console-service/internal/repository"
	"github.com/spec-kit/console-service/internal/service"
	"github.com/spec-kit/console-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	articleRepo := repository.NewArticleRepository(pool)
	flagRepo := repository.NewFlagRepository(pool)
	bugReportRepo := repository.NewBugReportRepository(pool)

	provider := identity.NewPostgresProvider(pool, cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokens)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartReconciliationWorker(dispatcher, logger)

	changeFeed := feed.NewRedisFeed(redis.Client, func(ctx context.Context, collection string) (feed.Snapshot, error) {
		flags, err := flagRepo.List(ctx)
		if err != nil {
			return feed.Snapshot{}, err
		}
		return feed.Snapshot{Collection: collection, Flags: flags}, nil
	}, logger)

	accountService := service.NewAccountService(service.AccountDependencies{
		Provider:    provider,
		AccountRepo: accountRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	articleService := service.NewArticleService(articleRepo, logger)
	flagService := service.NewFlagService(flagRepo, changeFeed, logger)
	bugReportService := service.NewBugReportService(bugReportRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(provider, tokens),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Articles:       handlers.NewArticlesHandler(articleService),
		Flags:          handlers.NewFlagsHandler(flagService),
		BugReports:     handlers.NewBugReportsHandler(bugReportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
