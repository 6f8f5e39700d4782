package apiapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/akravets/sparkle/backend/internal/config"
	"github.com/akravets/sparkle/backend/internal/repo/memory"
	pgrepo "github.com/akravets/sparkle/backend/internal/repo/postgres"
	redrepo "github.com/akravets/sparkle/backend/internal/repo/redis"
	ratesvc "github.com/akravets/sparkle/backend/internal/services/rate"
	rewindsvc "github.com/akravets/sparkle/backend/internal/services/rewind"
	swipesvc "github.com/akravets/sparkle/backend/internal/services/swipes"
)

type App struct {
	cfg      config.Config
	logger   *zap.Logger
	server   *http.Server
	postgres *pgxpool.Pool
	redis    *goredis.Client
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, errors.New("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	rateRepo := redrepo.NewRateRepo(redisClient)
	swipeRepo := pgrepo.NewSwipeRepo(pool)
	likeRepo := pgrepo.NewLikeRepo(pool)
	matchRepo := pgrepo.NewMatchRepo(pool)
	profileRepo := pgrepo.NewProfileRepo(pool)
	rewindUsageRepo := pgrepo.NewRewindUsageRepo(pool)

	historyCache := memory.NewHistoryCache(cfg.Rewind.HistorySize)
	rateLimiter := ratesvc.NewLimiter(
		rateRepo,
		cfg.Limits.SwipeRatePerMinute,
		cfg.Limits.SwipeRatePer10Sec,
	)

	swipeService := swipesvc.NewService(swipesvc.Dependencies{
		Pool:        pool,
		SwipeStore:  swipeRepo,
		LikeStore:   likeRepo,
		MatchStore:  matchRepo,
		History:     historyCache,
		RateLimiter: rateLimiter,
	})
	rewindService := rewindsvc.NewService(rewindsvc.Dependencies{
		History:      historyCache,
		Quota:        rewindsvc.NewQuotaTracker(rewindUsageRepo, cfg.Rewind.FreeUsesPerDay),
		Compensation: rewindsvc.NewCompensationEngine(swipeRepo, likeRepo, matchRepo, profileRepo),
		Logger:       log,
	})

	RegisterRoutes(r, Dependencies{
		SwipeService:  swipeService,
		RewindService: rewindService,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		server:   server,
		postgres: pool,
		redis:    redisClient,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)

	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}

	return err
}
