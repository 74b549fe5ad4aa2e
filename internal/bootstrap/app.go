package bootstrap

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/config"
	authrepo "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/repository"
	authservice "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/service"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/events"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/repository"
	portfolioservice "github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const ServiceName = "project-dashboard"

// App holds the wired services shared by every command.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Redis     *redis.Client
	Portfolio *portfolioservice.PortfolioService
	Auth      *authservice.AuthService
}

// NewPortfolio builds a seeded portfolio service. A zero random seed draws
// from the clock.
func NewPortfolio(cfg config.SeedConfig, notifier events.Notifier, logger *zap.Logger) (*portfolioservice.PortfolioService, error) {
	seed := uint64(cfg.RandomSeed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	repo := repository.NewCompanyRepository(domain.NewFactory(rng, time.Now))
	svc := portfolioservice.NewPortfolioService(repo, notifier, logger)
	if err := svc.Seed(cfg.Companies, cfg.ProjectsPerCompany); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewApp connects Redis when configured and wires the services. Stores fall
// back to process memory without Redis.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	rdb, err := OpenRedis(ctx, RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("open redis: %w", err)
	}

	var (
		notifier events.Notifier
		sessions authrepo.SessionStore
	)
	if rdb != nil {
		notifier = events.NewRedisNotifier(rdb)
		sessions = authrepo.NewRedisSessionStore(rdb)
		logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		notifier = events.NewMemoryNotifier()
		sessions = authrepo.NewMemorySessionStore(nil)
		logger.Info("redis not configured, using in-memory stores")
	}

	portfolio, err := NewPortfolio(cfg.Seed, notifier, logger)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}

	authSvc := authservice.NewAuthService(sessions, authservice.Options{
		Secret:       []byte(cfg.Auth.JWTSecret),
		TokenTTL:     cfg.Auth.TokenTTL,
		DemoUsername: cfg.Auth.DemoUsername,
		DemoPassword: cfg.Auth.DemoPassword,
		GitHub:       authservice.GitHubConfig(cfg.Auth.GitHub.ClientID, cfg.Auth.GitHub.ClientSecret, cfg.Auth.GitHub.RedirectURL),
	}, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Redis:     rdb,
		Portfolio: portfolio,
		Auth:      authSvc,
	}, nil
}

// Router builds the HTTP engine for the app.
func (a *App) Router() *gin.Engine {
	return BuildRouter(RouterDeps{
		ServiceName:  ServiceName,
		Version:      a.Config.App.Version,
		PublicURL:    a.Config.App.PublicURL,
		AllowOrigins: a.Config.CORS.AllowOrigins,
		LoginRate:    a.Config.Auth.LoginRate,
		LoginBurst:   a.Config.Auth.LoginBurst,
		Redis:        a.Redis,
		Portfolio:    a.Portfolio,
		Auth:         a.Auth,
		Logger:       a.Logger,
	})
}

func (a *App) Close() error {
	if a.Redis != nil {
		return a.Redis.Close()
	}
	return nil
}
