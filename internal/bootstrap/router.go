package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/project-dashboard/internal/api/http"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/api/http/routes"
	authservice "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/service"
	portfolioservice "github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	PublicURL    string
	AllowOrigins []string
	LoginRate    float64
	LoginBurst   int
	Redis        *redis.Client
	Portfolio    *portfolioservice.PortfolioService
	Auth         *authservice.AuthService
	Logger       *zap.Logger
}

func CORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept", "Accept-Language",
		"Origin", "Authorization", middleware.HeaderRequestID,
	}
	corsConfig.ExposeHeaders = []string{middleware.HeaderRequestID, "Content-Disposition"}
	return corsConfig
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if len(dep.AllowOrigins) > 0 {
		r.Use(cors.New(CORSConfig(dep.AllowOrigins)))
	}
	r.Use(middleware.RequestIDMiddleware(dep.Logger))

	companies := func() int { return len(dep.Portfolio.ListCompanies()) }
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, companies)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Portfolio:  dep.Portfolio,
		Auth:       dep.Auth,
		PublicURL:  dep.PublicURL,
		LoginRate:  dep.LoginRate,
		LoginBurst: dep.LoginBurst,
		Logger:     dep.Logger,
	})

	return r
}
