package routes

import (
	authdomain "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/domain"
	authhttp "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/middleware"
	authservice "github.com/GoSim-25-26J-441/project-dashboard/internal/auth/service"
	portfoliohttp "github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/http"
	portfolioservice "github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type V1Deps struct {
	Portfolio  *portfolioservice.PortfolioService
	Auth       *authservice.AuthService
	PublicURL  string
	LoginRate  float64
	LoginBurst int
	Logger     *zap.Logger
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	requireSession := authmw.RequireSession(dep.Auth)
	loginLimit := authmw.NewIPRateLimiter(dep.LoginRate, dep.LoginBurst).Middleware()

	authHandler := authhttp.New(dep.Auth, dep.Logger)
	authHandler.Register(api.Group("/auth"), requireSession, loginLimit)

	dashboard := portfoliohttp.New(dep.Portfolio, dep.PublicURL, dep.Logger)
	dashboard.Register(api, requireSession, authmw.RequireRole(authdomain.RoleAdmin))
}
