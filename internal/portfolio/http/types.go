package http

import (
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/service"
	"go.uber.org/zap"
)

// Handler bundles the dependencies for dashboard HTTP endpoints.
type Handler struct {
	svc       *service.PortfolioService
	publicURL string
	logger    *zap.Logger
}

// New creates the handler. publicURL is the dashboard origin used in share links.
func New(svc *service.PortfolioService, publicURL string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, publicURL: publicURL, logger: logger}
}
