package http

import (
	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/service"
	"go.uber.org/zap"
)

type Handler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func New(authService *service.AuthService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}
