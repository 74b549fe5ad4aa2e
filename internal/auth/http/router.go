package http

import "github.com/gin-gonic/gin"

// Register attaches auth routes. requireSession guards the session endpoints
// and loginLimit throttles credential attempts.
func (h *Handler) Register(rg *gin.RouterGroup, requireSession, loginLimit gin.HandlerFunc) {
	rg.POST("/login", loginLimit, h.Login)
	rg.GET("/github/login", h.GitHubLogin)
	rg.GET("/github/callback", h.GitHubCallback)
	rg.GET("/session", requireSession, h.Session)
	rg.POST("/logout", requireSession, h.Logout)
}
