package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type tokenResponse struct {
	OK          bool            `json:"ok"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   int64           `json:"expires_at"`
	Session     *domain.Session `json:"session"`
}

func newTokenResponse(token string, s *domain.Session) tokenResponse {
	return tokenResponse{
		OK:          true,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt.Unix(),
		Session:     s,
	}
}

// Login signs in with the demo credentials
func (h *Handler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "username and password are required"})
		return
	}

	token, sess, err := h.authService.LoginWithCredentials(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
		return
	}
	if err != nil {
		h.fail(c, "credentials login failed", err)
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(token, sess))
}

// GitHubLogin redirects to the GitHub consent page
func (h *Handler) GitHubLogin(c *gin.Context) {
	url, err := h.authService.GitHubAuthURL(c.Request.Context())
	if errors.Is(err, domain.ErrProviderDisabled) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "github login is not configured"})
		return
	}
	if err != nil {
		h.fail(c, "github login failed", err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// GitHubCallback completes the GitHub sign-in
func (h *Handler) GitHubCallback(c *gin.Context) {
	code, state := c.Query("code"), c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "code and state are required"})
		return
	}

	token, sess, err := h.authService.GitHubCallback(c.Request.Context(), code, state)
	switch {
	case errors.Is(err, domain.ErrProviderDisabled):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "github login is not configured"})
		return
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid or expired state"})
		return
	case err != nil:
		logging.FromContext(c.Request.Context(), h.logger).Warn("github callback failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "github sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(token, sess))
}

// Session returns the current session, like useSession on the client
func (h *Handler) Session(c *gin.Context) {
	sess, ok := auth.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}

// Logout revokes the current session
func (h *Handler) Logout(c *gin.Context) {
	sess, ok := auth.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), sess.ID); err != nil {
		h.fail(c, "logout failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	logging.FromContext(c.Request.Context(), h.logger).Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": msg})
}
