package auth

import (
	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

const (
	CtxSession = "session"
	CtxUserID  = "user_id"
	CtxRole    = "role"
)

// SessionFrom returns the session stored by the RequireSession middleware.
func SessionFrom(c *gin.Context) (*domain.Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*domain.Session)
	return s, ok && s != nil
}

// SetSession stores the session and its user fields in the Gin context.
func SetSession(c *gin.Context, s *domain.Session) {
	c.Set(CtxSession, s)
	c.Set(CtxUserID, s.User.ID)
	c.Set(CtxRole, s.User.Role)
}

// UserID returns the signed-in user's id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
