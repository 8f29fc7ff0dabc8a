package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/domain/user"
	"blog-service/internal/usecase/auth"
)

const ctxCurrentUserKey = "auth.currentUser"

// SessionAuth resolves the session cookie into the current user and
// gates protected routes. CurrentUser runs on every request, including
// anonymous ones; RequireAuth and RequireAdmin compose after it.
type SessionAuth struct {
	uc         auth.Usecase
	cookieName string
	log        *zap.Logger
}

// NewSessionAuth creates a new SessionAuth middleware set.
func NewSessionAuth(uc auth.Usecase, cookieName string, log *zap.Logger) *SessionAuth {
	return &SessionAuth{uc: uc, cookieName: cookieName, log: log}
}

// CurrentUser resolves the caller's identity and stashes it on the
// context. Anonymous requests pass through with no identity set; a
// session store failure fails the request rather than silently
// downgrading to anonymous.
func (m *SessionAuth) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		info, err := m.uc.CurrentUser(c.Request.Context(), token)
		if err != nil {
			m.log.Error("failed to resolve current user", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "An internal error occurred",
			})
			return
		}
		if info != nil {
			c.Set(ctxCurrentUserKey, info)
		}

		c.Next()
	}
}

// RequireAuth aborts with 401 when the request is anonymous.
func (m *SessionAuth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "You need to log in or register first",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 for anonymous callers and 403 for
// authenticated callers without the admin role.
func (m *SessionAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := CurrentUserFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "You need to log in or register first",
			})
			return
		}
		if info.Role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserFrom returns the identity resolved by CurrentUser, so
// handlers don't need to know the context key.
func CurrentUserFrom(c *gin.Context) (*auth.UserInfo, bool) {
	v, ok := c.Get(ctxCurrentUserKey)
	if !ok {
		return nil, false
	}
	info, ok := v.(*auth.UserInfo)
	return info, ok
}
