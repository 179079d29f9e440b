package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/pkg/api"
)

const userContextKey = "current_user"

// AuthMW guards endpoints that require an authenticated session cookie
type AuthMW struct {
	authSvc domain.AuthService
	secure  bool
}

// NewAuthMW creates new cookie-auth middleware
func NewAuthMW(authSvc domain.AuthService, secure bool) *AuthMW {
	return &AuthMW{authSvc: authSvc, secure: secure}
}

// WithCookie returns middleware that authenticates the request from the
// session cookie. Any failure deauthenticates the client fully: expired
// cookie cleared plus the logout marker, so interceptors on any endpoint
// observe the logout, not just the logout endpoint's own response.
func (mw *AuthMW) WithCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(api.CookieName)
		if err != nil || token == "" {
			mw.reject(c)
			return
		}

		user, err := mw.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			mw.reject(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func (mw *AuthMW) reject(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.CookieName, "", -1, "/", "", mw.secure, true)
	c.Header(api.HeaderAuthEvent, api.EventLogout)
	c.Header(api.HeaderAuthStatus, api.StatusUnauthenticated)
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
	c.Abort()
}

// CurrentUser returns the authenticated user set by WithCookie
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
