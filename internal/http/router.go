package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/internal/http/handlers"
	"github.com/luanpessuti/case01furia/internal/http/middleware"
)

// BuildRouter wires all routes. Session endpoints stay open; poll voting
// sits behind the cookie-auth middleware.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	mh *handlers.MatchHandlers,
	ph *handlers.PollHandlers,
	hh *handlers.HealthHandlers,
	authMW *middleware.AuthMW,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Método não permitido"})
	})

	r.GET("/health", hh.Check)

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.GET("/me", ah.Me)

	users := r.Group("/users")
	users.POST("/verify", uh.Verify)

	r.GET("/matches", mh.List)
	r.GET("/matches/:id", mh.Get)

	r.GET("/polls/:id", ph.Get)
	r.POST("/polls/:id/vote", authMW.WithCookie(), ph.Vote)

	return r
}
