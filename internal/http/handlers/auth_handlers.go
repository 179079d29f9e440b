package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/pkg/api"
)

// AuthHandlers handles the session endpoint set. Each endpoint is a
// stateless single-shot operation against the credential store and the
// token service; all session state lives in the signed cookie.
type AuthHandlers struct {
	authSvc    domain.AuthService
	cookieTTL  time.Duration
	secure     bool
	production bool
	logger     *zap.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookieTTL time.Duration, production bool, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		cookieTTL:  cookieTTL,
		secure:     production,
		production: production,
		logger:     logger,
	}
}

// SetAuthCookie writes the session cookie with the contract attributes:
// HttpOnly, SameSite=Lax, path "/", Secure in production.
func (h *AuthHandlers) SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.CookieName, token, int(h.cookieTTL.Seconds()), "/", "", h.secure, true)
}

// ClearAuthCookie expires the cookie immediately and emits the logout
// marker so every consumer of the response can observe the deauth.
func (h *AuthHandlers) ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.CookieName, "", -1, "/", "", h.secure, true)
	c.Header(api.HeaderAuthEvent, api.EventLogout)
}

func (h *AuthHandlers) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	resp := api.ErrorResponse{Error: msg}
	if !h.production {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// Register handles POST /auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome, email e senha são obrigatórios"})
		return
	}

	user, token, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email já cadastrado"})
			return
		}
		h.serverError(c, "Erro no cadastro", err)
		return
	}

	h.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, api.AuthResponse{Success: true, User: user.Sanitize()})
}

// Login handles POST /auth/login. Every credential failure, including a
// malformed body, yields the same 401 so accounts cannot be enumerated.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
			return
		}
		h.serverError(c, "Erro no servidor", err)
		return
	}

	h.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, api.AuthResponse{Success: true, User: user.Sanitize()})
}

// Logout handles POST /auth/logout. Idempotent: it always clears the
// cookie and succeeds, whether or not a session existed. The token value
// itself stays valid until natural expiry; only the cookie is removed.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me handles GET /auth/me. The stored record is authoritative; token
// claims only drive the lookup. Any failure is terminal for the session:
// the cookie is cleared and the logout marker emitted so a half-valid
// client state self-heals.
func (h *AuthHandlers) Me(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	token, err := c.Cookie(api.CookieName)
	if err != nil || token == "" {
		h.unauthenticated(c)
		return
	}

	user, err := h.authSvc.Authenticate(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.ClearAuthCookie(c)
			c.Header(api.HeaderAuthStatus, api.StatusUnauthenticated)
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		case errors.Is(err, domain.ErrTokenExpired),
			errors.Is(err, domain.ErrTokenInvalid),
			errors.Is(err, domain.ErrTokenMalformed):
			h.unauthenticated(c)
		default:
			h.ClearAuthCookie(c)
			h.serverError(c, "Erro no servidor", err)
		}
		return
	}

	c.Header(api.HeaderAuthStatus, api.StatusAuthenticated)
	c.JSON(http.StatusOK, user.Sanitize())
}

func (h *AuthHandlers) unauthenticated(c *gin.Context) {
	h.ClearAuthCookie(c)
	c.Header(api.HeaderAuthStatus, api.StatusUnauthenticated)
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
}
