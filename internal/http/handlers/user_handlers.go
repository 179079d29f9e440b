package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/pkg/api"
)

// UserHandlers handles profile and verification requests
type UserHandlers struct {
	verificationSvc domain.VerificationService
	production      bool
	logger          *zap.Logger
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(verificationSvc domain.VerificationService, production bool, logger *zap.Logger) *UserHandlers {
	return &UserHandlers{
		verificationSvc: verificationSvc,
		production:      production,
		logger:          logger,
	}
}

// Verify handles POST /users/verify
func (h *UserHandlers) Verify(c *gin.Context) {
	var req api.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId é obrigatório"})
		return
	}

	if err := h.verificationSvc.Verify(c.Request.Context(), req.UserID, req.SocialLinks); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
			return
		}
		h.logger.Error("verification failed", zap.Error(err))
		resp := api.ErrorResponse{Error: "Erro na verificação"}
		if !h.production {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
