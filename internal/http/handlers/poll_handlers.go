package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/internal/http/middleware"
	"github.com/luanpessuti/case01furia/pkg/api"
)

// PollHandlers serves fan polls. Voting requires an authenticated session.
type PollHandlers struct {
	pollSvc domain.PollService
	logger  *zap.Logger
}

// NewPollHandlers creates new poll handlers
func NewPollHandlers(pollSvc domain.PollService, logger *zap.Logger) *PollHandlers {
	return &PollHandlers{pollSvc: pollSvc, logger: logger}
}

// Get handles GET /polls/:id
func (h *PollHandlers) Get(c *gin.Context) {
	poll, err := h.pollSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquete não encontrada"})
			return
		}
		h.logger.Error("failed to get poll", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no servidor"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, poll)
}

// Vote handles POST /polls/:id/vote
func (h *PollHandlers) Vote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return
	}

	var req api.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Option == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Opção inválida"})
		return
	}

	poll, err := h.pollSvc.Vote(c.Request.Context(), c.Param("id"), req.Option, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPollNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquete não encontrada"})
		case errors.Is(err, domain.ErrUnknownOption):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Opção inválida"})
		case errors.Is(err, domain.ErrAlreadyVoted):
			c.JSON(http.StatusConflict, gin.H{"error": "Você já votou nesta enquete"})
		default:
			h.logger.Error("vote failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, api.VoteResponse{Success: true, Poll: poll})
}
