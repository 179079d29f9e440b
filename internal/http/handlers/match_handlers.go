package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
)

// MatchHandlers serves the polled live-match feed
type MatchHandlers struct {
	matchSvc domain.MatchService
	logger   *zap.Logger
}

// NewMatchHandlers creates new match handlers
func NewMatchHandlers(matchSvc domain.MatchService, logger *zap.Logger) *MatchHandlers {
	return &MatchHandlers{matchSvc: matchSvc, logger: logger}
}

// List handles GET /matches
func (h *MatchHandlers) List(c *gin.Context) {
	matches, err := h.matchSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list matches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no servidor"})
		return
	}

	// Snapshots go stale within a tick; clients must always re-fetch.
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, matches)
}

// Get handles GET /matches/:id
func (h *MatchHandlers) Get(c *gin.Context) {
	match, err := h.matchSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partida não encontrada"})
			return
		}
		h.logger.Error("failed to get match", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no servidor"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, match)
}
