package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luanpessuti/case01furia/internal/infrastructure/database"
)

// HealthHandlers reports connectivity of the backing stores
type HealthHandlers struct {
	db    *gorm.DB
	redis *database.RedisClient
}

// NewHealthHandlers creates new health handlers
func NewHealthHandlers(db *gorm.DB, redis *database.RedisClient) *HealthHandlers {
	return &HealthHandlers{db: db, redis: redis}
}

// Check handles GET /health
func (h *HealthHandlers) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha na conexão: " + err.Error()})
		return
	}

	if err := h.redis.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha na conexão: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
