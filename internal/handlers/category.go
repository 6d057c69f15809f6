package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daehan-lim/moneychat/internal/logger"
	"github.com/daehan-lim/moneychat/internal/models"
)

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

func (h *Handlers) ListCategories(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.categories.SeedDefaults(ctx, uid); err != nil {
		ctxLog := logger.FromContext(ctx)
		ctxLog.Error().Err(err).Msg("failed to seed default categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 불러오지 못했습니다"})
		return
	}

	cats, err := h.categories.GetByUserID(ctx, uid)
	if err != nil {
		ctxLog := logger.FromContext(ctx)
		ctxLog.Error().Err(err).Msg("failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 불러오지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// CreateCategory also serves accepting a parser suggestedCategory.
func (h *Handlers) CreateCategory(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.categories.GetOrCreateByName(c.Request.Context(), uid, req.Name, models.TransactionType(req.Type))
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to create category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 저장하지 못했습니다"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}
