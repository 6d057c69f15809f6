package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daehan-lim/moneychat/internal/logger"
	"github.com/daehan-lim/moneychat/internal/parser"
)

type parseTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type parseImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type" binding:"required"`
	Text        string `json:"text"`
}

func (h *Handlers) ParseText(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	categories, err := h.loadLLMCategories(c.Request.Context(), uid)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to load categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, h.parser.ParseText(c.Request.Context(), req.Text, categories))
}

func (h *Handlers) ParseImage(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req parseImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 and mime_type are required"})
		return
	}

	categories, err := h.loadLLMCategories(c.Request.Context(), uid)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to load categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, h.parser.ParseImage(c.Request.Context(), req.ImageBase64, req.MimeType, req.Text, categories))
}

func (h *Handlers) ParseUnified(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	categories, err := h.loadLLMCategories(c.Request.Context(), uid)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to load categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 불러오지 못했습니다"})
		return
	}

	accounts, err := h.accounts.GetByUserID(c.Request.Context(), uid)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to load accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌 정보를 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, h.parser.ParseUnified(c.Request.Context(), req.Text, categories, accounts))
}

func (h *Handlers) ParseAccounts(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	accounts, err := h.accounts.GetByUserID(c.Request.Context(), uid)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to load accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌 정보를 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, h.parser.ParseAccounts(c.Request.Context(), req.Text, accounts))
}

func (h *Handlers) loadLLMCategories(ctx context.Context, uid int64) ([]parser.LLMCategory, error) {
	if err := h.categories.SeedDefaults(ctx, uid); err != nil {
		return nil, err
	}
	cats, err := h.categories.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	llmCats := make([]parser.LLMCategory, 0, len(cats))
	for _, cat := range cats {
		llmCats = append(llmCats, parser.LLMCategory{
			Name: cat.CategoryName,
			Type: string(cat.Type),
		})
	}
	return llmCats, nil
}
