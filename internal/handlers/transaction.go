package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daehan-lim/moneychat/internal/logger"
	"github.com/daehan-lim/moneychat/internal/models"
)

type createTransactionRequest struct {
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	IsRecurring bool   `json:"isRecurring"`
	DayOfMonth  *int   `json:"dayOfMonth"`
}

type createTransactionBatchRequest struct {
	Transactions []createTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

func (h *Handlers) CreateTransaction(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.buildTransaction(c, uid, req)
	if err != nil {
		return // response already written
	}

	if err := h.transactions.Create(c.Request.Context(), tx); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to create transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "거래를 저장하지 못했습니다"})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *Handlers) CreateTransactionBatch(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req createTransactionBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txs := make([]*models.Transaction, 0, len(req.Transactions))
	for _, item := range req.Transactions {
		tx, err := h.buildTransaction(c, uid, item)
		if err != nil {
			return
		}
		txs = append(txs, tx)
	}

	if err := h.transactions.CreateBatch(c.Request.Context(), txs); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to create transaction batch")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "거래를 저장하지 못했습니다"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(txs), "transactions": txs})
}

// buildTransaction maps a request item to a model, resolving the category
// name to an id (creating it on first use). Writes the error response itself.
func (h *Handlers) buildTransaction(c *gin.Context, uid int64, req createTransactionRequest) (*models.Transaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + req.Date})
		return nil, err
	}

	typ := models.TransactionType(req.Type)
	cat, err := h.categories.GetOrCreateByName(c.Request.Context(), uid, req.Category, typ)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to resolve category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리를 저장하지 못했습니다"})
		return nil, err
	}
	if err := h.categories.IncrementUsage(c.Request.Context(), cat.CategoryID); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Warn().Err(err).Msg("failed to bump category usage")
	}

	tx := &models.Transaction{
		UserID:          uid,
		CategoryID:      &cat.CategoryID,
		Type:            typ,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
		IsRecurring:     req.IsRecurring,
	}
	if req.IsRecurring {
		tx.DayOfMonth = req.DayOfMonth
	}
	return tx, nil
}

func (h *Handlers) ListTransactions(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	from, err := time.Parse("2006-01-02", c.DefaultQuery("from", time.Now().AddDate(0, -1, 0).Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.DefaultQuery("to", time.Now().Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	txs, err := h.transactions.GetByDateRange(c.Request.Context(), uid, from, to)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to list transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "거래 내역을 불러오지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

func (h *Handlers) DeleteTransaction(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), id, uid); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to delete transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "거래를 삭제하지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handlers) MaterializeRecurring(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	created, err := h.materializer.MaterializeDue(c.Request.Context(), uid, time.Now().UTC())
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to materialize recurring transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "반복 거래를 생성하지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// MonthlySummary returns income/expense totals and per-category expense
// totals for a month ("YYYY-MM", default current).
func (h *Handlers) MonthlySummary(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	month, err := time.Parse("2006-01", c.DefaultQuery("month", time.Now().Format("2006-01")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, want YYYY-MM"})
		return
	}
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	ctx := c.Request.Context()
	income, err := h.transactions.GetTotalByType(ctx, uid, start, end, models.TransactionTypeIncome)
	if err != nil {
		ctxLog := logger.FromContext(ctx)
		ctxLog.Error().Err(err).Msg("failed to build monthly summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "통계를 불러오지 못했습니다"})
		return
	}
	expense, err := h.transactions.GetTotalByType(ctx, uid, start, end, models.TransactionTypeExpense)
	if err != nil {
		ctxLog := logger.FromContext(ctx)
		ctxLog.Error().Err(err).Msg("failed to build monthly summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "통계를 불러오지 못했습니다"})
		return
	}
	byCategory, err := h.transactions.GetSummaryByCategory(ctx, uid, start, end, models.TransactionTypeExpense)
	if err != nil {
		ctxLog := logger.FromContext(ctx)
		ctxLog.Error().Err(err).Msg("failed to build monthly summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "통계를 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":               start.Format("2006-01"),
		"income_total":        income,
		"expense_total":       expense,
		"expense_by_category": byCategory,
	})
}
