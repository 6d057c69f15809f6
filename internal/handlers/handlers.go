package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daehan-lim/moneychat/internal/models"
	"github.com/daehan-lim/moneychat/internal/parser"
)

// CategoryStore is the category persistence the handlers need. Implemented
// by repository.CategoryRepository.
type CategoryStore interface {
	SeedDefaults(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]*models.Category, error)
	GetOrCreateByName(ctx context.Context, userID int64, name string, typ models.TransactionType) (*models.Category, error)
	IncrementUsage(ctx context.Context, categoryID int) error
}

// AccountStore is implemented by repository.AccountRepository.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUserID(ctx context.Context, userID int64) ([]models.Account, error)
	GetByID(ctx context.Context, accountID int, userID int64) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateBalance(ctx context.Context, accountID int, userID int64, balance int64) error
	Delete(ctx context.Context, accountID int, userID int64) error
}

// TransactionStore is implemented by repository.TransactionRepository.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	CreateBatch(ctx context.Context, txs []*models.Transaction) error
	GetByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*models.Transaction, error)
	GetTotalByType(ctx context.Context, userID int64, start, end time.Time, txType models.TransactionType) (int64, error)
	GetSummaryByCategory(ctx context.Context, userID int64, start, end time.Time, txType models.TransactionType) (map[int]int64, error)
	Delete(ctx context.Context, transactionID int, userID int64) error
}

// RecurringMaterializer is implemented by recurring.Materializer.
type RecurringMaterializer interface {
	MaterializeDue(ctx context.Context, userID int64, asOf time.Time) (int, error)
}

// Handlers bundles the parsing pipeline with its persistence collaborators.
type Handlers struct {
	parser       *parser.Parser
	categories   CategoryStore
	accounts     AccountStore
	transactions TransactionStore
	materializer RecurringMaterializer
}

func New(
	p *parser.Parser,
	categories CategoryStore,
	accounts AccountStore,
	transactions TransactionStore,
	materializer RecurringMaterializer,
) *Handlers {
	return &Handlers{
		parser:       p,
		categories:   categories,
		accounts:     accounts,
		transactions: transactions,
		materializer: materializer,
	}
}

func (h *Handlers) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/parse/text", h.ParseText)
	api.POST("/parse/image", h.ParseImage)
	api.POST("/parse/unified", h.ParseUnified)
	api.POST("/parse/accounts", h.ParseAccounts)

	api.GET("/transactions", h.ListTransactions)
	api.POST("/transactions", h.CreateTransaction)
	api.POST("/transactions/batch", h.CreateTransactionBatch)
	api.DELETE("/transactions/:id", h.DeleteTransaction)
	api.POST("/transactions/materialize", h.MaterializeRecurring)
	api.GET("/summary", h.MonthlySummary)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)

	api.GET("/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.PUT("/accounts/:id", h.UpdateAccount)
	api.DELETE("/accounts/:id", h.DeleteAccount)
	api.POST("/accounts/apply", h.ApplyAccountDecisions)
}

// userID reads the caller's identity from the X-User-ID header. Session
// management lives outside this service; the header stands in for it.
func userID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader("X-User-ID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid X-User-ID header"})
		return 0, false
	}
	return id, true
}
