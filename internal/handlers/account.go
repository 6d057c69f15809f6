package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daehan-lim/moneychat/internal/logger"
	"github.com/daehan-lim/moneychat/internal/models"
	"github.com/daehan-lim/moneychat/internal/parser"
)

type accountRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=asset debt"`
	SubType string `json:"sub_type"`
	Icon    string `json:"icon"`
	Balance int64  `json:"balance" binding:"gte=0"`
}

type applyDecisionsRequest struct {
	Decisions []parser.MatchDecision `json:"decisions" binding:"required,min=1"`
}

func (h *Handlers) ListAccounts(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	accounts, err := h.accounts.GetByUserID(c.Request.Context(), uid)
	if err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to list accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌 정보를 불러오지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (h *Handlers) CreateAccount(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := &models.Account{
		UserID:  uid,
		Name:    req.Name,
		Type:    models.AccountType(req.Type),
		SubType: req.SubType,
		Icon:    req.Icon,
		Balance: req.Balance,
	}
	if account.SubType == "" {
		account.SubType = models.AccountSubTypeOther
	}

	if err := h.accounts.Create(c.Request.Context(), account); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to create account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌를 저장하지 못했습니다"})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *Handlers) UpdateAccount(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accounts.GetByID(c.Request.Context(), id, uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "계좌를 찾을 수 없습니다"})
		return
	}

	account.Name = req.Name
	account.Type = models.AccountType(req.Type)
	account.SubType = req.SubType
	account.Icon = req.Icon
	account.Balance = req.Balance

	if err := h.accounts.Update(c.Request.Context(), account); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to update account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌를 저장하지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handlers) DeleteAccount(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	if err := h.accounts.Delete(c.Request.Context(), id, uid); err != nil {
		ctxLog := logger.FromContext(c.Request.Context())
		ctxLog.Error().Err(err).Msg("failed to delete account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌를 삭제하지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ApplyAccountDecisions commits user-confirmed reconciliation decisions:
// creates for "create", balance updates against the matched account for
// "update".
func (h *Handlers) ApplyAccountDecisions(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req applyDecisionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	created, updated := 0, 0

	for _, decision := range req.Decisions {
		switch decision.Action {
		case parser.ActionUpdate:
			if decision.Matched == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "update decision without matched account"})
				return
			}
			err := h.accounts.UpdateBalance(ctx, decision.Matched.AccountID, uid, decision.Parsed.Balance)
			if err != nil {
				ctxLog := logger.FromContext(ctx)
				ctxLog.Error().Err(err).Msg("failed to apply account update")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌를 저장하지 못했습니다"})
				return
			}
			updated++
		case parser.ActionCreate:
			account := &models.Account{
				UserID:  uid,
				Name:    decision.Parsed.Name,
				Type:    models.AccountType(decision.Parsed.Type),
				SubType: decision.Parsed.SubType,
				Icon:    decision.Parsed.Icon,
				Balance: decision.Parsed.Balance,
			}
			if err := h.accounts.Create(ctx, account); err != nil {
				ctxLog := logger.FromContext(ctx)
				ctxLog.Error().Err(err).Msg("failed to apply account create")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "계좌를 저장하지 못했습니다"})
				return
			}
			created++
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action: " + decision.Action})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"created": created, "updated": updated})
}
