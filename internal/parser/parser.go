package parser

import (
	"context"
	"strings"
	"time"

	"github.com/daehan-lim/moneychat/internal/ai"
	"github.com/daehan-lim/moneychat/internal/models"
)

// CompletionGateway is the single seam to the LLM provider. Implemented by
// ai.Client; tests substitute spies.
type CompletionGateway interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
	CompleteVision(ctx context.Context, systemPrompt, imageDataURL, userText string) (string, error)
}

// maxAttempts bounds the retry loop. Attempt 1 failing triggers exactly one
// identical retry, regardless of the failure cause.
const maxAttempts = 2

const emptyInputMessage = "입력 내용이 없습니다"

// Parser runs the full text/image parsing pipeline. All state is
// request-scoped; a single Parser serves concurrent requests.
type Parser struct {
	gateway CompletionGateway
	now     func() time.Time
}

func New(gateway CompletionGateway) *Parser {
	return &Parser{gateway: gateway, now: time.Now}
}

// NewWithClock pins "today" for deterministic date resolution in tests.
func NewWithClock(gateway CompletionGateway, now func() time.Time) *Parser {
	return &Parser{gateway: gateway, now: now}
}

// ParseText turns free text into validated transactions. Out-of-domain input
// is rejected before any LLM call; bank notification text is noise-stripped
// first.
func (p *Parser) ParseText(ctx context.Context, input string, categories []LLMCategory) ParseResponse {
	if strings.TrimSpace(input) == "" {
		return ParseResponse{Error: emptyInputMessage}
	}
	if !IsFinancialInput(input) {
		return ParseResponse{Error: OutOfDomainMessage}
	}
	if IsBankMessage(input) {
		input = NormalizeBankMessage(input)
	}

	prompt := BuildTransactionPrompt(p.now(), categories)

	transactions, err := withRetry(func() ([]ParsedTransaction, error) {
		raw, err := p.gateway.Complete(ctx, prompt, input)
		if err != nil {
			return nil, err
		}
		return ValidateTransactions(ExtractJSON(raw))
	})
	if err != nil {
		return ParseResponse{Error: "파싱 실패: " + err.Error()}
	}
	return ParseResponse{Success: true, Transactions: transactions}
}

// ParseImage turns a receipt or screenshot into validated transactions.
// Image content cannot be regex-scrubbed, so bank-message normalization does
// not run here; extraction, validation and retry work the same as the text path.
func (p *Parser) ParseImage(ctx context.Context, imageBase64, mimeType, textInput string, categories []LLMCategory) ParseResponse {
	if imageBase64 == "" {
		return ParseResponse{Error: emptyInputMessage}
	}

	prompt := BuildTransactionPrompt(p.now(), categories)
	dataURL := ai.ImageDataURL(mimeType, imageBase64)

	transactions, err := withRetry(func() ([]ParsedTransaction, error) {
		raw, err := p.gateway.CompleteVision(ctx, prompt, dataURL, textInput)
		if err != nil {
			return nil, err
		}
		return ValidateTransactions(ExtractJSON(raw))
	})
	if err != nil {
		return ParseResponse{Error: "이미지 파싱 실패: " + err.Error()}
	}
	return ParseResponse{Success: true, Transactions: transactions}
}

// ParseUnified handles input that may be a transaction, an account update, or
// both. Account results come back reconciled against the caller's existing
// accounts, as default create/update suggestions.
func (p *Parser) ParseUnified(ctx context.Context, input string, categories []LLMCategory, accounts []models.Account) UnifiedParseResponse {
	if strings.TrimSpace(input) == "" {
		return UnifiedParseResponse{Error: emptyInputMessage}
	}
	if !IsFinancialInput(input) {
		return UnifiedParseResponse{Error: OutOfDomainMessage}
	}
	if IsBankMessage(input) {
		input = NormalizeBankMessage(input)
	}

	prompt := BuildUnifiedPrompt(p.now(), categories)

	type unified struct {
		intent       string
		transactions []ParsedTransaction
		accounts     []ParsedAccount
	}
	result, err := withRetry(func() (unified, error) {
		raw, err := p.gateway.Complete(ctx, prompt, input)
		if err != nil {
			return unified{}, err
		}
		intent, txs, accs, err := ValidateUnified(ExtractJSON(raw))
		if err != nil {
			return unified{}, err
		}
		return unified{intent, txs, accs}, nil
	})
	if err != nil {
		return UnifiedParseResponse{Error: "파싱 실패: " + err.Error()}
	}

	resp := UnifiedParseResponse{
		Success:      true,
		Intent:       result.intent,
		Transactions: result.transactions,
		Accounts:     result.accounts,
	}
	if len(result.accounts) > 0 {
		resp.Decisions = Reconcile(result.accounts, accounts)
	}
	return resp
}

// ParseAccounts is the dedicated account-update path.
func (p *Parser) ParseAccounts(ctx context.Context, input string, accounts []models.Account) UnifiedParseResponse {
	if strings.TrimSpace(input) == "" {
		return UnifiedParseResponse{Error: emptyInputMessage}
	}
	if !IsFinancialInput(input) {
		return UnifiedParseResponse{Error: OutOfDomainMessage}
	}

	prompt := BuildAccountPrompt(p.now())

	parsed, err := withRetry(func() ([]ParsedAccount, error) {
		raw, err := p.gateway.Complete(ctx, prompt, input)
		if err != nil {
			return nil, err
		}
		return ValidateAccounts(ExtractJSON(raw))
	})
	if err != nil {
		return UnifiedParseResponse{Error: "파싱 실패: " + err.Error()}
	}

	return UnifiedParseResponse{
		Success:   true,
		Intent:    IntentAccount,
		Accounts:  parsed,
		Decisions: Reconcile(parsed, accounts),
	}
}

// withRetry runs fn up to maxAttempts times. Every failure is treated as
// retryable; the last error wins.
func withRetry[T any](fn func() (T, error)) (T, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	var zero T
	return zero, lastErr
}
