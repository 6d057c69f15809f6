package parser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-lim/moneychat/internal/models"
)

// spyGateway records every call and replays scripted responses.
type spyGateway struct {
	calls     int
	lastUser  string
	lastImage string
	responses []string
	errs      []error
}

func (s *spyGateway) next() (string, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var resp string
	if i < len(s.responses) {
		resp = s.responses[i]
	}
	return resp, err
}

func (s *spyGateway) Complete(_ context.Context, _, userText string) (string, error) {
	s.lastUser = userText
	return s.next()
}

func (s *spyGateway) CompleteVision(_ context.Context, _, imageDataURL, userText string) (string, error) {
	s.lastImage = imageDataURL
	s.lastUser = userText
	return s.next()
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

var testCategories = []LLMCategory{
	{Name: "식비", Type: "expense"},
	{Name: "카페/간식", Type: "expense"},
	{Name: "급여", Type: "income"},
}

func TestParseText_Success(t *testing.T) {
	gw := &spyGateway{responses: []string{
		"```json\n[" +
			`{"date":"2025-06-01","type":"expense","category":"식비","description":"김치찌개","amount":9000},` +
			`{"date":"2025-06-01","type":"expense","category":"카페/간식","description":"커피","amount":4500}` +
			"]\n```",
	}}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseText(context.Background(), "점심 김치찌개 9000, 커피 4500", testCategories)

	require.True(t, resp.Success, resp.Error)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, 1, gw.calls)

	assert.Equal(t, "2025-06-01", resp.Transactions[0].Date)
	assert.Equal(t, "expense", resp.Transactions[0].Type)
	assert.Equal(t, int64(9000), resp.Transactions[0].Amount)
	assert.Equal(t, int64(4500), resp.Transactions[1].Amount)
}

func TestParseText_RetriesOnceThenSucceeds(t *testing.T) {
	valid := `[{"date":"2025-06-01","type":"expense","category":"식비","description":"점심","amount":9000}]`
	gw := &spyGateway{
		responses: []string{"이건 JSON이 아닙니다", valid},
	}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseText(context.Background(), "점심 9000원", testCategories)

	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, 2, gw.calls, "malformed first attempt triggers exactly one retry")
}

func TestParseText_ExhaustedRetries(t *testing.T) {
	gw := &spyGateway{
		errs: []error{errors.New("network down"), errors.New("network down")},
	}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseText(context.Background(), "점심 9000원", testCategories)

	assert.False(t, resp.Success)
	assert.Equal(t, 2, gw.calls, "exactly 2 attempts, never more")
	assert.Contains(t, resp.Error, "파싱 실패")
	assert.Contains(t, resp.Error, "실패")
}

func TestParseText_OutOfDomainSkipsLLM(t *testing.T) {
	gw := &spyGateway{}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseText(context.Background(), "오늘 날씨 어때", testCategories)

	assert.False(t, resp.Success)
	assert.Equal(t, OutOfDomainMessage, resp.Error)
	assert.Equal(t, 0, gw.calls, "no LLM spend on off-topic input")
}

func TestParseText_EmptyInput(t *testing.T) {
	gw := &spyGateway{}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseText(context.Background(), "   ", testCategories)

	assert.False(t, resp.Success)
	assert.Equal(t, 0, gw.calls)
}

func TestParseText_BankMessageNormalizedBeforeLLM(t *testing.T) {
	valid := `[{"date":"2025-06-01","type":"expense","category":"카페/간식","description":"스타벅스","amount":12000}]`
	gw := &spyGateway{responses: []string{valid}}
	p := NewWithClock(gw, fixedClock)

	input := "신한카드 승인 12,000원 스타벅스\n잔액: 1,200,000원"
	resp := p.ParseText(context.Background(), input, testCategories)

	require.True(t, resp.Success, resp.Error)
	assert.NotContains(t, gw.lastUser, "잔액", "noise must be stripped before the prompt")
	assert.Contains(t, gw.lastUser, "승인 12,000원 스타벅스")
}

func TestParseImage(t *testing.T) {
	valid := `[{"date":"2025-06-01","type":"expense","category":"식비","description":"영수증","amount":25000}]`
	gw := &spyGateway{responses: []string{valid}}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseImage(context.Background(), "aGVsbG8=", "image/png", "영수증이에요", testCategories)

	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", gw.lastImage)
	assert.Equal(t, "영수증이에요", gw.lastUser)
}

func TestParseImage_FailurePrefix(t *testing.T) {
	gw := &spyGateway{
		errs: []error{errors.New("timeout"), errors.New("timeout")},
	}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseImage(context.Background(), "aGVsbG8=", "image/png", "", testCategories)

	assert.False(t, resp.Success)
	assert.Equal(t, 2, gw.calls)
	assert.Contains(t, resp.Error, "이미지 파싱 실패")
}

func TestParseUnified_MixedInput(t *testing.T) {
	raw := `[{
		"intent": "transaction",
		"transactions": [{"date":"2025-06-01","type":"expense","category":"식비","description":"점심","amount":9000}],
		"accounts": [{"name":"카카오뱅크","type":"asset","subType":"bank","icon":"🏦","balance":500000}]
	}]`
	gw := &spyGateway{responses: []string{raw}}
	p := NewWithClock(gw, fixedClock)

	existing := []models.Account{
		{AccountID: 7, Name: "카카오뱅크", Type: models.AccountTypeAsset},
	}
	resp := p.ParseUnified(context.Background(), "점심 9000원 먹었고 카카오뱅크 잔액 50만원", testCategories, existing)

	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, IntentTransaction, resp.Intent)
	require.Len(t, resp.Transactions, 1)
	require.Len(t, resp.Accounts, 1)
	require.Len(t, resp.Decisions, 1)
	assert.Equal(t, ActionUpdate, resp.Decisions[0].Action)
	require.NotNil(t, resp.Decisions[0].Matched)
	assert.Equal(t, 7, resp.Decisions[0].Matched.AccountID)
}

func TestParseAccounts(t *testing.T) {
	raw := `[{"name":"새통장","type":"asset","subType":"savings","icon":"💰","balance":1000000}]`
	gw := &spyGateway{responses: []string{raw}}
	p := NewWithClock(gw, fixedClock)

	resp := p.ParseAccounts(context.Background(), "새통장에 100만원 있어", nil)

	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, IntentAccount, resp.Intent)
	require.Len(t, resp.Decisions, 1)
	assert.Equal(t, ActionCreate, resp.Decisions[0].Action)
	assert.Nil(t, resp.Decisions[0].Matched)
}
