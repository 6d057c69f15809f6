package parser

import (
	"strings"
	"testing"
)

func TestNormalizeBankMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "balance fragment dropped, approval kept",
			input: "승인 12,000원 스타벅스\n잔액: 1,200,000원",
			want:  "승인 12,000원 스타벅스",
		},
		{
			name:  "installment annotation dropped",
			input: "신한카드 승인 36,000원 할부 3개월 이마트",
			want:  "신한카드 승인 36,000원 이마트",
		},
		{
			name:  "일시불 dropped",
			input: "현대카드 승인 8,900원 일시불 버거킹",
			want:  "현대카드 승인 8,900원 버거킹",
		},
		{
			name:  "whitespace runs collapsed and lines trimmed",
			input: "  KB국민   출금   50,000원  \n\n  편의점  ",
			want:  "KB국민 출금 50,000원\n편의점",
		},
		{
			name:  "limit and cumulative fragments dropped",
			input: "롯데카드 결제 15,000원\n누적 450,000원\n잔여한도 1,550,000원",
			want:  "롯데카드 결제 15,000원",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBankMessage(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeBankMessage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeBankMessageIdempotent(t *testing.T) {
	inputs := []string{
		"승인 12,000원 스타벅스\n잔액: 1,200,000원",
		"신한카드 승인 36,000원 할부 3개월",
		"  공백   많은   문장  ",
		"",
		"잔액 3,000원",
	}

	for _, input := range inputs {
		once := NormalizeBankMessage(input)
		twice := NormalizeBankMessage(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeBankMessageKeepsTransactionLine(t *testing.T) {
	input := "[Web발신]\n신한카드 승인 12,000원 스타벅스\n잔액: 1,200,000원"
	got := NormalizeBankMessage(input)

	if !strings.Contains(got, "승인 12,000원 스타벅스") {
		t.Errorf("transaction line lost: %q", got)
	}
	if strings.Contains(got, "잔액") {
		t.Errorf("balance noise survived: %q", got)
	}
}
