package parser

import "testing"

func TestIsFinancialInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare 4-digit amount", "스타벅스 4500", true},
		{"amount with unit", "커피 5천원", true},
		{"amount with 만 shorthand", "월세 50만", true},
		{"bracketed bank notification", "[Web발신] 신한카드 승인", true},
		{"financial keyword only", "어제 점심 사먹음", true},
		{"account keyword", "카카오뱅크 통장 정리", true},
		{"recurring keyword", "매달 나가는 구독료", true},
		{"small talk", "오늘 날씨 어때", false},
		{"no finance content", "내일 회의 준비해야지", false},
		{"empty input passes", "", true},
		{"blank input passes", "   \n  ", true},
		{"case-insensitive keyword", "Netflix 구독", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinancialInput(tt.input); got != tt.want {
				t.Errorf("IsFinancialInput(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsBankMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"card approval line", "신한카드 승인 12,000원 스타벅스", true},
		{"withdrawal notice", "KB국민 12/01 출금 50,000원", true},
		{"multi-line with one bank line", "메모\n[Web발신]\n우리은행 입금", true},
		{"plain expense text", "점심 김치찌개 9000", false},
		{"empty", "", false},
		{"blank lines only", " \n \n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBankMessage(tt.input); got != tt.want {
				t.Errorf("IsBankMessage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
