package parser

import (
	"regexp"
	"strings"
)

// OutOfDomainMessage is the fixed guidance returned for non-financial input.
const OutOfDomainMessage = "가계부와 관련된 내용을 입력해 주세요. 예: 점심 김치찌개 9000원, 월급 300만원 입금"

// bankMessageKeywords is matched case-sensitively against each line of the
// raw input. Brand names plus transaction action words.
var bankMessageKeywords = []string{
	"승인", "출금", "입금", "결제", "이체",
	"Web발신", "체크카드", "신용카드",
	"KB국민", "국민카드", "신한카드", "신한은행", "우리카드", "우리은행",
	"하나카드", "하나은행", "농협", "NH", "IBK", "기업은행",
	"카카오뱅크", "카카오페이", "토스뱅크", "토스",
	"삼성카드", "현대카드", "롯데카드", "BC카드",
}

// IsBankMessage reports whether the input looks like a pasted bank or card
// notification. Any non-blank line containing a keyword is enough.
// Matching is case-sensitive on the original text.
func IsBankMessage(input string) bool {
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, kw := range bankMessageKeywords {
			if strings.Contains(line, kw) {
				return true
			}
		}
	}
	return false
}

var (
	// "[Web발신] ... 출금" style bracketed notification headers.
	bankNotificationPattern = regexp.MustCompile(`\[[^\]]*\].*(출금|입금|결제|승인|이체)`)

	// Digits followed by a Korean amount unit, optionally spaced.
	amountUnitPattern = regexp.MustCompile(`\d+\s*(만원|천원|백만|만|천|원)`)

	// A bare run of 4+ digits: amounts of 1000 KRW and up written without units.
	digitRunPattern = regexp.MustCompile(`\d{4,}`)
)

// financialKeywords is the curated in-domain vocabulary: payment verbs,
// income/expense nouns, common category names, bank/card brands, account and
// asset nouns, and recurring-schedule words. Compared against lower-cased input.
var financialKeywords = []string{
	// payment verbs
	"결제", "지출", "샀", "사먹", "구매", "구입", "계산", "냈", "썼", "지불", "쓴",
	// income/expense nouns
	"월급", "급여", "수입", "용돈", "입금", "출금", "환급", "환불", "이자", "배당", "보너스", "상여",
	// category names
	"식비", "커피", "카페", "점심", "저녁", "아침", "간식", "야식", "배달",
	"교통", "택시", "버스", "지하철", "주유",
	"쇼핑", "마트", "편의점", "장보기",
	"병원", "약국", "의료",
	"통신비", "월세", "관리비", "공과금", "전기세", "수도세",
	"구독", "넷플릭스", "유튜브",
	// bank/card brands and related nouns
	"은행", "카드", "뱅크", "토스", "카카오", "신한", "국민", "우리은행", "하나", "농협",
	// account/asset nouns
	"계좌", "통장", "잔액", "자산", "부채", "빚", "대출", "적금", "예금", "주식", "투자", "펀드",
	// recurring-schedule words
	"매달", "매월", "매주", "정기", "고정",
}

// IsFinancialInput reports whether free text plausibly concerns personal
// finance. Empty or blank input passes; downstream empty-input handling owns
// that case. Keyword comparison is case-insensitive.
func IsFinancialInput(input string) bool {
	if strings.TrimSpace(input) == "" {
		return true
	}

	if bankNotificationPattern.MatchString(input) {
		return true
	}
	if amountUnitPattern.MatchString(input) {
		return true
	}
	if digitRunPattern.MatchString(input) {
		return true
	}

	lower := strings.ToLower(input)
	for _, kw := range financialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
