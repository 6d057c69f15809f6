package parser

import (
	"fmt"
	"strings"
	"time"
)

const transactionPromptTemplate = `너는 가계부 입력 문장을 구조화된 거래 내역으로 변환하는 파서야.

오늘 날짜: %s

사용자의 지출 카테고리: %s
사용자의 수입 카테고리: %s

규칙:
1. 날짜 처리
   - "오늘"은 오늘 날짜, "어제"는 하루 전, "그제"/"그저께"는 이틀 전이야.
   - "지난주 금요일" 같은 상대 요일 표현은 오늘 날짜 기준으로 계산해.
   - "1/15"처럼 연도가 없는 날짜는 올해로 해석해.
   - 날짜 표현이 없으면 오늘 날짜를 사용해.
2. 수입/지출 분류
   - 월급, 급여, 용돈, 수익, 이자, 배당, 환급, 환불 관련 문장은 income이야.
   - 그 외에는 모두 expense야.
3. 카테고리 매칭
   - category는 반드시 위 카테고리 목록 중 하나를 골라.
   - 어울리는 카테고리가 없으면 지출은 "기타 지출", 수입은 "기타 수입"을 쓰고,
     새로 만들면 좋을 카테고리 이름을 suggestedCategory에 넣어.
4. 금액 처리
   - "5000", "5,000원" 같은 숫자는 그대로 읽어.
   - "5천"=5000, "3만"=30000, "1만5천"=15000처럼 천/만 단위를 계산해.
   - 금액을 알 수 없는 항목은 결과에서 빼. 0이나 임의의 금액으로 만들지 마.
5. 여러 항목 분리
   - 쉼표, 줄바꿈, "그리고" 같은 연결어로 구분된 항목은 각각 별도 거래로 나눠.
6. 반복 거래
   - "매달", "매월" 등 반복 표현이 있으면 isRecurring을 true로 하고,
     날짜가 있으면 dayOfMonth(1~31)에 넣어.

출력은 아래 형식의 JSON 배열만 출력해. 다른 설명은 쓰지 마.
[
  {
    "date": "YYYY-MM-DD",
    "type": "expense" | "income",
    "category": "카테고리 이름",
    "description": "간단한 설명",
    "amount": 숫자(양의 정수),
    "isRecurring": true,          // 반복 거래일 때만
    "dayOfMonth": 숫자,           // isRecurring이 true이고 날짜가 있을 때만
    "suggestedCategory": "이름"   // 새 카테고리를 제안할 때만
  }
]`

const accountPromptTemplate = `너는 자산/부채 현황 문장을 구조화된 계좌 정보로 변환하는 파서야.

오늘 날짜: %s

규칙:
1. 은행 잔액, 현금, 적금, 투자 계좌는 type을 "asset"으로 해.
2. 카드값, 대출, 빚은 type을 "debt"으로 해.
3. subType은 bank, cash, savings, investment, credit_card, loan, other 중에서 골라.
4. icon은 항목을 나타내는 이모지 하나를 골라.
5. balance는 말한 금액의 절대값이야. 음수로 만들지 마.
6. 천/만 단위 금액 표현("50만원"=500000)을 계산해.

출력은 아래 형식의 JSON 배열만 출력해. 다른 설명은 쓰지 마.
[
  {
    "name": "계좌나 기관 이름",
    "type": "asset" | "debt",
    "subType": "bank",
    "icon": "🏦",
    "balance": 숫자(0 이상의 정수)
  }
]`

const unifiedPromptTemplate = `너는 가계부 입력 문장을 분석하는 파서야. 입력은 거래 내역(수입/지출)일 수도 있고,
자산/부채 현황 업데이트일 수도 있고, 둘이 섞여 있을 수도 있어.

오늘 날짜: %s

사용자의 지출 카테고리: %s
사용자의 수입 카테고리: %s

거래 내역 규칙:
1. "오늘"/"어제"/"그제"와 상대 요일 표현은 오늘 날짜 기준으로 계산하고, 연도가 없는 날짜는 올해로 해석해.
2. 월급, 급여, 용돈, 수익, 이자, 환급 관련 문장은 income, 그 외에는 expense야.
3. category는 위 목록 중 하나를 고르고, 없으면 "기타 지출"/"기타 수입"을 쓰면서 suggestedCategory를 제안해.
4. 천/만 단위 금액("1만5천"=15000)을 계산하고, 금액을 알 수 없는 항목은 빼.
5. 쉼표, 줄바꿈, "그리고"로 구분된 항목은 각각 나눠.

자산/부채 규칙:
1. 은행 잔액, 현금, 적금, 투자는 asset, 카드값, 대출, 빚은 debt야.
2. subType은 bank, cash, savings, investment, credit_card, loan, other 중 하나,
   icon은 이모지 하나, balance는 금액의 절대값이야.

출력은 아래 형식의 JSON 배열 하나만 출력해. 다른 설명은 쓰지 마.
[
  {
    "intent": "transaction" | "account",
    "transactions": [ { "date": "YYYY-MM-DD", "type": "expense" | "income", "category": "...", "description": "...", "amount": 숫자, "isRecurring": true, "dayOfMonth": 숫자, "suggestedCategory": "..." } ],
    "accounts": [ { "name": "...", "type": "asset" | "debt", "subType": "...", "icon": "...", "balance": 숫자 } ]
  }
]
intent는 거래만 있으면 "transaction", 자산/부채만 있으면 "account", 섞여 있으면 둘 다 채우고 "transaction"으로 해.`

// BuildTransactionPrompt builds the system prompt for the transaction parse
// path. Pure string construction; regenerated per call because the category
// lists and today's date vary.
func BuildTransactionPrompt(today time.Time, categories []LLMCategory) string {
	expense, income := splitCategoryNames(categories)
	return fmt.Sprintf(transactionPromptTemplate,
		today.Format("2006-01-02"),
		strings.Join(expense, ", "),
		strings.Join(income, ", "),
	)
}

// BuildAccountPrompt builds the system prompt for the account parse path.
func BuildAccountPrompt(today time.Time) string {
	return fmt.Sprintf(accountPromptTemplate, today.Format("2006-01-02"))
}

// BuildUnifiedPrompt builds the system prompt for the unified path that
// splits mixed input into transactions and account updates.
func BuildUnifiedPrompt(today time.Time, categories []LLMCategory) string {
	expense, income := splitCategoryNames(categories)
	return fmt.Sprintf(unifiedPromptTemplate,
		today.Format("2006-01-02"),
		strings.Join(expense, ", "),
		strings.Join(income, ", "),
	)
}

func splitCategoryNames(categories []LLMCategory) (expense, income []string) {
	for _, c := range categories {
		switch c.Type {
		case "income":
			income = append(income, c.Name)
		default:
			expense = append(expense, c.Name)
		}
	}
	return expense, income
}
