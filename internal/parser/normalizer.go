package parser

import (
	"regexp"
	"strings"
)

// bankNoisePatterns strip balance, limit, cumulative-total and installment
// annotations out of bank notification text. Order is fixed; each match is
// replaced with the empty string.
var bankNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`잔액\s*[:：]?\s*[\d,]+\s*원?`),
	regexp.MustCompile(`잔여\s*한도\s*[:：]?\s*[\d,]+\s*원?`),
	regexp.MustCompile(`한도\s*[:：]?\s*[\d,]+\s*원?`),
	regexp.MustCompile(`누적\s*(?:사용)?\s*[:：]?\s*[\d,]+\s*원?`),
	regexp.MustCompile(`사용\s*가능\s*[:：]?\s*[\d,]+\s*원?`),
	regexp.MustCompile(`할부\s*\d+\s*개월`),
	regexp.MustCompile(`일시불`),
}

// NormalizeBankMessage collapses a bank notification to its transaction
// content. Noise phrases are removed, whitespace runs within each line are
// collapsed to a single space, lines are trimmed, empty lines dropped.
// Applying it twice yields the same result as applying it once.
func NormalizeBankMessage(input string) string {
	cleaned := input
	for _, pattern := range bankNoisePatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	lines := strings.Split(cleaned, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
