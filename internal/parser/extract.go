package parser

import (
	"regexp"
	"strings"
)

var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)```")

// ExtractJSON pulls the JSON payload out of free-text model output. A fenced
// code block wins; otherwise the first top-level [...] span; otherwise the
// trimmed text as-is. Best effort; the subsequent json.Unmarshal decides
// whether the attempt actually produced JSON.
func ExtractJSON(raw string) string {
	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}

	if start := strings.Index(raw, "["); start != -1 {
		if end := strings.LastIndex(raw, "]"); end > start {
			return strings.TrimSpace(raw[start : end+1])
		}
	}

	return strings.TrimSpace(raw)
}
