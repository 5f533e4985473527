package score

import (
	"regexp"
	"strconv"
	"strings"
)

// Heuristic awards one point for any non-blank answer. This is an explicit
// placeholder for a real answer-quality metric, not a judgment of content.
func Heuristic(answer string) int {
	if strings.TrimSpace(answer) == "" {
		return 0
	}
	return 1
}

// scorePattern matches the closing score statement the summary prompt asks
// the model to emit, e.g. "Score: 82/100", "score - 100 / 100".
var scorePattern = regexp.MustCompile(`(?i)score\s*[:\-]?\s*(\d{1,3})\s*/\s*100`)

// Result is the outcome of scanning a summary for the score statement. When
// Found is false the score is unknown; callers must surface that explicitly
// rather than substitute zero.
type Result struct {
	Found bool `json:"found"`
	Value int  `json:"value"`
}

// Extract scans the summary text for the first score statement. The captured
// number is taken verbatim, with no bounds check: a model writing "150/100"
// yields 150.
func Extract(summary string) Result {
	m := scorePattern.FindStringSubmatch(summary)
	if m == nil {
		return Result{}
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return Result{}
	}
	return Result{Found: true, Value: v}
}
