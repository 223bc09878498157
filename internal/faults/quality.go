package faults

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region generic-patterns

// genericResponses are non-answers that add nothing for the learner.
var genericResponses = []string{
	"i cannot help with that",
	"i can't help with that",
	"as an ai",
	"as a language model",
	"i don't understand",
	"please rephrase",
	"i'm not sure what you mean",
}

// #endregion

// #region quality-report

// QualityReport is the advisory output of a response quality check. It never
// blocks delivery: callers report the score but return the content as-is.
type QualityReport struct {
	IsValid bool
	Score   float32
	Issues  []string
}

// #endregion

// #region validate

// ValidateQuality scores model output against minimum-length and
// genericness heuristics.
func ValidateQuality(content string, minLength int) QualityReport {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(trimmed)

	var issues []string

	if trimmed == "" {
		issues = append(issues, "empty response")
	} else if len(trimmed) < minLength {
		issues = append(issues, fmt.Sprintf("response shorter than %d characters", minLength))
	}

	for _, g := range genericResponses {
		if strings.Contains(lower, g) {
			issues = append(issues, fmt.Sprintf("generic non-answer: %q", g))
			break
		}
	}

	score := float32(1.0)
	if len(issues) > 0 {
		// Each issue halves the score; an empty response scores zero.
		for range issues {
			score /= 2
		}
		if trimmed == "" {
			score = 0
		}
	}

	return QualityReport{
		IsValid: len(issues) == 0,
		Score:   score,
		Issues:  issues,
	}
}

// #endregion
