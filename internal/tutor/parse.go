package tutor

// #region imports
import (
	"strconv"
	"strings"
)

// #endregion

// #region field-parsing

// parseField scans labeled lines ("LABEL: value") for the given label,
// case-insensitively. Returns "" when the label is absent — parsing is
// lenient because model output is untrusted.
func parseField(text, label string) string {
	prefix := strings.ToLower(label) + ":"
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return ""
}

// oneOf normalizes a parsed value against an allowed set, falling back to
// def for anything unrecognized.
func oneOf(v string, allowed []string, def string) string {
	lower := strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if lower == a {
			return a
		}
	}
	return def
}

// parseYes interprets yes/no-ish values.
func parseYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "y", "correct":
		return true
	}
	return false
}

// parseScore parses a bounded integer score, clamping into [min, max].
func parseScore(v string, def, min, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// #endregion

// #region type-line

// stripTypeLine extracts a leading "TYPE: x" line from chat/guidance output
// and returns the declared type plus the remaining content. When no type
// line is present the whole text is returned as content.
func stripTypeLine(text string) (string, string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "type:") {
			typ := strings.TrimSpace(trimmed[len("type:"):])
			rest := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return strings.ToLower(typ), rest
		}
		break
	}
	return "", strings.TrimSpace(text)
}

// #endregion

// #region suggestions

// splitSuggestions parses the semicolon-separated SUGGESTIONS field.
func splitSuggestions(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ";")
	var out []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// #endregion
