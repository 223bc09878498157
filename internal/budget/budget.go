package budget

// #region imports
import (
	"unicode/utf8"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
)

// #endregion

// #region limits

const (
	// MaxHistoryMessages is the inclusive bound above which truncation fires.
	MaxHistoryMessages = 20

	// KeepRecentMessages is how many trailing messages survive truncation.
	KeepRecentMessages = 10

	// MaxMessageChars caps a single user message before it reaches the model.
	MaxMessageChars = 1000

	// MaxSolutionChars caps a submitted solution.
	MaxSolutionChars = 5000

	// charsPerToken is the approximate characters-per-token ratio used for
	// estimation. Division rounds up so real usage never silently exceeds
	// the context window.
	charsPerToken = 4
)

// #endregion

// #region truncate

// Truncate returns the bounded suffix of history that may be sent to the
// model. The input slice is never modified: truncation excludes messages
// from the outbound request, it does not delete them.
func Truncate(history []convo.Message) []convo.Message {
	if len(history) <= MaxHistoryMessages {
		return history
	}
	return history[len(history)-KeepRecentMessages:]
}

// #endregion

// #region estimate-tokens

// EstimateTokens returns a conservative (rounded-up) token estimate for text.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	runes := utf8.RuneCountInString(text)
	return (runes + charsPerToken - 1) / charsPerToken
}

// EstimateHistoryTokens sums the estimate over a message slice.
func EstimateHistoryTokens(history []convo.Message) int {
	total := 0
	for _, m := range history {
		total += EstimateTokens(m.Content)
	}
	return total
}

// #endregion

// #region caps

// CapMessage trims a user message to MaxMessageChars runes.
func CapMessage(text string) string {
	return capRunes(text, MaxMessageChars)
}

// CapSolution trims a solution submission to MaxSolutionChars runes.
func CapSolution(text string) string {
	return capRunes(text, MaxSolutionChars)
}

func capRunes(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	r := []rune(text)
	return string(r[:limit])
}

// #endregion
