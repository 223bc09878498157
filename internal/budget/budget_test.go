package budget

import (
	"fmt"
	"strings"
	"testing"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
)

func historyOf(n int) []convo.Message {
	msgs := make([]convo.Message, n)
	for i := range msgs {
		msgs[i] = convo.Message{Role: convo.RoleUser, Content: fmt.Sprintf("message %d", i)}
	}
	return msgs
}

func TestTruncate_ShortHistoryUntouched(t *testing.T) {
	for _, n := range []int{0, 1, 10, 20} {
		h := historyOf(n)
		got := Truncate(h)
		if len(got) != n {
			t.Errorf("len %d: got %d messages back", n, len(got))
		}
	}
}

func TestTruncate_LongHistoryKeepsRecentSuffix(t *testing.T) {
	h := historyOf(25)
	got := Truncate(h)

	if len(got) != KeepRecentMessages {
		t.Fatalf("expected %d messages, got %d", KeepRecentMessages, len(got))
	}
	if got[0].Content != "message 15" {
		t.Errorf("expected suffix to start at message 15, got %q", got[0].Content)
	}
	if got[len(got)-1].Content != "message 24" {
		t.Errorf("expected suffix to end at message 24, got %q", got[len(got)-1].Content)
	}
}

func TestTruncate_NeverMutatesInput(t *testing.T) {
	h := historyOf(30)
	_ = Truncate(h)

	if len(h) != 30 {
		t.Fatalf("input length changed to %d", len(h))
	}
	for i, m := range h {
		if m.Content != fmt.Sprintf("message %d", i) {
			t.Fatalf("message %d content changed to %q", i, m.Content)
		}
	}
}

func TestEstimateTokens_RoundsUp(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"abcdefgh", 2},
		{strings.Repeat("x", 9), 3},
	}

	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestEstimateHistoryTokens(t *testing.T) {
	h := []convo.Message{
		{Content: "abcd"},     // 1
		{Content: "abcdefgh"}, // 2
	}
	if got := EstimateHistoryTokens(h); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestCapMessage(t *testing.T) {
	short := "hello"
	if CapMessage(short) != short {
		t.Error("short message should be unchanged")
	}

	long := strings.Repeat("a", MaxMessageChars+100)
	capped := CapMessage(long)
	if len([]rune(capped)) != MaxMessageChars {
		t.Fatalf("expected %d runes, got %d", MaxMessageChars, len([]rune(capped)))
	}
}

func TestCapSolution(t *testing.T) {
	long := strings.Repeat("b", MaxSolutionChars*2)
	capped := CapSolution(long)
	if len([]rune(capped)) != MaxSolutionChars {
		t.Fatalf("expected %d runes, got %d", MaxSolutionChars, len([]rune(capped)))
	}
}
