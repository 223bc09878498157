package faults

import (
	"strings"
	"testing"
)

func TestValidateQuality_EmptyContent(t *testing.T) {
	got := ValidateQuality("", 40)
	if got.IsValid {
		t.Fatal("empty content must be invalid")
	}
	if len(got.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if got.Score != 0 {
		t.Errorf("empty content should score 0, got %v", got.Score)
	}
}

func TestValidateQuality_TooShort(t *testing.T) {
	got := ValidateQuality("use a map", 40)
	if got.IsValid {
		t.Fatal("short content must be flagged")
	}
	if got.Score >= 1.0 {
		t.Errorf("short content should be downgraded, got %v", got.Score)
	}
}

func TestValidateQuality_GenericNonAnswer(t *testing.T) {
	content := "As an AI, I cannot help with that particular topic right now, sorry about it."
	got := ValidateQuality(content, 40)
	if got.IsValid {
		t.Fatal("generic non-answer must be flagged")
	}
	found := false
	for _, issue := range got.Issues {
		if strings.Contains(issue, "generic") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a genericness issue, got %v", got.Issues)
	}
}

func TestValidateQuality_GoodContent(t *testing.T) {
	content := "Two pointers works here because the array is sorted: advance the left " +
		"pointer when the sum is too small and retreat the right pointer when it's too large."
	got := ValidateQuality(content, 40)
	if !got.IsValid {
		t.Fatalf("expected valid, got issues %v", got.Issues)
	}
	if got.Score != 1.0 {
		t.Errorf("expected full score, got %v", got.Score)
	}
}
