package faults

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestClassify_QuotaKeywords(t *testing.T) {
	tests := []string{
		"quota exceeded for project",
		"billing account suspended",
		"RESOURCE_EXHAUSTED: try later",
		"rate limit reached",
	}
	for _, msg := range tests {
		got := Classify(errors.New(msg))
		if got.Kind != KindQuotaExceeded {
			t.Errorf("%q: got kind %q, want quota_exceeded", msg, got.Kind)
		}
		if got.Retryable {
			t.Errorf("%q: quota failures must not be retryable", msg)
		}
		if got.FallbackMessage == "" {
			t.Errorf("%q: missing fallback message", msg)
		}
	}
}

func TestClassify_TransientKeywords(t *testing.T) {
	tests := []string{
		"request timeout",
		"network unreachable",
		"connection refused",
		"service unavailable",
	}
	for _, msg := range tests {
		got := Classify(errors.New(msg))
		if got.Kind != KindTransientNetwork {
			t.Errorf("%q: got kind %q, want transient_network", msg, got.Kind)
		}
		if !got.Retryable {
			t.Errorf("%q: transient failures must be retryable", msg)
		}
	}
}

func TestClassify_UnknownDefaultsRetryable(t *testing.T) {
	got := Classify(errors.New("something completely different"))
	if got.Kind != KindUnknown {
		t.Fatalf("got kind %q, want unknown", got.Kind)
	}
	if !got.Retryable {
		t.Fatal("unknown failures default to retryable")
	}
	if got.FallbackMessage == "" {
		t.Fatal("missing fallback message")
	}
}

func TestClassify_StructuredAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"429", genai.APIError{Code: 429, Message: "too many requests"}, KindQuotaExceeded},
		{"402", genai.APIError{Code: 402, Message: "payment required"}, KindQuotaExceeded},
		{"503", genai.APIError{Code: 503, Message: "overloaded"}, KindTransientNetwork},
		{"resource-exhausted-status", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}, KindQuotaExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(fmt.Errorf("generate: %w", tt.err))
			if got.Kind != tt.want {
				t.Errorf("got kind %q, want %q", got.Kind, tt.want)
			}
		})
	}
}

func TestClassify_DeadlineExceeded(t *testing.T) {
	err := fmt.Errorf("generate: %w", context.DeadlineExceeded)
	got := Classify(err)
	if got.Kind != KindTransientNetwork {
		t.Fatalf("got kind %q, want transient_network", got.Kind)
	}
	if !got.Retryable {
		t.Fatal("timeouts must be retryable")
	}
}

func TestClassify_StructuredBeatsSubstring(t *testing.T) {
	// Message mentions "timeout" but the structured code says quota.
	err := genai.APIError{Code: 429, Message: "timeout while checking quota"}
	got := Classify(err)
	if got.Kind != KindQuotaExceeded {
		t.Fatalf("structured classification must win, got %q", got.Kind)
	}
}

func TestClassify_NilError(t *testing.T) {
	got := Classify(nil)
	if got.Kind != KindUnknown || !got.Retryable {
		t.Fatalf("nil error should classify unknown/retryable, got %+v", got)
	}
}
