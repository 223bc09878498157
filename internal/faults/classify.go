package faults

// #region imports
import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// #endregion

// #region kind

// Kind categorizes a failed model invocation.
type Kind string

const (
	KindQuotaExceeded    Kind = "quota_exceeded"
	KindTransientNetwork Kind = "transient_network"
	KindUnknown          Kind = "unknown"
)

// #endregion

// #region classification

// Classification is the retry decision for a failed invocation. Produced per
// failure, returned to the caller, never stored.
type Classification struct {
	Kind            Kind
	Retryable       bool
	FallbackMessage string
}

// #endregion

// #region fallback-messages

const (
	quotaFallback = "The tutor is temporarily unavailable while we sort out service " +
		"capacity. Your progress is saved — please check back a little later."
	transientFallback = "That didn't go through — looks like a momentary connection " +
		"hiccup. Please send your message again."
	unknownFallback = "Something unexpected happened on our side. Please try sending " +
		"that again."
)

// #endregion

// #region keyword-lists

// Substring matching is the last resort when no structured error type is
// available; structured checks always run first.
var quotaKeywords = []string{
	"quota", "billing", "resource_exhausted", "resource exhausted",
	"rate limit", "insufficient credit",
}

var transientKeywords = []string{
	"timeout", "timed out", "deadline", "network", "connection refused",
	"connection reset", "unavailable", "temporarily", "eof", "broken pipe",
}

// #endregion

// #region classify

// Classify maps an invocation error to a retry decision. Quota exhaustion is
// final for the billing period; everything else defaults to retryable since
// most unclassified failures are transient network blips.
func Classify(err error) Classification {
	if err == nil {
		return Classification{Kind: KindUnknown, Retryable: true, FallbackMessage: unknownFallback}
	}

	// Structured checks first.
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests, http.StatusPaymentRequired:
			return quota()
		case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return transient()
		}
		if strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return quota()
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return transient()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return transient()
	}

	// Substring fallback on the message text.
	msg := strings.ToLower(err.Error())
	for _, kw := range quotaKeywords {
		if strings.Contains(msg, kw) {
			return quota()
		}
	}
	for _, kw := range transientKeywords {
		if strings.Contains(msg, kw) {
			return transient()
		}
	}

	return Classification{Kind: KindUnknown, Retryable: true, FallbackMessage: unknownFallback}
}

// #endregion

// #region constructors

func quota() Classification {
	return Classification{Kind: KindQuotaExceeded, Retryable: false, FallbackMessage: quotaFallback}
}

func transient() Classification {
	return Classification{Kind: KindTransientNetwork, Retryable: true, FallbackMessage: transientFallback}
}

// #endregion
