package parser

import (
	"fmt"
	"strconv"
	"time"
)

// defaultRetryAfter is used when a 429 carries no usable Retry-After header.
const defaultRetryAfter = 60 * time.Second

// RateLimitError reports that a model provider throttled the request
// (HTTP 429). The backoff is surfaced to API clients as a Retry-After
// header on the error response.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited, retry after %s: %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// RetryAfterSeconds returns the backoff as whole seconds, the form the
// Retry-After response header wants.
func (e *RateLimitError) RetryAfterSeconds() int {
	return int(e.RetryAfter / time.Second)
}

// NewRateLimitError builds a RateLimitError; retryAfterSecs <= 0 falls back
// to the default backoff.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	retryAfter := defaultRetryAfter
	if retryAfterSecs > 0 {
		retryAfter = time.Duration(retryAfterSecs) * time.Second
	}
	return &RateLimitError{
		Provider:   provider,
		RetryAfter: retryAfter,
		Err:        err,
	}
}

// ParseRetryAfterHeader reads a Retry-After header given in whole seconds.
// Empty, negative, or HTTP-date values yield 0.
func ParseRetryAfterHeader(val string) int {
	secs, err := strconv.Atoi(val)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}
