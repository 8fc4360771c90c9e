package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leofalp/reagent/providers/ai"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2.0,
		JitterFraction: 0.01,
	}
}

func TestRetryMiddleware_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	next := func(ctx context.Context, request ai.CompletionRequest) (string, error) {
		calls++
		return "ok", nil
	}

	chain := NewRetryMiddleware(fastRetryConfig(3))(next)

	got, err := chain(context.Background(), ai.CompletionRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || calls != 1 {
		t.Errorf("got %q after %d calls, want %q after 1", got, calls, "ok")
	}
}

func TestRetryMiddleware_RetriesTransientErrors(t *testing.T) {
	calls := 0
	next := func(ctx context.Context, request ai.CompletionRequest) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("unexpected status 503")
		}
		return "recovered", nil
	}

	chain := NewRetryMiddleware(fastRetryConfig(3))(next)

	got, err := chain(context.Background(), ai.CompletionRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "recovered" || calls != 3 {
		t.Errorf("got %q after %d calls, want %q after 3", got, calls, "recovered")
	}
}

func TestRetryMiddleware_NonRetryableFailsImmediately(t *testing.T) {
	calls := 0
	authErr := errors.New("unexpected status 401")
	next := func(ctx context.Context, request ai.CompletionRequest) (string, error) {
		calls++
		return "", authErr
	}

	chain := NewRetryMiddleware(fastRetryConfig(3))(next)

	_, err := chain(context.Background(), ai.CompletionRequest{})
	if !errors.Is(err, authErr) {
		t.Fatalf("expected the provider error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable error must not be retried, got %d calls", calls)
	}
}

func TestRetryMiddleware_ExhaustionWrapsBothErrors(t *testing.T) {
	calls := 0
	providerErr := errors.New("unexpected status 429")
	next := func(ctx context.Context, request ai.CompletionRequest) (string, error) {
		calls++
		return "", providerErr
	}

	chain := NewRetryMiddleware(fastRetryConfig(2))(next)

	_, err := chain(context.Background(), ai.CompletionRequest{})
	if !errors.Is(err, ErrRetryExhausted) {
		t.Errorf("expected ErrRetryExhausted, got %v", err)
	}
	if !errors.Is(err, providerErr) {
		t.Errorf("expected the last provider error to be wrapped, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 1 original + 2 retries, got %d calls", calls)
	}
}

func TestRetryMiddleware_ContextCancelledBetweenRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	next := func(ctx context.Context, request ai.CompletionRequest) (string, error) {
		cancel()
		return "", errors.New("unexpected status 500")
	}

	config := fastRetryConfig(3)
	config.InitialBackoff = time.Minute
	chain := NewRetryMiddleware(config)(next)

	_, err := chain(ctx, ai.CompletionRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRetryMiddleware_CustomRetryableFunc(t *testing.T) {
	calls := 0
	next := func(ctx context.Context, request ai.CompletionRequest) (string, error) {
		calls++
		return "", errors.New("flaky")
	}

	config := fastRetryConfig(2)
	config.RetryableFunc = func(err error) bool { return err.Error() == "flaky" }
	chain := NewRetryMiddleware(config)(next)

	if _, err := chain(context.Background(), ai.CompletionRequest{}); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls with a custom retryable func, got %d", calls)
	}
}
