package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAcquireFailureDistinguishesBusyFromError(t *testing.T) {
	if got := acquireFailure(nil); !errors.Is(got, ErrWriteLockBusy) {
		t.Fatalf("acquireFailure(nil) = %v, want ErrWriteLockBusy", got)
	}

	cause := errors.New("connection refused")
	if got := acquireFailure(cause); got != cause {
		t.Fatalf("acquireFailure(err) = %v, want the cause unchanged", got)
	}

	// The wrapped message must never render a nil error.
	wrapped := fmt.Errorf("failed to acquire write lock after retries: %w", acquireFailure(nil))
	if strings.Contains(wrapped.Error(), "%!w") {
		t.Fatalf("wrapped message renders a nil error: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, ErrWriteLockBusy) {
		t.Fatalf("wrapped error does not match ErrWriteLockBusy: %v", wrapped)
	}
}
