package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	errPermanent := errors.New("permanent")

	tests := []struct {
		name         string
		fn           func(calls *int) error
		nonRetryable []error
		wantCalls    int
		wantErr      error
	}{
		{
			name: "succeeds first try",
			fn: func(calls *int) error {
				return nil
			},
			wantCalls: 1,
		},
		{
			name: "succeeds after transient failures",
			fn: func(calls *int) error {
				if *calls < 3 {
					return errors.New("transient")
				}
				return nil
			},
			wantCalls: 3,
		},
		{
			name: "gives up after max attempts",
			fn: func(calls *int) error {
				return errPermanent
			},
			wantCalls: 3,
			wantErr:   errPermanent,
		},
		{
			name: "non-retryable stops immediately",
			fn: func(calls *int) error {
				return errPermanent
			},
			nonRetryable: []error{errPermanent},
			wantCalls:    1,
			wantErr:      errPermanent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

			calls := 0
			err := Retry(cfg, func() error {
				calls++
				return tt.fn(&calls)
			}, tt.nonRetryable...)

			if calls != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, calls)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
