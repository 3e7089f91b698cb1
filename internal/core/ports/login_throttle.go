package ports

import "context"

// LoginThrottle limits failed login attempts per username. Implementations
// count failures within a fixed window; Allow reports whether another attempt
// may proceed.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
