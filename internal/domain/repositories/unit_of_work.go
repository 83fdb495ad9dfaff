package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations. Repositories
// called inside Do share one transaction; a withdrawal request and its
// ledger hold either both persist or neither does.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
