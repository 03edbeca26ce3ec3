package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database
	// transaction. This prevents long-running transactions from blocking tables.
	DefaultTransactionTimeout = 10 * time.Second

	// BalanceCacheTTL bounds staleness of cached balances. Balances are
	// eventually consistent by contract; resolution invalidates eagerly.
	BalanceCacheTTL = 30 * time.Second

	// DefaultPageSize and MaxPageSize bound list operations.
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
