package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
)

// BankRepository defines data access for bank master records.
type BankRepository interface {
	Create(ctx context.Context, bank *domain.Bank) error
	GetByID(ctx context.Context, id string) (*domain.Bank, error)
	Update(ctx context.Context, tx Transaction, bank *domain.Bank) error
	Delete(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Bank, error)
	ExistsByName(ctx context.Context, name, excludingID string) (bool, error)
}

// WebsiteRepository defines data access for website master records.
type WebsiteRepository interface {
	Create(ctx context.Context, site *domain.Website) error
	GetByID(ctx context.Context, id string) (*domain.Website, error)
	Update(ctx context.Context, tx Transaction, site *domain.Website) error
	Delete(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Website, error)
	ExistsByName(ctx context.Context, name, excludingID string) (bool, error)
}

// UserRepository defines data access for user profiles.
type UserRepository interface {
	Create(ctx context.Context, user *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	Update(ctx context.Context, tx Transaction, user *domain.UserProfile) error
	Delete(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error)
}

// DirectEntryRepository defines data access for direct ledger entries.
type DirectEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	ListByBank(ctx context.Context, bankID string) ([]*domain.Transaction, error)
	ListByWebsite(ctx context.Context, websiteID string) ([]*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	SumAmountByType(ctx context.Context, entryType domain.EntryType) (decimal.Decimal, error)
	Update(ctx context.Context, tx Transaction, entry *domain.Transaction) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// BankEntryRepository defines data access for bank-side ledger entries.
type BankEntryRepository interface {
	Create(ctx context.Context, entry *domain.BankTransaction) error
	GetByID(ctx context.Context, id string) (*domain.BankTransaction, error)
	ListByBank(ctx context.Context, bankID string) ([]*domain.BankTransaction, error)
	Update(ctx context.Context, tx Transaction, entry *domain.BankTransaction) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// WebsiteEntryRepository defines data access for website-side ledger entries.
type WebsiteEntryRepository interface {
	Create(ctx context.Context, entry *domain.WebsiteTransaction) error
	GetByID(ctx context.Context, id string) (*domain.WebsiteTransaction, error)
	ListByWebsite(ctx context.Context, websiteID string) ([]*domain.WebsiteTransaction, error)
	Update(ctx context.Context, tx Transaction, entry *domain.WebsiteTransaction) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// IntroducerEntryRepository defines data access for introducer-side entries.
type IntroducerEntryRepository interface {
	Create(ctx context.Context, entry *domain.IntroducerTransaction) error
	GetByID(ctx context.Context, id string) (*domain.IntroducerTransaction, error)
	ListByIntroducer(ctx context.Context, introUserID string) ([]*domain.IntroducerTransaction, error)
	Update(ctx context.Context, tx Transaction, entry *domain.IntroducerTransaction) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// ChangeRequestRepository defines data access for pending change requests.
type ChangeRequestRepository interface {
	// Create persists a new request. The store enforces at most one open
	// request per (target id, operation) pair; a violation surfaces as
	// domain.ErrRequestAlreadyPending.
	Create(ctx context.Context, req *domain.PendingChangeRequest) error
	GetByID(ctx context.Context, id string) (*domain.PendingChangeRequest, error)
	Delete(ctx context.Context, tx Transaction, id string) error
	ListPending(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error)
	// ListApprovedBankAdjustments returns approved-but-not-yet-archived
	// manual bank adjustments for one bank, for balance folding.
	ListApprovedBankAdjustments(ctx context.Context, bankID string) ([]*domain.PendingChangeRequest, error)
}

// ArchiveRepository defines data access for archived (trashed) records.
type ArchiveRepository interface {
	// Create is idempotent per source id so an interrupted delete
	// resolution can be re-run safely.
	Create(ctx context.Context, tx Transaction, rec *domain.ArchiveRecord) error
	ListByType(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error)
}

// UserIndexRepository maintains the explicit user-to-transaction index that
// replaces the legacy embedded transaction list.
type UserIndexRepository interface {
	Add(ctx context.Context, tx Transaction, userID, entryID string) error
	// Remove reports whether a row was actually removed; a missing row during
	// delete resolution signals upstream corruption.
	Remove(ctx context.Context, tx Transaction, userID, entryID string) (bool, error)
	ListEntryIDs(ctx context.Context, userID string) ([]string, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on retryable storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
