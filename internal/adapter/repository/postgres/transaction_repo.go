package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// TransactionRepository implements usecase.DirectEntryRepository over the
// direct ledger table.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `
	id, transaction_id, transaction_type, amount, bonus, bank_charges,
	payment_method, user_id, bank_id, website_id, remark,
	sub_admin_id, sub_admin_name, created_at
`

// Create inserts a direct entry inside the given transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := inTx(r.pool, tx).Exec(ctx, query,
		entry.ID,
		entry.TransactionID,
		entry.Type,
		entry.Amount,
		entry.Bonus,
		entry.BankCharges,
		entry.PaymentMethod,
		entry.UserID,
		entry.BankID,
		entry.WebsiteID,
		entry.Remark,
		entry.SubAdminID,
		entry.SubAdminName,
		entry.CreatedAt,
	)

	return err
}

// GetByID retrieves a direct entry by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	entry, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return entry, err
}

// ExistsByTransactionID reports whether an external transaction ID was
// already recorded.
func (r *TransactionRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(&exists)
	return exists, err
}

// ListByBank retrieves all direct entries routed through a bank.
func (r *TransactionRepository) ListByBank(ctx context.Context, bankID string) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE bank_id = $1 ORDER BY created_at`
	return r.list(ctx, query, bankID)
}

// ListByWebsite retrieves all direct entries routed through a website.
func (r *TransactionRepository) ListByWebsite(ctx context.Context, websiteID string) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE website_id = $1 ORDER BY created_at`
	return r.list(ctx, query, websiteID)
}

// ListByUser retrieves a user's direct entries, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, userID, limit, offset)
}

// SumAmountByType sums entry amounts of one type across the direct ledger.
func (r *TransactionRepository) SumAmountByType(ctx context.Context, entryType domain.EntryType) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE transaction_type = $1`

	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, query, entryType).Scan(&sum)
	return sum, err
}

// Update rewrites a direct entry inside the given transaction.
func (r *TransactionRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET transaction_id = $2, transaction_type = $3, amount = $4, bonus = $5,
		    bank_charges = $6, payment_method = $7, user_id = $8, bank_id = $9,
		    website_id = $10, remark = $11, sub_admin_id = $12, sub_admin_name = $13
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query,
		entry.ID,
		entry.TransactionID,
		entry.Type,
		entry.Amount,
		entry.Bonus,
		entry.BankCharges,
		entry.PaymentMethod,
		entry.UserID,
		entry.BankID,
		entry.WebsiteID,
		entry.Remark,
		entry.SubAdminID,
		entry.SubAdminName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a direct entry inside the given transaction.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func (r *TransactionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Transaction
	for rows.Next() {
		entry, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var entry domain.Transaction
	err := row.Scan(
		&entry.ID,
		&entry.TransactionID,
		&entry.Type,
		&entry.Amount,
		&entry.Bonus,
		&entry.BankCharges,
		&entry.PaymentMethod,
		&entry.UserID,
		&entry.BankID,
		&entry.WebsiteID,
		&entry.Remark,
		&entry.SubAdminID,
		&entry.SubAdminName,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
