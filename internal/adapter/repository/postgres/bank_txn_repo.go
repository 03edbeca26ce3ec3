package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// BankTxnRepository implements usecase.BankEntryRepository.
type BankTxnRepository struct {
	pool *pgxpool.Pool
}

// NewBankTxnRepository creates a new BankTxnRepository.
func NewBankTxnRepository(pool *pgxpool.Pool) *BankTxnRepository {
	return &BankTxnRepository{pool: pool}
}

const bankTxnColumns = `
	id, bank_id, transaction_type, deposit_amount, withdraw_amount,
	remark, sub_admin_id, sub_admin_name, created_at
`

// Create inserts a bank-side entry.
func (r *BankTxnRepository) Create(ctx context.Context, entry *domain.BankTransaction) error {
	query := `
		INSERT INTO bank_transactions (` + bankTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.BankID,
		entry.Type,
		entry.DepositAmount,
		entry.WithdrawAmount,
		entry.Remark,
		entry.SubAdminID,
		entry.SubAdminName,
		entry.CreatedAt,
	)

	return err
}

// GetByID retrieves a bank-side entry by ID.
func (r *BankTxnRepository) GetByID(ctx context.Context, id string) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE id = $1`

	entry, err := scanBankTxn(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return entry, err
}

// ListByBank retrieves all bank-side entries for one bank.
func (r *BankTxnRepository) ListByBank(ctx context.Context, bankID string) ([]*domain.BankTransaction, error) {
	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE bank_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.BankTransaction
	for rows.Next() {
		entry, err := scanBankTxn(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update rewrites a bank-side entry inside the given transaction.
func (r *BankTxnRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.BankTransaction) error {
	query := `
		UPDATE bank_transactions
		SET bank_id = $2, transaction_type = $3, deposit_amount = $4,
		    withdraw_amount = $5, remark = $6, sub_admin_id = $7, sub_admin_name = $8
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query,
		entry.ID,
		entry.BankID,
		entry.Type,
		entry.DepositAmount,
		entry.WithdrawAmount,
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

// Delete removes a bank-side entry inside the given transaction.
func (r *BankTxnRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM bank_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanBankTxn(row pgx.Row) (*domain.BankTransaction, error) {
	var entry domain.BankTransaction
	err := row.Scan(
		&entry.ID,
		&entry.BankID,
		&entry.Type,
		&entry.DepositAmount,
		&entry.WithdrawAmount,
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
