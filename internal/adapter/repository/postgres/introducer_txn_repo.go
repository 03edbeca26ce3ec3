package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// IntroducerTxnRepository implements usecase.IntroducerEntryRepository.
type IntroducerTxnRepository struct {
	pool *pgxpool.Pool
}

// NewIntroducerTxnRepository creates a new IntroducerTxnRepository.
func NewIntroducerTxnRepository(pool *pgxpool.Pool) *IntroducerTxnRepository {
	return &IntroducerTxnRepository{pool: pool}
}

const introducerTxnColumns = `
	id, intro_user_id, transaction_type, amount,
	remark, sub_admin_id, sub_admin_name, created_at
`

// Create inserts an introducer-side entry.
func (r *IntroducerTxnRepository) Create(ctx context.Context, entry *domain.IntroducerTransaction) error {
	query := `
		INSERT INTO introducer_transactions (` + introducerTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.IntroducerUserID,
		entry.Type,
		entry.Amount,
		entry.Remark,
		entry.SubAdminID,
		entry.SubAdminName,
		entry.CreatedAt,
	)

	return err
}

// GetByID retrieves an introducer-side entry by ID.
func (r *IntroducerTxnRepository) GetByID(ctx context.Context, id string) (*domain.IntroducerTransaction, error) {
	query := `SELECT ` + introducerTxnColumns + ` FROM introducer_transactions WHERE id = $1`

	entry, err := scanIntroducerTxn(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return entry, err
}

// ListByIntroducer retrieves all entries accrued by one introducer.
func (r *IntroducerTxnRepository) ListByIntroducer(ctx context.Context, introUserID string) ([]*domain.IntroducerTransaction, error) {
	query := `SELECT ` + introducerTxnColumns + ` FROM introducer_transactions WHERE intro_user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, introUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.IntroducerTransaction
	for rows.Next() {
		entry, err := scanIntroducerTxn(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update rewrites an introducer-side entry inside the given transaction.
func (r *IntroducerTxnRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.IntroducerTransaction) error {
	query := `
		UPDATE introducer_transactions
		SET intro_user_id = $2, transaction_type = $3, amount = $4,
		    remark = $5, sub_admin_id = $6, sub_admin_name = $7
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query,
		entry.ID,
		entry.IntroducerUserID,
		entry.Type,
		entry.Amount,
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

// Delete removes an introducer-side entry inside the given transaction.
func (r *IntroducerTxnRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM introducer_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanIntroducerTxn(row pgx.Row) (*domain.IntroducerTransaction, error) {
	var entry domain.IntroducerTransaction
	err := row.Scan(
		&entry.ID,
		&entry.IntroducerUserID,
		&entry.Type,
		&entry.Amount,
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
