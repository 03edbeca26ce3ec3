package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// WebsiteTxnRepository implements usecase.WebsiteEntryRepository.
type WebsiteTxnRepository struct {
	pool *pgxpool.Pool
}

// NewWebsiteTxnRepository creates a new WebsiteTxnRepository.
func NewWebsiteTxnRepository(pool *pgxpool.Pool) *WebsiteTxnRepository {
	return &WebsiteTxnRepository{pool: pool}
}

const websiteTxnColumns = `
	id, website_id, transaction_type, deposit_amount, withdraw_amount,
	remark, sub_admin_id, sub_admin_name, created_at
`

// Create inserts a website-side entry.
func (r *WebsiteTxnRepository) Create(ctx context.Context, entry *domain.WebsiteTransaction) error {
	query := `
		INSERT INTO website_transactions (` + websiteTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.WebsiteID,
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

// GetByID retrieves a website-side entry by ID.
func (r *WebsiteTxnRepository) GetByID(ctx context.Context, id string) (*domain.WebsiteTransaction, error) {
	query := `SELECT ` + websiteTxnColumns + ` FROM website_transactions WHERE id = $1`

	entry, err := scanWebsiteTxn(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return entry, err
}

// ListByWebsite retrieves all website-side entries for one website.
func (r *WebsiteTxnRepository) ListByWebsite(ctx context.Context, websiteID string) ([]*domain.WebsiteTransaction, error) {
	query := `SELECT ` + websiteTxnColumns + ` FROM website_transactions WHERE website_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, websiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.WebsiteTransaction
	for rows.Next() {
		entry, err := scanWebsiteTxn(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update rewrites a website-side entry inside the given transaction.
func (r *WebsiteTxnRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.WebsiteTransaction) error {
	query := `
		UPDATE website_transactions
		SET website_id = $2, transaction_type = $3, deposit_amount = $4,
		    withdraw_amount = $5, remark = $6, sub_admin_id = $7, sub_admin_name = $8
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query,
		entry.ID,
		entry.WebsiteID,
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

// Delete removes a website-side entry inside the given transaction.
func (r *WebsiteTxnRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM website_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanWebsiteTxn(row pgx.Row) (*domain.WebsiteTransaction, error) {
	var entry domain.WebsiteTransaction
	err := row.Scan(
		&entry.ID,
		&entry.WebsiteID,
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
