package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/usecase"
)

// UserIndexRepository implements usecase.UserIndexRepository over an
// explicit join table. Rows are maintained in the same transaction as the
// direct entries they point at.
type UserIndexRepository struct {
	pool *pgxpool.Pool
}

// NewUserIndexRepository creates a new UserIndexRepository.
func NewUserIndexRepository(pool *pgxpool.Pool) *UserIndexRepository {
	return &UserIndexRepository{pool: pool}
}

// Add inserts an index row inside the given transaction.
func (r *UserIndexRepository) Add(ctx context.Context, tx usecase.Transaction, userID, entryID string) error {
	query := `
		INSERT INTO user_transaction_index (user_id, entry_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, entry_id) DO NOTHING
	`

	_, err := inTx(r.pool, tx).Exec(ctx, query, userID, entryID)
	return err
}

// Remove deletes an index row inside the given transaction and reports
// whether a row was actually removed.
func (r *UserIndexRepository) Remove(ctx context.Context, tx usecase.Transaction, userID, entryID string) (bool, error) {
	query := `DELETE FROM user_transaction_index WHERE user_id = $1 AND entry_id = $2`

	tag, err := inTx(r.pool, tx).Exec(ctx, query, userID, entryID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// ListEntryIDs retrieves the entry IDs indexed for one user.
func (r *UserIndexRepository) ListEntryIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT entry_id FROM user_transaction_index WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
