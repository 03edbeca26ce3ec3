package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// RequestRepository implements usecase.ChangeRequestRepository. The
// one-open-request-per-(target, operation) rule lives in a partial unique
// index, so duplicate suppression is atomic with the insert.
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository creates a new RequestRepository.
func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

const requestColumns = `
	id, target_id, target_type, entry_kind, operation, snapshot, changes,
	message, requested_by, is_approved, created_at
`

// Create inserts a change request. A second open request for the same
// (target, operation) pair surfaces as domain.ErrRequestAlreadyPending.
func (r *RequestRepository) Create(ctx context.Context, req *domain.PendingChangeRequest) error {
	snapshot, err := json.Marshal(req.Snapshot)
	if err != nil {
		return err
	}
	changes, err := json.Marshal(req.Changes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO change_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.pool.Exec(ctx, query,
		req.ID,
		req.TargetID,
		req.TargetType,
		req.EntryKind,
		req.Operation,
		snapshot,
		changes,
		req.Message,
		req.RequestedBy,
		req.IsApproved,
		req.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrRequestAlreadyPending
	}

	return err
}

// GetByID retrieves a change request by ID.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.PendingChangeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM change_requests WHERE id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}

	return req, err
}

// Delete removes a change request inside the given transaction.
func (r *RequestRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM change_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

// ListPending retrieves open requests, optionally filtered by target type.
func (r *RequestRepository) ListPending(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM change_requests
		WHERE NOT is_approved
		  AND ($1 = '' OR target_type = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, string(targetType), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.PendingChangeRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListApprovedBankAdjustments retrieves approved manual bank adjustments
// still sitting in the request store, for balance folding.
func (r *RequestRepository) ListApprovedBankAdjustments(ctx context.Context, bankID string) ([]*domain.PendingChangeRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM change_requests
		WHERE is_approved
		  AND snapshot->>'bankId' = $1
		  AND snapshot->>'transactionType' IN ('Manual-Bank-Deposit', 'Manual-Bank-Withdraw')
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.PendingChangeRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func scanRequest(row pgx.Row) (*domain.PendingChangeRequest, error) {
	var (
		req      domain.PendingChangeRequest
		snapshot []byte
		changes  []byte
	)
	err := row.Scan(
		&req.ID,
		&req.TargetID,
		&req.TargetType,
		&req.EntryKind,
		&req.Operation,
		&snapshot,
		&changes,
		&req.Message,
		&req.RequestedBy,
		&req.IsApproved,
		&req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeSnapshot(snapshot, &req.Snapshot); err != nil {
		return nil, err
	}
	if err := decodeSnapshot(changes, &req.Changes); err != nil {
		return nil, err
	}

	return &req, nil
}

// decodeSnapshot keeps numeric amounts as json.Number so the balance engine
// folds manual adjustments without float64 truncation.
func decodeSnapshot(data []byte, dst *domain.JSON) error {
	if len(data) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}
