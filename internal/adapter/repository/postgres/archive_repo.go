package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// ArchiveRepository implements usecase.ArchiveRepository.
type ArchiveRepository struct {
	pool *pgxpool.Pool
}

// NewArchiveRepository creates a new ArchiveRepository.
func NewArchiveRepository(pool *pgxpool.Pool) *ArchiveRepository {
	return &ArchiveRepository{pool: pool}
}

// Create inserts an archive record inside the given transaction. The table
// carries a unique index on source_id and the insert skips conflicts, so a
// re-run after an interrupted delete resolution is a no-op.
func (r *ArchiveRepository) Create(ctx context.Context, tx usecase.Transaction, rec *domain.ArchiveRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO archive_records (
			id, source_id, target_type, entry_kind, snapshot, archived_by, archived_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source_id) DO NOTHING
	`

	_, err = inTx(r.pool, tx).Exec(ctx, query,
		rec.ID,
		rec.SourceID,
		rec.TargetType,
		rec.EntryKind,
		snapshot,
		rec.ArchivedBy,
		rec.ArchivedAt,
	)

	return err
}

// ListByType retrieves archive records of one target type, newest first.
func (r *ArchiveRepository) ListByType(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error) {
	query := `
		SELECT id, source_id, target_type, entry_kind, snapshot, archived_by, archived_at
		FROM archive_records
		WHERE target_type = $1
		ORDER BY archived_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, targetType, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ArchiveRecord
	for rows.Next() {
		rec, err := scanArchiveRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func scanArchiveRecord(row pgx.Row) (*domain.ArchiveRecord, error) {
	var (
		rec      domain.ArchiveRecord
		snapshot []byte
	)
	err := row.Scan(
		&rec.ID,
		&rec.SourceID,
		&rec.TargetType,
		&rec.EntryKind,
		&snapshot,
		&rec.ArchivedBy,
		&rec.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &rec.Snapshot); err != nil {
			return nil, err
		}
	}

	return &rec, nil
}
