package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// WebsiteRepository implements usecase.WebsiteRepository.
type WebsiteRepository struct {
	pool *pgxpool.Pool
}

// NewWebsiteRepository creates a new WebsiteRepository.
func NewWebsiteRepository(pool *pgxpool.Pool) *WebsiteRepository {
	return &WebsiteRepository{pool: pool}
}

// Create inserts a new website.
func (r *WebsiteRepository) Create(ctx context.Context, site *domain.Website) error {
	subAdmins, err := json.Marshal(site.SubAdmins)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO websites (id, website_name, sub_admins, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.pool.Exec(ctx, query, site.ID, site.Name, subAdmins, site.CreatedAt, site.UpdatedAt)
	return err
}

// GetByID retrieves a website by ID.
func (r *WebsiteRepository) GetByID(ctx context.Context, id string) (*domain.Website, error) {
	query := `
		SELECT id, website_name, sub_admins, created_at, updated_at
		FROM websites
		WHERE id = $1
	`

	site, err := scanWebsite(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWebsiteNotFound
	}

	return site, err
}

// Update rewrites a website inside the given transaction.
func (r *WebsiteRepository) Update(ctx context.Context, tx usecase.Transaction, site *domain.Website) error {
	subAdmins, err := json.Marshal(site.SubAdmins)
	if err != nil {
		return err
	}

	query := `
		UPDATE websites
		SET website_name = $2, sub_admins = $3, updated_at = $4
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query, site.ID, site.Name, subAdmins, site.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWebsiteNotFound
	}

	return nil
}

// Delete removes a website inside the given transaction.
func (r *WebsiteRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM websites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWebsiteNotFound
	}

	return nil
}

// List retrieves websites with pagination.
func (r *WebsiteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Website, error) {
	query := `
		SELECT id, website_name, sub_admins, created_at, updated_at
		FROM websites
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*domain.Website
	for rows.Next() {
		site, err := scanWebsite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// ExistsByName reports whether another website already uses the given name.
func (r *WebsiteRepository) ExistsByName(ctx context.Context, name, excludingID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM websites WHERE website_name = $1 AND id <> $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, name, excludingID).Scan(&exists)
	return exists, err
}

func scanWebsite(row pgx.Row) (*domain.Website, error) {
	var (
		site      domain.Website
		subAdmins []byte
	)
	err := row.Scan(&site.ID, &site.Name, &subAdmins, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(subAdmins) > 0 {
		if err := json.Unmarshal(subAdmins, &site.SubAdmins); err != nil {
			return nil, err
		}
	}

	return &site, nil
}
