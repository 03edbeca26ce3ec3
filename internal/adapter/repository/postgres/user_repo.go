package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// UserRepository implements usecase.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a new user profile.
func (r *UserRepository) Create(ctx context.Context, user *domain.UserProfile) error {
	query := `
		INSERT INTO users (
			id, user_name, contact_number, introducer_user_id,
			introducer_percentage, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.ContactNumber,
		user.IntroducerUserID,
		user.IntroducerPercentage,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return err
}

// GetByID retrieves a user profile by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	query := `
		SELECT id, user_name, contact_number, introducer_user_id,
		       introducer_percentage, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.UserProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.ContactNumber,
		&user.IntroducerUserID,
		&user.IntroducerPercentage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}

	return &user, err
}

// Update rewrites a user profile inside the given transaction.
func (r *UserRepository) Update(ctx context.Context, tx usecase.Transaction, user *domain.UserProfile) error {
	query := `
		UPDATE users
		SET user_name = $2, contact_number = $3, introducer_user_id = $4,
		    introducer_percentage = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query,
		user.ID,
		user.Name,
		user.ContactNumber,
		user.IntroducerUserID,
		user.IntroducerPercentage,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Delete removes a user profile inside the given transaction.
func (r *UserRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// List retrieves user profiles with pagination.
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error) {
	query := `
		SELECT id, user_name, contact_number, introducer_user_id,
		       introducer_percentage, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.UserProfile
	for rows.Next() {
		var user domain.UserProfile
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.ContactNumber,
			&user.IntroducerUserID,
			&user.IntroducerPercentage,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}
