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

// BankRepository implements usecase.BankRepository.
type BankRepository struct {
	pool *pgxpool.Pool
}

// NewBankRepository creates a new BankRepository.
func NewBankRepository(pool *pgxpool.Pool) *BankRepository {
	return &BankRepository{pool: pool}
}

// Create inserts a new bank.
func (r *BankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	subAdmins, err := json.Marshal(bank.SubAdmins)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO banks (
			id, bank_name, account_holder_name, account_number, ifsc_code,
			upi_id, upi_app_name, upi_number, sub_admins, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.pool.Exec(ctx, query,
		bank.ID,
		bank.Name,
		bank.AccountHolderName,
		bank.AccountNumber,
		bank.IFSCCode,
		bank.UPIID,
		bank.UPIAppName,
		bank.UPINumber,
		subAdmins,
		bank.CreatedAt,
		bank.UpdatedAt,
	)

	return err
}

// GetByID retrieves a bank by ID.
func (r *BankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	query := `
		SELECT id, bank_name, account_holder_name, account_number, ifsc_code,
		       upi_id, upi_app_name, upi_number, sub_admins, created_at, updated_at
		FROM banks
		WHERE id = $1
	`

	bank, err := scanBank(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBankNotFound
	}

	return bank, err
}

// Update rewrites a bank inside the given transaction.
func (r *BankRepository) Update(ctx context.Context, tx usecase.Transaction, bank *domain.Bank) error {
	subAdmins, err := json.Marshal(bank.SubAdmins)
	if err != nil {
		return err
	}

	query := `
		UPDATE banks
		SET bank_name = $2, account_holder_name = $3, account_number = $4,
		    ifsc_code = $5, upi_id = $6, upi_app_name = $7, upi_number = $8,
		    sub_admins = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := inTx(r.pool, tx).Exec(ctx, query,
		bank.ID,
		bank.Name,
		bank.AccountHolderName,
		bank.AccountNumber,
		bank.IFSCCode,
		bank.UPIID,
		bank.UPIAppName,
		bank.UPINumber,
		subAdmins,
		bank.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBankNotFound
	}

	return nil
}

// Delete removes a bank inside the given transaction.
func (r *BankRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := inTx(r.pool, tx).Exec(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBankNotFound
	}

	return nil
}

// List retrieves banks with pagination.
func (r *BankRepository) List(ctx context.Context, limit, offset int) ([]*domain.Bank, error) {
	query := `
		SELECT id, bank_name, account_holder_name, account_number, ifsc_code,
		       upi_id, upi_app_name, upi_number, sub_admins, created_at, updated_at
		FROM banks
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banks []*domain.Bank
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, err
		}
		banks = append(banks, bank)
	}

	return banks, rows.Err()
}

// ExistsByName reports whether another bank already uses the given name.
func (r *BankRepository) ExistsByName(ctx context.Context, name, excludingID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM banks WHERE bank_name = $1 AND id <> $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, name, excludingID).Scan(&exists)
	return exists, err
}

func scanBank(row pgx.Row) (*domain.Bank, error) {
	var (
		bank      domain.Bank
		subAdmins []byte
	)
	err := row.Scan(
		&bank.ID,
		&bank.Name,
		&bank.AccountHolderName,
		&bank.AccountNumber,
		&bank.IFSCCode,
		&bank.UPIID,
		&bank.UPIAppName,
		&bank.UPINumber,
		&subAdmins,
		&bank.CreatedAt,
		&bank.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(subAdmins) > 0 {
		if err := json.Unmarshal(subAdmins, &bank.SubAdmins); err != nil {
			return nil, err
		}
	}

	return &bank, nil
}
