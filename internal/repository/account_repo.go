package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"family_shapes/internal/domain"
	"family_shapes/internal/productgroup"

	"github.com/sirupsen/logrus"
)

type postgresAccountRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresAccountRepository(db *sql.DB, logger *logrus.Logger) domain.AccountRepository {
	return &postgresAccountRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresAccountRepository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (name, email, password_hash, product_group)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	r.log.Debugf("Repository: Attempting to create account with email: %s", account.Email)

	err := r.db.QueryRowContext(ctx, query, account.Name, account.Email, account.PasswordHash, account.Group.String()).Scan(
		&account.ID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warnf("Repository: Attempted to create account with duplicate email: %s", account.Email)
			return nil, fmt.Errorf("%w: account with email '%s'", domain.ErrAlreadyExists, account.Email)
		}
		r.log.Errorf("Repository: Failed to create account '%s': %v", account.Email, err)
		return nil, fmt.Errorf("could not create account: %w", err)
	}

	r.log.Infof("Repository: Account created successfully with ID: %d, Email: %s", account.ID, account.Email)
	return account, nil
}

func (r *postgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
        SELECT id, name, email, password_hash, product_group, created_at, updated_at
        FROM accounts
        WHERE email = $1`

	r.log.Debugf("Repository: Attempting to find account by email: %s", email)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Account with email %s not found", email)
			return nil, fmt.Errorf("%w: account with email %s", domain.ErrNotFound, email)
		}
		r.log.Errorf("Repository: Failed to get account by email %s: %v", email, err)
		return nil, fmt.Errorf("could not get account by email: %w", err)
	}
	return account, nil
}

func (r *postgresAccountRepository) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
        SELECT id, name, email, password_hash, product_group, created_at, updated_at
        FROM accounts
        WHERE id = $1`

	r.log.Debugf("Repository: Attempting to find account by ID: %d", id)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Account with ID %d not found", id)
			return nil, fmt.Errorf("%w: account with id %d", domain.ErrNotFound, id)
		}
		r.log.Errorf("Repository: Failed to get account by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get account by id: %w", err)
	}
	return account, nil
}

func (r *postgresAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Repository: Failed to delete account ID %d: %v", id, err)
		return fmt.Errorf("could not delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after deleting account ID %d: %v", id, err)
		return fmt.Errorf("could not confirm account deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent account ID %d", id)
		return fmt.Errorf("%w: account with id %d", domain.ErrNotFound, id)
	}

	r.log.Infof("Repository: Account deleted successfully with ID: %d", id)
	return nil
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}
	var g string
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&g,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.Group = productgroup.ProductGroup(g)
	return account, nil
}
