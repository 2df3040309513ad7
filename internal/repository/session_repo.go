package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"family_shapes/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresSessionRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresSessionRepository(db *sql.DB, logger *logrus.Logger) domain.SessionRepository {
	return &postgresSessionRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresSessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (token, account_id, expires_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, session.Token, session.AccountID, session.ExpiresAt); err != nil {
		r.log.Errorf("Repository: Failed to create session for account %d: %v", session.AccountID, err)
		return fmt.Errorf("could not create session: %w", err)
	}
	r.log.Debugf("Repository: Session created for account %d", session.AccountID)
	return nil
}

func (r *postgresSessionRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT token, account_id, expires_at FROM sessions WHERE token = $1`
	session := &domain.Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&session.Token, &session.AccountID, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: session", domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get session: %v", err)
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	return session, nil
}

func (r *postgresSessionRepository) DeleteSessionsForAccount(ctx context.Context, accountID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE account_id = $1`, accountID)
	if err != nil {
		r.log.Errorf("Repository: Failed to delete sessions for account %d: %v", accountID, err)
		return fmt.Errorf("could not delete sessions: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil {
		r.log.Debugf("Repository: Deleted %d sessions for account %d", n, accountID)
	}
	return nil
}
