package domain

import (
	"context"
	"time"

	"family_shapes/internal/productgroup"
)

type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Group        productgroup.ProductGroup
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AccountProfile struct {
	ID        int64                     `json:"id"`
	Name      string                    `json:"name"`
	Email     string                    `json:"email"`
	Group     productgroup.ProductGroup `json:"group"`
	CreatedAt time.Time                 `json:"created_at"`
}

type Session struct {
	Token     string
	AccountID int64
	ExpiresAt time.Time
}

type AuthResult struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
	AccountID     int64  `json:"account_id,omitempty"`
	ErrorMessage  string `json:"error,omitempty"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Group    string `json:"group"`
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *Account) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id int64) (*Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSessionsForAccount(ctx context.Context, accountID int64) error
}

// AccountDeleter purges an account from the hosted backend (auth records,
// uploaded files) before the local row is removed.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, accountID int64) error
}

type AccountUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*AccountProfile, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, id int64) (*AccountProfile, error)
	ResolveSession(ctx context.Context, token string) (int64, error)
	DeleteAccount(ctx context.Context, id int64) error
	IsAdmin(ctx context.Context, id int64) (bool, error)
}
