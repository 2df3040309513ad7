package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"family_shapes/internal/domain"
	"family_shapes/internal/productgroup"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

type accountUseCase struct {
	accounts   domain.AccountRepository
	sessions   domain.SessionRepository
	deleter    domain.AccountDeleter
	sessionTTL time.Duration
	admins     map[string]struct{}
	now        func() time.Time
	log        *logrus.Logger
}

// NewAccountUseCase builds the account service. deleter may be nil when no
// hosted deletion function is configured. adminEmails lists the accounts
// allowed to read the waitlist.
func NewAccountUseCase(
	accounts domain.AccountRepository,
	sessions domain.SessionRepository,
	deleter domain.AccountDeleter,
	sessionTTL time.Duration,
	adminEmails []string,
	logger *logrus.Logger,
) domain.AccountUseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}

	return &accountUseCase{
		accounts:   accounts,
		sessions:   sessions,
		deleter:    deleter,
		sessionTTL: sessionTTL,
		admins:     admins,
		now:        time.Now,
		log:        logger,
	}
}

func (uc *accountUseCase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AccountProfile, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	uc.log.Infof("Use Case: Attempting registration for email: %s", email)

	if name == "" {
		uc.log.Warn("Use Case: Registration failed - empty name")
		return nil, invalid("account name cannot be empty")
	}
	if !isValidEmail(email) {
		uc.log.Warnf("Use Case: Registration failed - invalid email format: %s", email)
		return nil, invalid("invalid email format")
	}
	if err := validatePassword(input.Password); err != nil {
		uc.log.Warnf("Use Case: Registration failed - password validation error: %v", err)
		return nil, err
	}

	group := productgroup.Family
	if input.Group != "" {
		g, err := productgroup.ParseProductGroup(input.Group)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		group = g
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	created, err := uc.accounts.CreateAccount(ctx, &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Group:        group,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create account %s: %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Account registered successfully. ID: %d, Group: %s", created.ID, created.Group)
	return toProfile(created), nil
}

// Authenticate never distinguishes an unknown email from a wrong password.
// Only infrastructure failures are returned as errors.
func (uc *accountUseCase) Authenticate(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)
	uc.log.Infof("Use Case: Attempting authentication for email: %s", email)

	if !isValidEmail(email) || password == "" {
		return &domain.AuthResult{ErrorMessage: invalidCredentials}, nil
	}

	account, err := uc.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - account not found: %s", email)
			return &domain.AuthResult{ErrorMessage: invalidCredentials}, nil
		}
		uc.log.Errorf("Use Case: Error retrieving account %s during auth: %v", email, err)
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for account %d", account.ID)
			return &domain.AuthResult{ErrorMessage: invalidCredentials}, nil
		}
		uc.log.Errorf("Use Case: Error comparing password hash for account %d: %v", account.ID, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		AccountID: account.ID,
		ExpiresAt: uc.now().Add(uc.sessionTTL),
	}
	if err := uc.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("could not start session: %w", err)
	}

	uc.log.Infof("Use Case: Authentication successful for account %d", account.ID)
	return &domain.AuthResult{
		Authenticated: true,
		Token:         session.Token,
		AccountID:     account.ID,
	}, nil
}

func (uc *accountUseCase) Profile(ctx context.Context, id int64) (*domain.AccountProfile, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Get profile failed - invalid account ID: %d", id)
		return nil, invalid("invalid account ID")
	}

	account, err := uc.accounts.GetAccountByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get profile for ID %d: %v", id, err)
		return nil, err
	}
	return toProfile(account), nil
}

func (uc *accountUseCase) ResolveSession(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: missing session token", domain.ErrUnauthorized)
	}

	session, err := uc.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("%w: unknown session", domain.ErrUnauthorized)
		}
		return 0, fmt.Errorf("could not resolve session: %w", err)
	}
	if !uc.now().Before(session.ExpiresAt) {
		uc.log.Infof("Use Case: Session for account %d expired at %s", session.AccountID, session.ExpiresAt.Format(time.RFC3339))
		return 0, fmt.Errorf("%w: session expired", domain.ErrUnauthorized)
	}
	return session.AccountID, nil
}

// IsAdmin reports whether the account's email is on the admin list. Unknown
// accounts are not admins.
func (uc *accountUseCase) IsAdmin(ctx context.Context, id int64) (bool, error) {
	if len(uc.admins) == 0 {
		return false, nil
	}

	account, err := uc.accounts.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("could not load account %d: %w", id, err)
	}

	_, ok := uc.admins[normalizeEmail(account.Email)]
	if !ok {
		uc.log.Warnf("Use Case: Account %d is not an admin", id)
	}
	return ok, nil
}

// DeleteAccount removes the account from the hosted backend first so a
// failed remote purge leaves the account usable and the request retryable.
func (uc *accountUseCase) DeleteAccount(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalid("invalid account ID for delete")
	}
	uc.log.Warnf("Use Case: Deleting account %d", id)

	if uc.deleter != nil {
		if err := uc.deleter.DeleteAccount(ctx, id); err != nil {
			uc.log.Errorf("Use Case: Hosted deletion failed for account %d: %v", id, err)
			return fmt.Errorf("could not delete account data: %w", err)
		}
	}

	if err := uc.sessions.DeleteSessionsForAccount(ctx, id); err != nil {
		return err
	}
	if err := uc.accounts.DeleteAccount(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete account %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Account %d deleted", id)
	return nil
}

func toProfile(a *domain.Account) *domain.AccountProfile {
	return &domain.AccountProfile{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Group:     a.Group,
		CreatedAt: a.CreatedAt,
	}
}
