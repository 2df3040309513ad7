package usecase

import (
	"context"
	"io"

	"family_shapes/internal/domain"
	"family_shapes/internal/productgroup"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockWaitlistRepo struct {
	mock.Mock
}

func (m *mockWaitlistRepo) CreateEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, entry)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if e, _ := args.Get(0).(*domain.WaitlistEntry); e != nil {
		return e, nil
	}
	return entry, nil
}

func (m *mockWaitlistRepo) ListByGroup(ctx context.Context, group productgroup.ProductGroup, limit, offset int) ([]domain.WaitlistEntry, error) {
	args := m.Called(ctx, group, limit, offset)
	entries, _ := args.Get(0).([]domain.WaitlistEntry)
	return entries, args.Error(1)
}

func (m *mockWaitlistRepo) CountByGroup(ctx context.Context) (map[productgroup.ProductGroup]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[productgroup.ProductGroup]int)
	return counts, args.Error(1)
}

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	a, _ := args.Get(0).(*domain.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*domain.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) DeleteAccount(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *mockSessionRepo) DeleteSessionsForAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockDeleter struct {
	mock.Mock
}

func (m *mockDeleter) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}
