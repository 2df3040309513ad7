package delivery

import (
	"context"
	"io"

	"family_shapes/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockWaitlistUseCase struct {
	mock.Mock
}

func (m *mockWaitlistUseCase) Join(ctx context.Context, input domain.JoinWaitlistInput) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, input)
	e, _ := args.Get(0).(*domain.WaitlistEntry)
	return e, args.Error(1)
}

func (m *mockWaitlistUseCase) List(ctx context.Context, group string, limit, offset int) ([]domain.WaitlistEntry, error) {
	args := m.Called(ctx, group, limit, offset)
	entries, _ := args.Get(0).([]domain.WaitlistEntry)
	return entries, args.Error(1)
}

func (m *mockWaitlistUseCase) Summary(ctx context.Context) (*domain.WaitlistSummary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.WaitlistSummary)
	return s, args.Error(1)
}

type mockAccountUseCase struct {
	mock.Mock
}

func (m *mockAccountUseCase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AccountProfile, error) {
	args := m.Called(ctx, input)
	p, _ := args.Get(0).(*domain.AccountProfile)
	return p, args.Error(1)
}

func (m *mockAccountUseCase) Authenticate(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email, password)
	r, _ := args.Get(0).(*domain.AuthResult)
	return r, args.Error(1)
}

func (m *mockAccountUseCase) Profile(ctx context.Context, id int64) (*domain.AccountProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.AccountProfile)
	return p, args.Error(1)
}

func (m *mockAccountUseCase) ResolveSession(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccountUseCase) IsAdmin(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountUseCase) DeleteAccount(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
