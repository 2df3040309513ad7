package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"family_shapes/internal/domain"
	"family_shapes/internal/productgroup"
	"family_shapes/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestProductContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    productgroup.ProductGroup
		primary string
	}{
		{path: "/organizations/123", want: productgroup.Organization, primary: "var(--navy)"},
		{path: "/for-donors", want: productgroup.Donor, primary: "var(--sage)"},
		{path: "/contact", want: productgroup.Family, primary: "var(--coral)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.Use(ProductContext(newTestLogger()))
			router.NoRoute(func(c *gin.Context) {
				p, ok := ProviderFrom(c)
				require.True(t, ok)
				root, ok := ThemeRootFrom(c)
				require.True(t, ok)

				fromCtx, err := productgroup.FromContext(c.Request.Context())
				require.NoError(t, err)
				assert.Same(t, p, fromCtx)

				assert.Equal(t, tt.want, p.Group())
				assert.Equal(t, 4, root.Len())
				v, _ := root.Property(theme.VarPrimary)
				assert.Equal(t, tt.primary, v)
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
}

func TestProviderFrom_Missing(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := ProviderFrom(c)
	assert.False(t, ok)
	_, ok = ThemeRootFrom(c)
	assert.False(t, ok)
}

type resolverFunc func(ctx context.Context, token string) (int64, error)

func (f resolverFunc) ResolveSession(ctx context.Context, token string) (int64, error) {
	return f(ctx, token)
}

func TestSessionAuth(t *testing.T) {
	t.Parallel()

	resolver := resolverFunc(func(_ context.Context, token string) (int64, error) {
		switch token {
		case "good":
			return 11, nil
		case "broken":
			return 0, errors.New("db down")
		default:
			return 0, fmt.Errorf("%w: unknown session", domain.ErrUnauthorized)
		}
	})

	router := gin.New()
	router.GET("/me", SessionAuth(resolver, newTestLogger()), func(c *gin.Context) {
		id, ok := AccountID(c)
		require.True(t, ok)
		c.String(http.StatusOK, "%d", id)
	})

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{name: "bearer", header: "Bearer good", status: http.StatusOK},
		{name: "cookie", cookie: "good", status: http.StatusOK},
		{name: "missing", status: http.StatusUnauthorized},
		{name: "malformed", header: "Token good", status: http.StatusUnauthorized},
		{name: "unknown", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "resolver failure", header: "Bearer broken", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "11", w.Body.String())
			}
		})
	}
}

type adminFunc func(ctx context.Context, accountID int64) (bool, error)

func (f adminFunc) IsAdmin(ctx context.Context, accountID int64) (bool, error) {
	return f(ctx, accountID)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	resolver := resolverFunc(func(_ context.Context, token string) (int64, error) {
		switch token {
		case "admin":
			return 1, nil
		case "member":
			return 2, nil
		case "flaky":
			return 3, nil
		default:
			return 0, domain.ErrUnauthorized
		}
	})
	checker := adminFunc(func(_ context.Context, id int64) (bool, error) {
		if id == 3 {
			return false, errors.New("db down")
		}
		return id == 1, nil
	})

	logger := newTestLogger()
	router := gin.New()
	router.GET("/admin-only", SessionAuth(resolver, logger), RequireAdmin(checker, logger), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/misconfigured", RequireAdmin(checker, logger), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "admin", path: "/admin-only", token: "admin", status: http.StatusOK},
		{name: "regular account", path: "/admin-only", token: "member", status: http.StatusForbidden},
		{name: "checker failure", path: "/admin-only", token: "flaky", status: http.StatusInternalServerError},
		{name: "anonymous", path: "/admin-only", status: http.StatusUnauthorized},
		{name: "without session auth", path: "/misconfigured", token: "admin", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
