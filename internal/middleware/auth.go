package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"family_shapes/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	AccountIDKey      = "accountID"
	SessionCookieName = "session"
)

type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (int64, error)
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, accountID int64) (bool, error)
}

// SessionAuth accepts "Authorization: Bearer <token>" or the session cookie
// and stores the account id under AccountIDKey.
func SessionAuth(resolver SessionResolver, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			log.Warnf("Middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Status": "Fail", "Message": err.Error()})
			return
		}

		accountID, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				log.Warnf("Middleware: Rejected session: %v", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Status": "Fail", "Message": "Invalid or expired session"})
				return
			}
			log.Errorf("Middleware: Failed to resolve session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"Status": "Fail", "Message": "Internal server error"})
			return
		}

		log.Debugf("Middleware: Authenticated account %d", accountID)
		c.Set(AccountIDKey, accountID)
		c.Next()
	}
}

// RequireAdmin must run after SessionAuth. Authenticated accounts that are
// not admins get 403.
func RequireAdmin(checker AdminChecker, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := AccountID(c)
		if !ok {
			log.Error("Middleware: RequireAdmin used without SessionAuth")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Status": "Fail", "Message": "Authentication required"})
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), accountID)
		if err != nil {
			log.Errorf("Middleware: Failed to check admin rights for account %d: %v", accountID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"Status": "Fail", "Message": "Internal server error"})
			return
		}
		if !isAdmin {
			log.Warnf("Middleware: Account %d denied admin access to %s", accountID, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"Status": "Fail", "Message": "Admin access required"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			return cookie, nil
		}
		return "", errors.New("Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("Invalid Authorization header format")
	}
	if parts[1] == "" {
		return "", errors.New("Invalid token")
	}
	return parts[1], nil
}

func AccountID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(AccountIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
