package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"family_shapes/internal/domain"

	"github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type deleteAccountRequest struct {
	AccountID int64 `json:"account_id"`
}

// AccountDeletionClient calls the hosted "delete-account" function, which
// removes the account's auth records and stored files on the backend. The
// call is repeatable (404 means already gone), so POSTs are retried.
type AccountDeletionClient struct {
	url    string
	client *resty.Client
	log    *logrus.Logger
}

var _ domain.AccountDeleter = (*AccountDeletionClient)(nil)

func NewAccountDeletionClient(url, token string, timeout time.Duration, logger *logrus.Logger) *AccountDeletionClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetAllowNonIdempotentRetry(true).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &AccountDeletionClient{
		url:    url,
		client: client,
		log:    logger,
	}
}

// DeleteAccount treats 404 as success: the account is already gone remotely.
func (c *AccountDeletionClient) DeleteAccount(ctx context.Context, accountID int64) error {
	c.log.Infof("DeletionClient: Requesting hosted deletion for account %d", accountID)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(deleteAccountRequest{AccountID: accountID}).
		Post(c.url)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("account deletion cancelled: %w", ctx.Err())
		}
		c.log.Errorf("DeletionClient: Failed to call deletion function for account %d: %v", accountID, err)
		return fmt.Errorf("failed to communicate with deletion function: %w", err)
	}

	switch {
	case resp.IsSuccess():
		c.log.Infof("DeletionClient: Account %d deleted remotely (status %d)", accountID, resp.StatusCode())
		return nil
	case resp.StatusCode() == http.StatusNotFound:
		c.log.Warnf("DeletionClient: Account %d not found remotely, treating as deleted", accountID)
		return nil
	default:
		c.log.Errorf("DeletionClient: Deletion for account %d failed with status %d. Response body: %s",
			accountID, resp.StatusCode(), resp.String())
		return fmt.Errorf("deletion function returned status %d for account %d", resp.StatusCode(), accountID)
	}
}

func (c *AccountDeletionClient) Close() error {
	return c.client.Close()
}
