package domain

import (
	"context"
	"time"

	"family_shapes/internal/productgroup"

	"github.com/google/uuid"
)

type WaitlistEntry struct {
	ID           uuid.UUID                 `json:"id"`
	Name         string                    `json:"name"`
	Email        string                    `json:"email"`
	Group        productgroup.ProductGroup `json:"group"`
	Organization string                    `json:"organization,omitempty"`
	Message      string                    `json:"message,omitempty"`
	SourcePath   string                    `json:"source_path,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
}

// JoinWaitlistInput is what the landing-page forms submit. Group is optional;
// when empty the entry is classified from SourcePath.
type JoinWaitlistInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Group        string `json:"group"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
	SourcePath   string `json:"source_path"`
}

type WaitlistSummary struct {
	Total   int                               `json:"total"`
	ByGroup map[productgroup.ProductGroup]int `json:"by_group"`
}

type WaitlistRepository interface {
	CreateEntry(ctx context.Context, entry *WaitlistEntry) (*WaitlistEntry, error)
	ListByGroup(ctx context.Context, group productgroup.ProductGroup, limit, offset int) ([]WaitlistEntry, error)
	CountByGroup(ctx context.Context) (map[productgroup.ProductGroup]int, error)
}

type WaitlistUseCase interface {
	Join(ctx context.Context, input JoinWaitlistInput) (*WaitlistEntry, error)
	List(ctx context.Context, group string, limit, offset int) ([]WaitlistEntry, error)
	Summary(ctx context.Context) (*WaitlistSummary, error)
}
