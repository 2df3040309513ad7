package usecase

import (
	"context"
	"fmt"
	"strings"

	"family_shapes/internal/domain"
	"family_shapes/internal/productgroup"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxMessageLength = 2000
)

type waitlistUseCase struct {
	repo domain.WaitlistRepository
	log  *logrus.Logger
}

func NewWaitlistUseCase(repo domain.WaitlistRepository, logger *logrus.Logger) domain.WaitlistUseCase {
	return &waitlistUseCase{
		repo: repo,
		log:  logger,
	}
}

// Join adds a sign-up from one of the landing-page forms. An explicit group
// wins; otherwise the entry belongs to the group of the page it came from.
func (uc *waitlistUseCase) Join(ctx context.Context, input domain.JoinWaitlistInput) (*domain.WaitlistEntry, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	organization := strings.TrimSpace(input.Organization)
	message := strings.TrimSpace(input.Message)

	if name == "" {
		uc.log.Warn("Use Case: Waitlist join failed - empty name")
		return nil, invalid("name cannot be empty")
	}
	if !isValidEmail(email) {
		uc.log.Warnf("Use Case: Waitlist join failed - invalid email format: %s", email)
		return nil, invalid("invalid email format")
	}
	if len(message) > maxMessageLength {
		return nil, invalid(fmt.Sprintf("message cannot be longer than %d characters", maxMessageLength))
	}

	group := productgroup.Detect(input.SourcePath)
	if input.Group != "" {
		g, err := productgroup.ParseProductGroup(input.Group)
		if err != nil {
			uc.log.Warnf("Use Case: Waitlist join failed - %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		group = g
	}
	if group == productgroup.Organization && organization == "" {
		uc.log.Warnf("Use Case: Organization waitlist join for %s without organization name", email)
		return nil, invalid("organization name cannot be empty")
	}

	uc.log.Infof("Use Case: Adding %s to the %s waitlist (source: %q)", email, group, input.SourcePath)
	entry, err := uc.repo.CreateEntry(ctx, &domain.WaitlistEntry{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Group:        group,
		Organization: organization,
		Message:      message,
		SourcePath:   input.SourcePath,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to add %s to the %s waitlist: %v", email, group, err)
		return nil, err
	}
	return entry, nil
}

func (uc *waitlistUseCase) List(ctx context.Context, group string, limit, offset int) ([]domain.WaitlistEntry, error) {
	g, err := productgroup.ParseProductGroup(group)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if offset < 0 {
		return nil, invalid("offset cannot be negative")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, err := uc.repo.ListByGroup(ctx, g, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list the %s waitlist: %v", g, err)
		return nil, fmt.Errorf("could not retrieve waitlist: %w", err)
	}
	return entries, nil
}

func (uc *waitlistUseCase) Summary(ctx context.Context) (*domain.WaitlistSummary, error) {
	counts, err := uc.repo.CountByGroup(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to count waitlist entries: %v", err)
		return nil, fmt.Errorf("could not summarize waitlist: %w", err)
	}

	summary := &domain.WaitlistSummary{ByGroup: make(map[productgroup.ProductGroup]int, 3)}
	for _, g := range productgroup.All() {
		summary.ByGroup[g] = counts[g]
		summary.Total += counts[g]
	}
	return summary, nil
}
