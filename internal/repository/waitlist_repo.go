package repository

import (
	"context"
	"database/sql"
	"fmt"

	"family_shapes/internal/domain"
	"family_shapes/internal/productgroup"

	"github.com/sirupsen/logrus"
)

type postgresWaitlistRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresWaitlistRepository(db *sql.DB, logger *logrus.Logger) domain.WaitlistRepository {
	return &postgresWaitlistRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresWaitlistRepository) CreateEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	query := `
        INSERT INTO waitlist_entries (id, name, email, product_group, organization, message, source_path)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	r.log.Debugf("Repository: Adding %s to the %s waitlist", entry.Email, entry.Group)

	err := r.db.QueryRowContext(ctx, query,
		entry.ID,
		entry.Name,
		entry.Email,
		entry.Group.String(),
		entry.Organization,
		entry.Message,
		entry.SourcePath,
	).Scan(&entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warnf("Repository: %s is already on the %s waitlist", entry.Email, entry.Group)
			return nil, fmt.Errorf("%w: %s is already on the %s waitlist", domain.ErrAlreadyExists, entry.Email, entry.Group)
		}
		r.log.Errorf("Repository: Failed to add waitlist entry for %s: %v", entry.Email, err)
		return nil, fmt.Errorf("could not create waitlist entry: %w", err)
	}

	r.log.Infof("Repository: Waitlist entry created. ID: %s, Group: %s", entry.ID, entry.Group)
	return entry, nil
}

func (r *postgresWaitlistRepository) ListByGroup(ctx context.Context, group productgroup.ProductGroup, limit, offset int) ([]domain.WaitlistEntry, error) {
	query := `
        SELECT id, name, email, product_group, organization, message, source_path, created_at
        FROM waitlist_entries
        WHERE product_group = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, group.String(), limit, offset)
	if err != nil {
		r.log.Errorf("Repository: Failed to list %s waitlist: %v", group, err)
		return nil, fmt.Errorf("could not list waitlist entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.WaitlistEntry{}
	for rows.Next() {
		var entry domain.WaitlistEntry
		var g string
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Email,
			&g,
			&entry.Organization,
			&entry.Message,
			&entry.SourcePath,
			&entry.CreatedAt,
		); err != nil {
			r.log.Errorf("Repository: Failed to scan waitlist row: %v", err)
			return nil, fmt.Errorf("could not scan waitlist entry: %w", err)
		}
		entry.Group = productgroup.ProductGroup(g)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during waitlist iteration: %v", err)
		return nil, fmt.Errorf("error iterating waitlist entries: %w", err)
	}

	r.log.Debugf("Repository: Retrieved %d %s waitlist entries", len(entries), group)
	return entries, nil
}

func (r *postgresWaitlistRepository) CountByGroup(ctx context.Context) (map[productgroup.ProductGroup]int, error) {
	query := `SELECT product_group, COUNT(*) FROM waitlist_entries GROUP BY product_group`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Repository: Failed to count waitlist entries: %v", err)
		return nil, fmt.Errorf("could not count waitlist entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[productgroup.ProductGroup]int, 3)
	for _, g := range productgroup.All() {
		counts[g] = 0
	}
	for rows.Next() {
		var g string
		var n int
		if err := rows.Scan(&g, &n); err != nil {
			return nil, fmt.Errorf("could not scan waitlist count: %w", err)
		}
		counts[productgroup.ProductGroup(g)] = n
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating waitlist counts: %w", err)
	}
	return counts, nil
}
