package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/core/ports"
	"github.com/roamstone/esim-portal/internal/infrastructure/db"
)

// PageRepository implements the page repository interface
type PageRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewPageRepository creates a new page repository
func NewPageRepository(database *db.Database, logger *logrus.Logger) ports.PageRepository {
	return &PageRepository{
		db:     database,
		logger: logger,
	}
}

const pageColumns = `id, slug, status, translations, created_at, updated_at`

func (r *PageRepository) scanPage(row interface{ Scan(...any) error }) (*catalog.Page, error) {
	var p catalog.Page
	var translations sql.NullString

	err := row.Scan(&p.ID, &p.Slug, &p.Status, &translations, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(translations, &p.Translations); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBySlug retrieves a page by its slug
func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE slug = $1"
	p, err := r.scanPage(r.db.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("page %q: %w", slug, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return p, nil
}

// GetByID retrieves a page by ID
func (r *PageRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE id = $1"
	p, err := r.scanPage(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("page %s: %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return p, nil
}

// List returns all pages
func (r *PageRepository) List(ctx context.Context) ([]catalog.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages ORDER BY slug ASC"
	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []catalog.Page
	for rows.Next() {
		p, err := r.scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pages: %w", err)
	}
	return pages, nil
}

// Create inserts a new page
func (r *PageRepository) Create(ctx context.Context, p *catalog.Page) error {
	translations, err := marshalColumn(p.Translations)
	if err != nil {
		return err
	}

	query := `INSERT INTO pages (id, slug, status, translations) VALUES ($1, $2, $3, $4)`
	_, err = r.db.DB.ExecContext(ctx, query, p.ID, p.Slug, p.Status, translations)
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

// Update updates an existing page
func (r *PageRepository) Update(ctx context.Context, p *catalog.Page) error {
	translations, err := marshalColumn(p.Translations)
	if err != nil {
		return err
	}

	query := `UPDATE pages SET status = $2, translations = $3, updated_at = NOW() WHERE id = $1`
	result, err := r.db.DB.ExecContext(ctx, query, p.ID, p.Status, translations)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("page %s: %w", p.ID, catalog.ErrNotFound)
	}
	return nil
}

// Delete removes a page
func (r *PageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, "DELETE FROM pages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("page %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}
