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

// RegionRepository implements the region repository interface
type RegionRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(database *db.Database, logger *logrus.Logger) ports.RegionRepository {
	return &RegionRepository{
		db:     database,
		logger: logger,
	}
}

const regionColumns = `id, code, status, cover_image, sort_order, translations, countries,
	created_at, updated_at`

func (r *RegionRepository) scanRegion(row interface{ Scan(...any) error }) (*catalog.Region, error) {
	var reg catalog.Region
	var translations, countries sql.NullString

	err := row.Scan(
		&reg.ID, &reg.Code, &reg.Status, &reg.CoverImage, &reg.SortOrder,
		&translations, &countries, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(translations, &reg.Translations); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(countries, &reg.Countries); err != nil {
		return nil, err
	}
	return &reg, nil
}

// List returns regions matching the filter, ordered by sort order.
func (r *RegionRepository) List(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error) {
	query := "SELECT " + regionColumns + " FROM regions"
	args := []any{}
	if f.Status != "" {
		query += " WHERE status = $1"
		args = append(args, f.Status)
	}
	query += " ORDER BY sort_order ASC, code ASC"

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	var regions []catalog.Region
	for rows.Next() {
		reg, err := r.scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate regions: %w", err)
	}
	return regions, nil
}

// GetByID retrieves a region by ID
func (r *RegionRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Region, error) {
	query := "SELECT " + regionColumns + " FROM regions WHERE id = $1"
	reg, err := r.scanRegion(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("region %s: %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return reg, nil
}

// Create inserts a new region
func (r *RegionRepository) Create(ctx context.Context, reg *catalog.Region) error {
	translations, err := marshalColumn(reg.Translations)
	if err != nil {
		return err
	}
	countries, err := marshalColumn(reg.Countries)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO regions (id, code, status, cover_image, sort_order, translations, countries)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.DB.ExecContext(ctx, query,
		reg.ID, reg.Code, reg.Status, reg.CoverImage, reg.SortOrder, translations, countries)
	if err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

// Update updates an existing region
func (r *RegionRepository) Update(ctx context.Context, reg *catalog.Region) error {
	translations, err := marshalColumn(reg.Translations)
	if err != nil {
		return err
	}
	countries, err := marshalColumn(reg.Countries)
	if err != nil {
		return err
	}

	query := `
		UPDATE regions
		SET status = $2, cover_image = $3, translations = $4, countries = $5, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		reg.ID, reg.Status, reg.CoverImage, translations, countries)
	if err != nil {
		return fmt.Errorf("failed to update region: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("region %s: %w", reg.ID, catalog.ErrNotFound)
	}
	return nil
}

// Delete removes a region
func (r *RegionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, "DELETE FROM regions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete region: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("region %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// Reorder rewrites sort_order to match the given id sequence.
func (r *RegionRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorderRows(ctx, r.db, "regions", ids)
}
