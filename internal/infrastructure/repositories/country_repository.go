package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/core/ports"
	"github.com/roamstone/esim-portal/internal/infrastructure/db"
)

// CountryRepository implements the country repository interface
type CountryRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(database *db.Database, logger *logrus.Logger) ports.CountryRepository {
	return &CountryRepository{
		db:     database,
		logger: logger,
	}
}

const countryColumns = `id, code, region, status, top_destination, cover_image, sort_order,
	translations, features, networks, languages, created_at, updated_at`

func (r *CountryRepository) scanCountry(row interface{ Scan(...any) error }) (*catalog.Country, error) {
	var c catalog.Country
	var translations, features, networks, languages sql.NullString

	err := row.Scan(
		&c.ID, &c.Code, &c.Region, &c.Status, &c.TopDestination, &c.CoverImage, &c.SortOrder,
		&translations, &features, &networks, &languages, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(translations, &c.Translations); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(features, &c.Features); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(networks, &c.Networks); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(languages, &c.Languages); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns countries matching the filter, ordered by sort order.
func (r *CountryRepository) List(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}
	if f.Region != "" {
		conds = append(conds, "region = "+arg(f.Region))
	}
	if f.TopDestination != nil {
		conds = append(conds, "top_destination = "+arg(*f.TopDestination))
	}
	if len(f.Codes) > 0 {
		placeholders := make([]string, len(f.Codes))
		for i, code := range f.Codes {
			placeholders[i] = arg(code)
		}
		conds = append(conds, "code IN ("+strings.Join(placeholders, ", ")+")")
	}

	query := "SELECT " + countryColumns + " FROM countries"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sort_order ASC, code ASC"

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	var countries []catalog.Country
	for rows.Next() {
		c, err := r.scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate countries: %w", err)
	}
	return countries, nil
}

// GetByCode retrieves a country by its code
func (r *CountryRepository) GetByCode(ctx context.Context, code string) (*catalog.Country, error) {
	query := "SELECT " + countryColumns + " FROM countries WHERE code = $1"
	c, err := r.scanCountry(r.db.DB.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("country %q: %w", code, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return c, nil
}

// GetByID retrieves a country by ID
func (r *CountryRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Country, error) {
	query := "SELECT " + countryColumns + " FROM countries WHERE id = $1"
	c, err := r.scanCountry(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("country %s: %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return c, nil
}

// Create inserts a new country
func (r *CountryRepository) Create(ctx context.Context, c *catalog.Country) error {
	translations, err := marshalColumn(c.Translations)
	if err != nil {
		return err
	}
	features, err := marshalColumn(c.Features)
	if err != nil {
		return err
	}
	networks, err := marshalColumn(c.Networks)
	if err != nil {
		return err
	}
	languages, err := marshalColumn(c.Languages)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO countries (id, code, region, status, top_destination, cover_image, sort_order,
			translations, features, networks, languages)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.DB.ExecContext(ctx, query,
		c.ID, c.Code, c.Region, c.Status, c.TopDestination, c.CoverImage, c.SortOrder,
		translations, features, networks, languages)
	if err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}
	return nil
}

// Update updates an existing country
func (r *CountryRepository) Update(ctx context.Context, c *catalog.Country) error {
	translations, err := marshalColumn(c.Translations)
	if err != nil {
		return err
	}
	features, err := marshalColumn(c.Features)
	if err != nil {
		return err
	}
	networks, err := marshalColumn(c.Networks)
	if err != nil {
		return err
	}
	languages, err := marshalColumn(c.Languages)
	if err != nil {
		return err
	}

	query := `
		UPDATE countries
		SET region = $2, status = $3, top_destination = $4, cover_image = $5,
			translations = $6, features = $7, networks = $8, languages = $9,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		c.ID, c.Region, c.Status, c.TopDestination, c.CoverImage,
		translations, features, networks, languages)
	if err != nil {
		return fmt.Errorf("failed to update country: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("country %s: %w", c.ID, catalog.ErrNotFound)
	}
	return nil
}

// Delete removes a country
func (r *CountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, "DELETE FROM countries WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("country %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// Reorder rewrites sort_order to match the given id sequence.
func (r *CountryRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorderRows(ctx, r.db, "countries", ids)
}
