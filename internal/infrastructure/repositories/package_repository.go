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

// PackageRepository implements the package repository interface
type PackageRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(database *db.Database, logger *logrus.Logger) ports.PackageRepository {
	return &PackageRepository{
		db:     database,
		logger: logger,
	}
}

const packageColumns = `id, country_code, status, data_amount, validity_days, price_cents, currency,
	sort_order, translations, features, networks, created_at, updated_at`

func (r *PackageRepository) scanPackage(row interface{ Scan(...any) error }) (*catalog.Package, error) {
	var p catalog.Package
	var translations, features, networks sql.NullString

	err := row.Scan(
		&p.ID, &p.CountryCode, &p.Status, &p.DataAmount, &p.ValidityDays, &p.PriceCents, &p.Currency,
		&p.SortOrder, &translations, &features, &networks, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(translations, &p.Translations); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(features, &p.Features); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(networks, &p.Networks); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns packages matching the filter, ordered by sort order.
func (r *PackageRepository) List(ctx context.Context, f catalog.PackageFilter) ([]catalog.Package, error) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CountryCode != "" {
		conds = append(conds, "country_code = "+arg(f.CountryCode))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}

	query := "SELECT " + packageColumns + " FROM packages"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sort_order ASC, price_cents ASC"

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var packages []catalog.Package
	for rows.Next() {
		p, err := r.scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate packages: %w", err)
	}
	return packages, nil
}

// GetByID retrieves a package by ID
func (r *PackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	query := "SELECT " + packageColumns + " FROM packages WHERE id = $1"
	p, err := r.scanPackage(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("package %s: %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return p, nil
}

// Create inserts a new package
func (r *PackageRepository) Create(ctx context.Context, p *catalog.Package) error {
	translations, err := marshalColumn(p.Translations)
	if err != nil {
		return err
	}
	features, err := marshalColumn(p.Features)
	if err != nil {
		return err
	}
	networks, err := marshalColumn(p.Networks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO packages (id, country_code, status, data_amount, validity_days, price_cents,
			currency, sort_order, translations, features, networks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.DB.ExecContext(ctx, query,
		p.ID, p.CountryCode, p.Status, p.DataAmount, p.ValidityDays, p.PriceCents,
		p.Currency, p.SortOrder, translations, features, networks)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// Update updates an existing package
func (r *PackageRepository) Update(ctx context.Context, p *catalog.Package) error {
	translations, err := marshalColumn(p.Translations)
	if err != nil {
		return err
	}
	features, err := marshalColumn(p.Features)
	if err != nil {
		return err
	}
	networks, err := marshalColumn(p.Networks)
	if err != nil {
		return err
	}

	query := `
		UPDATE packages
		SET status = $2, data_amount = $3, validity_days = $4, price_cents = $5, currency = $6,
			translations = $7, features = $8, networks = $9, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Status, p.DataAmount, p.ValidityDays, p.PriceCents, p.Currency,
		translations, features, networks)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("package %s: %w", p.ID, catalog.ErrNotFound)
	}
	return nil
}

// Delete removes a package
func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, "DELETE FROM packages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("package %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// Reorder rewrites sort_order to match the given id sequence.
func (r *PackageRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorderRows(ctx, r.db, "packages", ids)
}
