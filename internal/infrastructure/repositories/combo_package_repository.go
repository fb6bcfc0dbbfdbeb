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

// ComboPackageRepository implements the combo package repository interface
type ComboPackageRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewComboPackageRepository creates a new combo package repository
func NewComboPackageRepository(database *db.Database, logger *logrus.Logger) ports.ComboPackageRepository {
	return &ComboPackageRepository{
		db:     database,
		logger: logger,
	}
}

const comboColumns = `id, status, data_amount, validity_days, price_cents, currency, sort_order,
	countries, translations, features, created_at, updated_at`

func (r *ComboPackageRepository) scanCombo(row interface{ Scan(...any) error }) (*catalog.ComboPackage, error) {
	var p catalog.ComboPackage
	var countries, translations, features sql.NullString

	err := row.Scan(
		&p.ID, &p.Status, &p.DataAmount, &p.ValidityDays, &p.PriceCents, &p.Currency, &p.SortOrder,
		&countries, &translations, &features, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(countries, &p.Countries); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(translations, &p.Translations); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(features, &p.Features); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns combo packages matching the filter, ordered by sort order.
func (r *ComboPackageRepository) List(ctx context.Context, f catalog.ComboPackageFilter) ([]catalog.ComboPackage, error) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}
	if f.Country != "" {
		conds = append(conds, "countries @> "+arg(fmt.Sprintf("[%q]", f.Country)))
	}

	query := "SELECT " + comboColumns + " FROM combo_packages"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sort_order ASC, price_cents ASC"

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list combo packages: %w", err)
	}
	defer rows.Close()

	var packages []catalog.ComboPackage
	for rows.Next() {
		p, err := r.scanCombo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan combo package: %w", err)
		}
		packages = append(packages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate combo packages: %w", err)
	}
	return packages, nil
}

// GetByID retrieves a combo package by ID
func (r *ComboPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.ComboPackage, error) {
	query := "SELECT " + comboColumns + " FROM combo_packages WHERE id = $1"
	p, err := r.scanCombo(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("combo package %s: %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get combo package: %w", err)
	}
	return p, nil
}

// Create inserts a new combo package
func (r *ComboPackageRepository) Create(ctx context.Context, p *catalog.ComboPackage) error {
	countries, err := marshalColumn(p.Countries)
	if err != nil {
		return err
	}
	translations, err := marshalColumn(p.Translations)
	if err != nil {
		return err
	}
	features, err := marshalColumn(p.Features)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO combo_packages (id, status, data_amount, validity_days, price_cents, currency,
			sort_order, countries, translations, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.DB.ExecContext(ctx, query,
		p.ID, p.Status, p.DataAmount, p.ValidityDays, p.PriceCents, p.Currency,
		p.SortOrder, countries, translations, features)
	if err != nil {
		return fmt.Errorf("failed to create combo package: %w", err)
	}
	return nil
}

// Update updates an existing combo package
func (r *ComboPackageRepository) Update(ctx context.Context, p *catalog.ComboPackage) error {
	countries, err := marshalColumn(p.Countries)
	if err != nil {
		return err
	}
	translations, err := marshalColumn(p.Translations)
	if err != nil {
		return err
	}
	features, err := marshalColumn(p.Features)
	if err != nil {
		return err
	}

	query := `
		UPDATE combo_packages
		SET status = $2, data_amount = $3, validity_days = $4, price_cents = $5, currency = $6,
			countries = $7, translations = $8, features = $9, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Status, p.DataAmount, p.ValidityDays, p.PriceCents, p.Currency,
		countries, translations, features)
	if err != nil {
		return fmt.Errorf("failed to update combo package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("combo package %s: %w", p.ID, catalog.ErrNotFound)
	}
	return nil
}

// Delete removes a combo package
func (r *ComboPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, "DELETE FROM combo_packages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete combo package: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("combo package %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// Reorder rewrites sort_order to match the given id sequence.
func (r *ComboPackageRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorderRows(ctx, r.db, "combo_packages", ids)
}
