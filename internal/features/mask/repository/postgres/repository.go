package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
	"github.com/jdifek/fitziz-adminka/internal/features/mask/repository"
)

const maskColumns = `id, name, instructions, description, image_url, price, weight,
	view_area, sensors, power, shade_range, material, installment, size, days,
	operating_temp, welding_types, s_fire_protection,
	package_height, package_width, package_length`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.MaskRepository {
	return &postgresRepository{pool: pool}
}

func scanMask(row pgx.Row) (*models.Mask, error) {
	var m models.Mask
	err := row.Scan(
		&m.ID, &m.Name, &m.Instructions, &m.Description, &m.ImageURL, &m.Price,
		&m.Weight, &m.ViewArea, &m.Sensors, &m.Power, &m.ShadeRange, &m.Material,
		&m.Installment, &m.Size, &m.Days, &m.OperatingTemp, &m.WeldingTypes,
		&m.SFireProtection, &m.PackageHeight, &m.PackageWidth, &m.PackageLength)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List возвращает все маски вместе с их доп. характеристиками.
func (r *postgresRepository) List(ctx context.Context) ([]*models.Mask, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+maskColumns+` FROM masks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list masks: %w", err)
	}
	defer rows.Close()

	byID := make(map[int]*models.Mask)
	var masks []*models.Mask
	for rows.Next() {
		m, err := scanMask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mask: %w", err)
		}
		m.ExtraFields = []models.ExtraField{}
		byID[m.ID] = m
		masks = append(masks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list masks: %w", err)
	}

	extraRows, err := r.pool.Query(ctx,
		`SELECT id, key, value, mask_id FROM extra_fields ORDER BY mask_id, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra fields: %w", err)
	}
	defer extraRows.Close()

	for extraRows.Next() {
		var f models.ExtraField
		if err := extraRows.Scan(&f.ID, &f.Key, &f.Value, &f.MaskID); err != nil {
			return nil, fmt.Errorf("failed to scan extra field: %w", err)
		}
		if m, ok := byID[f.MaskID]; ok {
			m.ExtraFields = append(m.ExtraFields, f)
		}
	}
	if err := extraRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list extra fields: %w", err)
	}

	if masks == nil {
		masks = []*models.Mask{}
	}
	return masks, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*models.Mask, error) {
	m, err := scanMask(r.pool.QueryRow(ctx,
		`SELECT `+maskColumns+` FROM masks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrMaskNotFound
		}
		return nil, fmt.Errorf("failed to get mask: %w", err)
	}

	m.ExtraFields = []models.ExtraField{}
	rows, err := r.pool.Query(ctx,
		`SELECT id, key, value, mask_id FROM extra_fields WHERE mask_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get extra fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f models.ExtraField
		if err := rows.Scan(&f.ID, &f.Key, &f.Value, &f.MaskID); err != nil {
			return nil, fmt.Errorf("failed to scan extra field: %w", err)
		}
		m.ExtraFields = append(m.ExtraFields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get extra fields: %w", err)
	}
	return m, nil
}

func (r *postgresRepository) Create(ctx context.Context, mask *models.Mask, extras []models.KeyValue) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO masks (name, instructions, description, image_url, price, weight,
			view_area, sensors, power, shade_range, material,
			operating_temp, welding_types, s_fire_protection,
			package_height, package_width, package_length)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		mask.Name, mask.Instructions, mask.Description, mask.ImageURL, mask.Price,
		mask.Weight, mask.ViewArea, mask.Sensors, mask.Power, mask.ShadeRange,
		mask.Material, mask.OperatingTemp, mask.WeldingTypes, mask.SFireProtection,
		mask.PackageHeight, mask.PackageWidth, mask.PackageLength).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create mask: %w", err)
	}

	if err := insertExtras(ctx, tx, id, extras); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return id, nil
}

// Update не трогает колонки installment, size и days: они не входят
// в форму админки и принадлежат другой стороне системы.
func (r *postgresRepository) Update(ctx context.Context, id int, mask *models.Mask, extras []models.KeyValue) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE masks
		SET name = $2, instructions = $3, description = $4, image_url = $5,
			price = $6, weight = $7, view_area = $8, sensors = $9, power = $10,
			shade_range = $11, material = $12, operating_temp = $13,
			welding_types = $14, s_fire_protection = $15,
			package_height = $16, package_width = $17, package_length = $18
		WHERE id = $1`,
		id, mask.Name, mask.Instructions, mask.Description, mask.ImageURL,
		mask.Price, mask.Weight, mask.ViewArea, mask.Sensors, mask.Power,
		mask.ShadeRange, mask.Material, mask.OperatingTemp, mask.WeldingTypes,
		mask.SFireProtection, mask.PackageHeight, mask.PackageWidth, mask.PackageLength)
	if err != nil {
		return fmt.Errorf("failed to update mask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrMaskNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM extra_fields WHERE mask_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear extra fields: %w", err)
	}
	if err := insertExtras(ctx, tx, id, extras); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM masks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrMaskNotFound
	}
	return nil
}

func insertExtras(ctx context.Context, tx pgx.Tx, maskID int, extras []models.KeyValue) error {
	for _, f := range extras {
		if _, err := tx.Exec(ctx,
			`INSERT INTO extra_fields (key, value, mask_id) VALUES ($1, $2, $3)`,
			f.Key, f.Value, maskID); err != nil {
			return fmt.Errorf("failed to insert extra field: %w", err)
		}
	}
	return nil
}
