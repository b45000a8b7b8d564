package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdifek/fitziz-adminka/internal/features/user/models"
	"github.com/jdifek/fitziz-adminka/internal/features/user/repository"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filter string) ([]*models.User, error) {
	query := `SELECT id, telegram_id, first_name, phone, email, mask_id FROM users`
	args := []interface{}{}
	if filter != "" {
		query += ` WHERE telegram_id ILIKE $1`
		args = append(args, "%"+filter+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.Phone, &u.Email, &u.MaskID); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, telegram_id, first_name, phone, email, mask_id FROM users WHERE telegram_id = $1`,
		telegramID).
		Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.Phone, &u.Email, &u.MaskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) UpdateMask(ctx context.Context, telegramID string, maskID *int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET mask_id = $2 WHERE telegram_id = $1`, telegramID, maskID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, telegramID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE telegram_id = $1`, telegramID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) ListTelegramIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT telegram_id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list telegram ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan telegram id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list telegram ids: %w", err)
	}
	return ids, nil
}
