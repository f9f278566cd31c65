package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/scxttalex/areabooker/internal/entity"
)

type addonRepository struct {
	db *sql.DB
}

func NewAddonRepository(db *sql.DB) AddonRepository {
	return &addonRepository{db: db}
}

func (r *addonRepository) Create(ctx context.Context, addon *entity.Addon) error {
	query := `
		INSERT INTO addons (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, addon.ID, addon.Name, addon.Price, now, now)
	if err != nil {
		return fmt.Errorf("failed to create addon: %v", err)
	}

	addon.CreatedAt = now
	addon.UpdatedAt = now
	return nil
}

func (r *addonRepository) GetByID(ctx context.Context, id string) (*entity.Addon, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM addons WHERE id = $1`

	var addon entity.Addon
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&addon.ID, &addon.Name, &addon.Price, &addon.CreatedAt, &addon.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrAddonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get addon: %v", err)
	}
	return &addon, nil
}

// GetByIDs resolves a booking's addon selection in one query. Ids that no
// longer exist are simply absent from the result; pricing treats them as
// deleted add-ons and ignores them.
func (r *addonRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, price, created_at, updated_at FROM addons WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query addons: %v", err)
	}
	defer rows.Close()

	return scanAddons(rows)
}

func (r *addonRepository) GetAll(ctx context.Context) ([]*entity.Addon, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM addons ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query addons: %v", err)
	}
	defer rows.Close()

	return scanAddons(rows)
}

func (r *addonRepository) Update(ctx context.Context, addon *entity.Addon) error {
	query := `UPDATE addons SET name = $2, price = $3, updated_at = $4 WHERE id = $1`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, addon.ID, addon.Name, addon.Price, now)
	if err != nil {
		return fmt.Errorf("failed to update addon: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return entity.ErrAddonNotFound
	}

	addon.UpdatedAt = now
	return nil
}

func (r *addonRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete addon: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %v", err)
	}
	if rows == 0 {
		return entity.ErrAddonNotFound
	}
	return nil
}

func scanAddons(rows *sql.Rows) ([]*entity.Addon, error) {
	var addons []*entity.Addon
	for rows.Next() {
		var addon entity.Addon
		err := rows.Scan(&addon.ID, &addon.Name, &addon.Price, &addon.CreatedAt, &addon.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan addon: %v", err)
		}
		addons = append(addons, &addon)
	}
	return addons, rows.Err()
}
