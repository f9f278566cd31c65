package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/scxttalex/areabooker/internal/entity"
)

type areaRepository struct {
	db *sql.DB
}

func NewAreaRepository(db *sql.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) Create(ctx context.Context, area *entity.Area) error {
	query := `
		INSERT INTO areas (
			id, name, description, base_price, open_time, close_time,
			guest_capacity, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		area.ID,
		area.Name,
		area.Description,
		area.BasePrice,
		area.OpenTime,
		area.CloseTime,
		area.GuestCapacity,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create area: %v", err)
	}

	area.CreatedAt = now
	area.UpdatedAt = now
	return nil
}

func (r *areaRepository) GetByID(ctx context.Context, id string) (*entity.Area, error) {
	query := `
		SELECT id, name, description, base_price, open_time, close_time,
			guest_capacity, created_at, updated_at
		FROM areas WHERE id = $1
	`

	var area entity.Area
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&area.ID,
		&area.Name,
		&area.Description,
		&area.BasePrice,
		&area.OpenTime,
		&area.CloseTime,
		&area.GuestCapacity,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get area: %v", err)
	}
	return &area, nil
}

func (r *areaRepository) GetAll(ctx context.Context) ([]*entity.Area, error) {
	query := `
		SELECT id, name, description, base_price, open_time, close_time,
			guest_capacity, created_at, updated_at
		FROM areas ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %v", err)
	}
	defer rows.Close()

	var areas []*entity.Area
	for rows.Next() {
		var area entity.Area
		err := rows.Scan(
			&area.ID,
			&area.Name,
			&area.Description,
			&area.BasePrice,
			&area.OpenTime,
			&area.CloseTime,
			&area.GuestCapacity,
			&area.CreatedAt,
			&area.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area: %v", err)
		}
		areas = append(areas, &area)
	}
	return areas, rows.Err()
}

func (r *areaRepository) Update(ctx context.Context, area *entity.Area) error {
	query := `
		UPDATE areas SET
			name = $2, description = $3, base_price = $4, open_time = $5,
			close_time = $6, guest_capacity = $7, updated_at = $8
		WHERE id = $1
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		area.ID,
		area.Name,
		area.Description,
		area.BasePrice,
		area.OpenTime,
		area.CloseTime,
		area.GuestCapacity,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to update area: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return entity.ErrAreaNotFound
	}

	area.UpdatedAt = now
	return nil
}

func (r *areaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %v", err)
	}
	if rows == 0 {
		return entity.ErrAreaNotFound
	}
	return nil
}
