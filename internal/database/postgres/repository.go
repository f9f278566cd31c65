package repository

import (
	"context"
	"time"

	"github.com/scxttalex/areabooker/internal/entity"
)

type BookingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id string) error

	// Query operations
	GetAll(ctx context.Context) ([]*entity.Booking, error)
	GetByAreaID(ctx context.Context, areaID string) ([]*entity.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)

	// Settlement
	SetPaid(ctx context.Context, id string, paid bool) error
}

type AreaRepository interface {
	Create(ctx context.Context, area *entity.Area) error
	GetByID(ctx context.Context, id string) (*entity.Area, error)
	GetAll(ctx context.Context) ([]*entity.Area, error)
	Update(ctx context.Context, area *entity.Area) error
	Delete(ctx context.Context, id string) error
}

type AddonRepository interface {
	Create(ctx context.Context, addon *entity.Addon) error
	GetByID(ctx context.Context, id string) (*entity.Addon, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Addon, error)
	GetAll(ctx context.Context) ([]*entity.Addon, error)
	Update(ctx context.Context, addon *entity.Addon) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
