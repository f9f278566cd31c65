package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/scxttalex/areabooker/internal/entity"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `
	id, area_id, user_id, date, start_time, end_time, purpose,
	addon_ids, notes, inhouse_discount, total_price, paid,
	created_at, updated_at
`

// Create inserts a new booking. The caller (service layer) has already
// assigned the id and computed total_price.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (
			id, area_id, user_id, date, start_time, end_time, purpose,
			addon_ids, notes, inhouse_discount, total_price, paid,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.AreaID,
		booking.UserID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		pq.Array(booking.Purpose),
		pq.Array(booking.AddonIDs),
		booking.Notes,
		booking.InhouseDiscount,
		booking.TotalPrice,
		booking.Paid,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %v", err)
	}

	booking.CreatedAt = now
	booking.UpdatedAt = now
	return nil
}

// GetByID retrieves a booking by its ID.
func (r *bookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}
	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings SET
			area_id = $2, user_id = $3, date = $4, start_time = $5,
			end_time = $6, purpose = $7, addon_ids = $8, notes = $9,
			inhouse_discount = $10, total_price = $11, paid = $12,
			updated_at = $13
		WHERE id = $1
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.AreaID,
		booking.UserID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		pq.Array(booking.Purpose),
		pq.Array(booking.AddonIDs),
		booking.Notes,
		booking.InhouseDiscount,
		booking.TotalPrice,
		booking.Paid,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return entity.ErrBookingNotFound
	}

	booking.UpdatedAt = now
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %v", err)
	}
	if rows == 0 {
		return entity.ErrBookingNotFound
	}
	return nil
}

// GetAll returns every booking, newest date first so the analytics
// activity log reads naturally without another sort in the common case.
func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY date DESC, created_at DESC`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) GetByAreaID(ctx context.Context, areaID string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE area_id = $1 ORDER BY date DESC`
	return r.queryBookings(ctx, query, areaID)
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY date DESC`
	return r.queryBookings(ctx, query, userID)
}

// GetByDateRange returns bookings with date in [from, to], for calendar
// views that only need a window of the table.
func (r *bookingRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE date >= $1 AND date <= $2 ORDER BY date, start_time`
	return r.queryBookings(ctx, query, from, to)
}

func (r *bookingRepository) SetPaid(ctx context.Context, id string, paid bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET paid = $2, updated_at = NOW() WHERE id = $1`, id, paid)
	if err != nil {
		return fmt.Errorf("failed to update paid flag: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return entity.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*entity.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %v", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %v", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.AreaID,
		&booking.UserID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		pq.Array(&booking.Purpose),
		pq.Array(&booking.AddonIDs),
		&booking.Notes,
		&booking.InhouseDiscount,
		&booking.TotalPrice,
		&booking.Paid,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
