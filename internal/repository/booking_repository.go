package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// BookingRepository defines persistence access for class bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.ClassBooking) error
	Update(ctx context.Context, booking *domain.ClassBooking) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ClassBooking, error)
	ListByMember(ctx context.Context, memberID int64) ([]domain.ClassBooking, error)
	ListByClass(ctx context.Context, classID int64) ([]domain.ClassBooking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.ClassBooking, error)
	CountActiveForClass(ctx context.Context, classID int64) (int, error)
	ActiveBookingExists(ctx context.Context, memberID, classID int64) (bool, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, fitness_class_id, member_id, booking_date, status,
        cancelled_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.ClassBooking, error) {
	var b domain.ClassBooking
	if err := row.Scan(
		&b.ID,
		&b.FitnessClassID,
		&b.MemberID,
		&b.BookingDate,
		&b.Status,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.ClassBooking) error {
	const query = `
        INSERT INTO class_bookings (fitness_class_id, member_id, booking_date, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		booking.FitnessClassID,
		booking.MemberID,
		booking.BookingDate,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.ClassBooking) error {
	const query = `
        UPDATE class_bookings SET status=$1, cancelled_at=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, booking.Status, booking.CancelledAt, booking.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM class_bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.ClassBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM class_bookings WHERE id=$1`
	return scanBooking(r.pool.QueryRow(ctx, query, id))
}

func (r *bookingRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.ClassBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM class_bookings WHERE member_id=$1 ORDER BY booking_date DESC`
	return r.queryBookings(ctx, query, memberID)
}

func (r *bookingRepository) ListByClass(ctx context.Context, classID int64) ([]domain.ClassBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM class_bookings WHERE fitness_class_id=$1 ORDER BY booking_date DESC`
	return r.queryBookings(ctx, query, classID)
}

func (r *bookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.ClassBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM class_bookings WHERE status=$1 ORDER BY booking_date DESC`
	return r.queryBookings(ctx, query, status)
}

func (r *bookingRepository) CountActiveForClass(ctx context.Context, classID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM class_bookings WHERE fitness_class_id=$1 AND status=$2`

	var count int
	if err := r.pool.QueryRow(ctx, query, classID, domain.BookingStatusActive).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) ActiveBookingExists(ctx context.Context, memberID, classID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM class_bookings
            WHERE member_id=$1 AND fitness_class_id=$2 AND status=$3
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, memberID, classID, domain.BookingStatusActive).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.ClassBooking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.ClassBooking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
