package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// DashboardStats aggregates headline numbers for the admin dashboard.
type DashboardStats struct {
	TotalMembers   int64   `json:"total_members"`
	ActiveMembers  int64   `json:"active_members"`
	TotalTrainers  int64   `json:"total_trainers"`
	TotalClasses   int64   `json:"total_classes"`
	ActiveBookings int64   `json:"active_bookings"`
	UnreadMessages int64   `json:"unread_messages"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// DashboardRepository runs the aggregate queries behind the dashboard.
type DashboardRepository interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository returns a Postgres-backed implementation.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*DashboardStats, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM members),
            (SELECT COUNT(*) FROM members WHERE active=TRUE),
            (SELECT COUNT(*) FROM trainers),
            (SELECT COUNT(*) FROM fitness_classes),
            (SELECT COUNT(*) FROM class_bookings WHERE status=$1),
            (SELECT COUNT(*) FROM contact_messages WHERE read=FALSE),
            (SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status=$2)`

	var stats DashboardStats
	if err := r.pool.QueryRow(ctx, query, domain.BookingStatusActive, domain.PaymentStatusPaid).Scan(
		&stats.TotalMembers,
		&stats.ActiveMembers,
		&stats.TotalTrainers,
		&stats.TotalClasses,
		&stats.ActiveBookings,
		&stats.UnreadMessages,
		&stats.TotalRevenue,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
