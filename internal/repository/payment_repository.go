package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// PaymentRepository defines persistence access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

const paymentColumns = `id, member_id, fitness_class_id, class_booking_id, amount,
        status, method, paid_at, created_at, updated_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	if err := row.Scan(
		&p.ID,
		&p.MemberID,
		&p.FitnessClassID,
		&p.ClassBookingID,
		&p.Amount,
		&p.Status,
		&p.Method,
		&p.PaidAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (member_id, fitness_class_id, class_booking_id, amount, status, method, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		payment.MemberID,
		payment.FitnessClassID,
		payment.ClassBookingID,
		payment.Amount,
		payment.Status,
		payment.Method,
		payment.PaidAt,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET amount=$1, status=$2, method=$3, paid_at=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		payment.Amount,
		payment.Status,
		payment.Method,
		payment.PaidAt,
		payment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1`
	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
	return r.queryPayments(ctx, query)
}

func (r *paymentRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE member_id=$1 ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, memberID)
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status=$1 ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, status)
}

func (r *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status=$1`

	var total float64
	if err := r.pool.QueryRow(ctx, query, domain.PaymentStatusPaid).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
