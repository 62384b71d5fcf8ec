package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// ClassRepository defines persistence access for fitness classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.FitnessClass) error
	Update(ctx context.Context, class *domain.FitnessClass) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error)
	List(ctx context.Context) ([]domain.FitnessClass, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]domain.FitnessClass, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]domain.FitnessClass, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository returns a Postgres-backed implementation.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

const classColumns = `id, name, description, trainer_id, start_time, end_time,
        capacity, price, active, created_at, updated_at`

func scanClass(row pgx.Row) (*domain.FitnessClass, error) {
	var c domain.FitnessClass
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.TrainerID,
		&c.StartTime,
		&c.EndTime,
		&c.Capacity,
		&c.Price,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *classRepository) Create(ctx context.Context, class *domain.FitnessClass) error {
	const query = `
        INSERT INTO fitness_classes (name, description, trainer_id, start_time, end_time, capacity, price, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		class.Name,
		class.Description,
		class.TrainerID,
		class.StartTime,
		class.EndTime,
		class.Capacity,
		class.Price,
		class.Active,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (r *classRepository) Update(ctx context.Context, class *domain.FitnessClass) error {
	const query = `
        UPDATE fitness_classes SET name=$1, description=$2, trainer_id=$3, start_time=$4,
            end_time=$5, capacity=$6, price=$7, active=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		class.Name,
		class.Description,
		class.TrainerID,
		class.StartTime,
		class.EndTime,
		class.Capacity,
		class.Price,
		class.Active,
		class.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM fitness_classes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error) {
	query := `SELECT ` + classColumns + ` FROM fitness_classes WHERE id=$1`
	return scanClass(r.pool.QueryRow(ctx, query, id))
}

func (r *classRepository) List(ctx context.Context) ([]domain.FitnessClass, error) {
	query := `SELECT ` + classColumns + ` FROM fitness_classes ORDER BY start_time`
	return r.queryClasses(ctx, query)
}

func (r *classRepository) ListUpcoming(ctx context.Context, after time.Time) ([]domain.FitnessClass, error) {
	query := `SELECT ` + classColumns + ` FROM fitness_classes WHERE start_time > $1 AND active=TRUE ORDER BY start_time`
	return r.queryClasses(ctx, query, after)
}

func (r *classRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.FitnessClass, error) {
	query := `SELECT ` + classColumns + ` FROM fitness_classes WHERE trainer_id=$1 ORDER BY start_time`
	return r.queryClasses(ctx, query, trainerID)
}

func (r *classRepository) queryClasses(ctx context.Context, query string, args ...any) ([]domain.FitnessClass, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []domain.FitnessClass{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *c)
	}
	return classes, rows.Err()
}
