package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// TrainerRepository defines persistence access for trainer profiles.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) error
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]domain.Trainer, error)
}

type trainerRepository struct {
	pool *pgxpool.Pool
}

// NewTrainerRepository returns a Postgres-backed implementation.
func NewTrainerRepository(pool *pgxpool.Pool) TrainerRepository {
	return &trainerRepository{pool: pool}
}

const trainerColumns = `id, user_id, specialization, phone_number, bio, hire_date,
        hourly_rate, active, created_at, updated_at`

func scanTrainer(row pgx.Row) (*domain.Trainer, error) {
	var t domain.Trainer
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Specialization,
		&t.PhoneNumber,
		&t.Bio,
		&t.HireDate,
		&t.HourlyRate,
		&t.Active,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	const query = `
        INSERT INTO trainers (user_id, specialization, phone_number, bio, hire_date, hourly_rate, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		trainer.UserID,
		trainer.Specialization,
		trainer.PhoneNumber,
		trainer.Bio,
		trainer.HireDate,
		trainer.HourlyRate,
		trainer.Active,
	).Scan(&trainer.ID, &trainer.CreatedAt, &trainer.UpdatedAt)
}

func (r *trainerRepository) Update(ctx context.Context, trainer *domain.Trainer) error {
	const query = `
        UPDATE trainers SET specialization=$1, phone_number=$2, bio=$3, hire_date=$4,
            hourly_rate=$5, active=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		trainer.Specialization,
		trainer.PhoneNumber,
		trainer.Bio,
		trainer.HireDate,
		trainer.HourlyRate,
		trainer.Active,
		trainer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM trainers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainerRepository) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id=$1`
	return scanTrainer(r.pool.QueryRow(ctx, query, id))
}

func (r *trainerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE user_id=$1`
	return scanTrainer(r.pool.QueryRow(ctx, query, userID))
}

func (r *trainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers ORDER BY id`
	return r.queryTrainers(ctx, query)
}

func (r *trainerRepository) ListBySpecialization(ctx context.Context, specialization string) ([]domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE specialization ILIKE $1 ORDER BY id`
	return r.queryTrainers(ctx, query, "%"+specialization+"%")
}

func (r *trainerRepository) queryTrainers(ctx context.Context, query string, args ...any) ([]domain.Trainer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainers := []domain.Trainer{}
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, err
		}
		trainers = append(trainers, *t)
	}
	return trainers, rows.Err()
}
