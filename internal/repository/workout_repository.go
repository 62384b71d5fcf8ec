package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// WorkoutRepository defines persistence access for workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
}

type workoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository returns a Postgres-backed implementation.
func NewWorkoutRepository(pool *pgxpool.Pool) WorkoutRepository {
	return &workoutRepository{pool: pool}
}

const workoutColumns = `id, type, date, duration, calories, notes, created_at, updated_at`

func scanWorkout(row pgx.Row) (*domain.Workout, error) {
	var w domain.Workout
	if err := row.Scan(
		&w.ID,
		&w.Type,
		&w.Date,
		&w.Duration,
		&w.Calories,
		&w.Notes,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	const query = `
        INSERT INTO workouts (type, date, duration, calories, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		workout.Type,
		workout.Date,
		workout.Duration,
		workout.Calories,
		workout.Notes,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	const query = `
        UPDATE workouts SET type=$1, date=$2, duration=$3, calories=$4, notes=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		workout.Type,
		workout.Date,
		workout.Duration,
		workout.Calories,
		workout.Notes,
		workout.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id=$1`
	return scanWorkout(r.pool.QueryRow(ctx, query, id))
}

func (r *workoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []domain.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	return workouts, rows.Err()
}
