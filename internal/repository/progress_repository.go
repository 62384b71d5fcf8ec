package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// ProgressRepository defines persistence access for fitness progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.FitnessProgress) error
	Update(ctx context.Context, entry *domain.FitnessProgress) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.FitnessProgress, error)
	List(ctx context.Context) ([]domain.FitnessProgress, error)
	ListByMember(ctx context.Context, memberID int64) ([]domain.FitnessProgress, error)
	ListByMemberDateRange(ctx context.Context, memberID int64, from, to time.Time) ([]domain.FitnessProgress, error)
	ListRecentByMember(ctx context.Context, memberID int64, limit int) ([]domain.FitnessProgress, error)
}

type progressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository returns a Postgres-backed implementation.
func NewProgressRepository(pool *pgxpool.Pool) ProgressRepository {
	return &progressRepository{pool: pool}
}

const progressColumns = `id, member_id, recorded_at, weight_kg, body_fat_percent,
        muscle_mass_kg, notes, created_at, updated_at`

func scanProgress(row pgx.Row) (*domain.FitnessProgress, error) {
	var p domain.FitnessProgress
	if err := row.Scan(
		&p.ID,
		&p.MemberID,
		&p.RecordedAt,
		&p.WeightKG,
		&p.BodyFatPercent,
		&p.MuscleMassKG,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) Create(ctx context.Context, entry *domain.FitnessProgress) error {
	const query = `
        INSERT INTO fitness_progress (member_id, recorded_at, weight_kg, body_fat_percent, muscle_mass_kg, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		entry.MemberID,
		entry.RecordedAt,
		entry.WeightKG,
		entry.BodyFatPercent,
		entry.MuscleMassKG,
		entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *progressRepository) Update(ctx context.Context, entry *domain.FitnessProgress) error {
	const query = `
        UPDATE fitness_progress SET recorded_at=$1, weight_kg=$2, body_fat_percent=$3,
            muscle_mass_kg=$4, notes=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		entry.RecordedAt,
		entry.WeightKG,
		entry.BodyFatPercent,
		entry.MuscleMassKG,
		entry.Notes,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *progressRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM fitness_progress WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *progressRepository) GetByID(ctx context.Context, id int64) (*domain.FitnessProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM fitness_progress WHERE id=$1`
	return scanProgress(r.pool.QueryRow(ctx, query, id))
}

func (r *progressRepository) List(ctx context.Context) ([]domain.FitnessProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM fitness_progress ORDER BY recorded_at DESC`
	return r.queryProgress(ctx, query)
}

func (r *progressRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.FitnessProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM fitness_progress WHERE member_id=$1 ORDER BY recorded_at DESC`
	return r.queryProgress(ctx, query, memberID)
}

func (r *progressRepository) ListByMemberDateRange(ctx context.Context, memberID int64, from, to time.Time) ([]domain.FitnessProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM fitness_progress
        WHERE member_id=$1 AND recorded_at >= $2 AND recorded_at <= $3
        ORDER BY recorded_at DESC`
	return r.queryProgress(ctx, query, memberID, from, to)
}

func (r *progressRepository) ListRecentByMember(ctx context.Context, memberID int64, limit int) ([]domain.FitnessProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM fitness_progress WHERE member_id=$1 ORDER BY recorded_at DESC LIMIT $2`
	return r.queryProgress(ctx, query, memberID, limit)
}

func (r *progressRepository) queryProgress(ctx context.Context, query string, args ...any) ([]domain.FitnessProgress, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.FitnessProgress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *p)
	}
	return entries, rows.Err()
}
