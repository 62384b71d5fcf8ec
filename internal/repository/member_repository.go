package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// MemberRepository defines persistence access for member profiles.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	ListActive(ctx context.Context) ([]domain.Member, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

const memberColumns = `id, user_id, date_of_birth, gender, phone_number, address,
        membership_start, membership_end, membership_type, active,
        medical_conditions, emergency_contact, created_at, updated_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.DateOfBirth,
		&m.Gender,
		&m.PhoneNumber,
		&m.Address,
		&m.MembershipStart,
		&m.MembershipEnd,
		&m.MembershipType,
		&m.Active,
		&m.MedicalConditions,
		&m.EmergencyContact,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (user_id, date_of_birth, gender, phone_number, address,
            membership_start, membership_end, membership_type, active,
            medical_conditions, emergency_contact)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		member.UserID,
		member.DateOfBirth,
		member.Gender,
		member.PhoneNumber,
		member.Address,
		member.MembershipStart,
		member.MembershipEnd,
		member.MembershipType,
		member.Active,
		member.MedicalConditions,
		member.EmergencyContact,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET date_of_birth=$1, gender=$2, phone_number=$3, address=$4,
            membership_start=$5, membership_end=$6, membership_type=$7, active=$8,
            medical_conditions=$9, emergency_contact=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		member.DateOfBirth,
		member.Gender,
		member.PhoneNumber,
		member.Address,
		member.MembershipStart,
		member.MembershipEnd,
		member.MembershipType,
		member.Active,
		member.MedicalConditions,
		member.EmergencyContact,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id=$1`
	return scanMember(r.pool.QueryRow(ctx, query, id))
}

func (r *memberRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE user_id=$1`
	return scanMember(r.pool.QueryRow(ctx, query, userID))
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY id`
	return r.queryMembers(ctx, query)
}

func (r *memberRepository) ListActive(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE active=TRUE ORDER BY id`
	return r.queryMembers(ctx, query)
}

func (r *memberRepository) queryMembers(ctx context.Context, query string, args ...any) ([]domain.Member, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}
