package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
)

type memProgressRepo struct {
	seq     int64
	entries map[int64]*domain.FitnessProgress
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{entries: map[int64]*domain.FitnessProgress{}}
}

func (r *memProgressRepo) Create(_ context.Context, entry *domain.FitnessProgress) error {
	r.seq++
	entry.ID = r.seq
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *memProgressRepo) Update(_ context.Context, entry *domain.FitnessProgress) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *memProgressRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.entries[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.entries, id)
	return nil
}

func (r *memProgressRepo) GetByID(_ context.Context, id int64) (*domain.FitnessProgress, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *entry
	return &copied, nil
}

func (r *memProgressRepo) List(_ context.Context) ([]domain.FitnessProgress, error) {
	var out []domain.FitnessProgress
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memProgressRepo) ListByMember(_ context.Context, memberID int64) ([]domain.FitnessProgress, error) {
	var out []domain.FitnessProgress
	for _, e := range r.entries {
		if e.MemberID == memberID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memProgressRepo) ListByMemberDateRange(_ context.Context, memberID int64, from, to time.Time) ([]domain.FitnessProgress, error) {
	var out []domain.FitnessProgress
	for _, e := range r.entries {
		if e.MemberID == memberID && !e.RecordedAt.Before(from) && !e.RecordedAt.After(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memProgressRepo) ListRecentByMember(_ context.Context, memberID int64, limit int) ([]domain.FitnessProgress, error) {
	entries, _ := r.ListByMember(context.Background(), memberID)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type progressFixture struct {
	svc     *ProgressService
	entries *memProgressRepo
	members *memMemberRepo
}

func newProgressFixture() *progressFixture {
	entries := newMemProgressRepo()
	members := &memMemberRepo{members: map[int64]*domain.Member{}}
	return &progressFixture{
		svc:     NewProgressService(entries, members),
		entries: entries,
		members: members,
	}
}

func (f *progressFixture) addMember(memberID, userID int64, role domain.Role) *auth.Principal {
	f.members.members[memberID] = &domain.Member{ID: memberID, UserID: userID, Active: true}
	return &auth.Principal{User: &domain.User{ID: userID, Username: "u", Role: role, Enabled: true}}
}

func TestProgressCreateBindsToOwnProfile(t *testing.T) {
	f := newProgressFixture()
	actor := f.addMember(5, 50, domain.RoleMember)

	entry, err := f.svc.Create(context.Background(), actor, &domain.FitnessProgress{
		MemberID: 999, // ignored for non-admins
		WeightKG: 82.5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.MemberID)
	assert.False(t, entry.RecordedAt.IsZero())
}

func TestProgressCreateValidatesWeight(t *testing.T) {
	f := newProgressFixture()
	actor := f.addMember(5, 50, domain.RoleMember)

	_, err := f.svc.Create(context.Background(), actor, &domain.FitnessProgress{WeightKG: 0})
	requireStatus(t, err, 400)
}

func TestProgressCreateWithoutProfile(t *testing.T) {
	f := newProgressFixture()
	bare := &auth.Principal{User: &domain.User{ID: 70, Username: "bare", Role: domain.RoleMember, Enabled: true}}

	_, err := f.svc.Create(context.Background(), bare, &domain.FitnessProgress{WeightKG: 80})
	requireStatus(t, err, 403)
}

func TestProgressAdminCreatesForAnyMember(t *testing.T) {
	f := newProgressFixture()
	f.addMember(5, 50, domain.RoleMember)

	entry, err := f.svc.Create(context.Background(), adminPrincipal(), &domain.FitnessProgress{
		MemberID: 5,
		WeightKG: 78,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.MemberID)
}

func TestProgressReadOwnership(t *testing.T) {
	f := newProgressFixture()
	owner := f.addMember(5, 50, domain.RoleMember)
	other := f.addMember(6, 60, domain.RoleMember)
	trainer := &auth.Principal{User: &domain.User{ID: 80, Username: "coach", Role: domain.RoleTrainer, Enabled: true}}

	entry, err := f.svc.Create(context.Background(), owner, &domain.FitnessProgress{WeightKG: 82})
	require.NoError(t, err)

	_, err = f.svc.Get(context.Background(), owner, entry.ID)
	require.NoError(t, err)

	_, err = f.svc.Get(context.Background(), other, entry.ID)
	requireStatus(t, err, 403)

	// Trainers may read any member's history but not rewrite it.
	_, err = f.svc.Get(context.Background(), trainer, entry.ID)
	require.NoError(t, err)

	entry.WeightKG = 81
	_, err = f.svc.Update(context.Background(), trainer, entry)
	requireStatus(t, err, 403)
}

func TestProgressUpdateKeepsOwner(t *testing.T) {
	f := newProgressFixture()
	owner := f.addMember(5, 50, domain.RoleMember)

	entry, err := f.svc.Create(context.Background(), owner, &domain.FitnessProgress{WeightKG: 82})
	require.NoError(t, err)

	entry.MemberID = 999
	entry.WeightKG = 80
	updated, err := f.svc.Update(context.Background(), owner, entry)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.MemberID)
	assert.Equal(t, 80.0, updated.WeightKG)
}

func TestProgressDateRangeValidation(t *testing.T) {
	f := newProgressFixture()
	owner := f.addMember(5, 50, domain.RoleMember)

	now := time.Now()
	_, err := f.svc.ListByMemberDateRange(context.Background(), owner, 5, now, now.Add(-time.Hour))
	requireStatus(t, err, 400)

	_, err = f.svc.ListByMemberDateRange(context.Background(), owner, 6, now.Add(-time.Hour), now)
	requireStatus(t, err, 403)
}

func TestProgressRecentLimitDefaults(t *testing.T) {
	f := newProgressFixture()
	owner := f.addMember(5, 50, domain.RoleMember)
	for i := 0; i < 15; i++ {
		_, err := f.svc.Create(context.Background(), owner, &domain.FitnessProgress{WeightKG: 80})
		require.NoError(t, err)
	}

	entries, err := f.svc.ListRecentByMember(context.Background(), owner, 5, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 10)

	entries, err = f.svc.ListRecentByMember(context.Background(), owner, 5, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
