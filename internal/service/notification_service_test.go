package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/domain"
)

type notificationFixture struct {
	svc      *NotificationService
	members  *memMemberRepo
	classes  *memClassRepo
	bookings *memBookingRepo
	payments *memPaymentRepo
}

func newNotificationFixture() *notificationFixture {
	members := &memMemberRepo{members: map[int64]*domain.Member{}}
	classes := &memClassRepo{classes: map[int64]*domain.FitnessClass{}}
	bookings := newMemBookingRepo()
	payments := newMemPaymentRepo()
	svc := NewNotificationService(
		nil, zap.NewNop(), config.NotificationConfig{EmailFrom: "gym@example.com"},
		members, classes, bookings, payments,
	)
	return &notificationFixture{svc: svc, members: members, classes: classes, bookings: bookings, payments: payments}
}

func TestSendClassRemindersCountsActiveBookings(t *testing.T) {
	f := newNotificationFixture()
	f.classes.classes[1] = &domain.FitnessClass{ID: 1, Name: "yoga", StartTime: time.Now().Add(time.Hour), Active: true}
	require.NoError(t, f.bookings.Create(context.Background(), &domain.ClassBooking{MemberID: 5, FitnessClassID: 1, Status: domain.BookingStatusActive}))
	require.NoError(t, f.bookings.Create(context.Background(), &domain.ClassBooking{MemberID: 6, FitnessClassID: 1, Status: domain.BookingStatusCancelled}))
	require.NoError(t, f.bookings.Create(context.Background(), &domain.ClassBooking{MemberID: 7, FitnessClassID: 2, Status: domain.BookingStatusActive}))

	count, err := f.svc.SendClassReminders(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = f.svc.SendClassReminders(context.Background(), 404)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestSendPaymentRemindersCountsPending(t *testing.T) {
	f := newNotificationFixture()
	require.NoError(t, f.payments.Create(context.Background(), &domain.Payment{MemberID: 5, Amount: 10, Status: domain.PaymentStatusPending}))
	require.NoError(t, f.payments.Create(context.Background(), &domain.Payment{MemberID: 6, Amount: 10, Status: domain.PaymentStatusPaid}))

	count, err := f.svc.SendPaymentReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSendMembershipExpiryRemindersWindow(t *testing.T) {
	f := newNotificationFixture()
	soon := time.Now().Add(7 * 24 * time.Hour)
	far := time.Now().Add(90 * 24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)
	f.members.members[1] = &domain.Member{ID: 1, Active: true, MembershipEnd: &soon}
	f.members.members[2] = &domain.Member{ID: 2, Active: true, MembershipEnd: &far}
	f.members.members[3] = &domain.Member{ID: 3, Active: true, MembershipEnd: &past}
	f.members.members[4] = &domain.Member{ID: 4, Active: true}
	f.members.members[5] = &domain.Member{ID: 5, Active: false, MembershipEnd: &soon}

	count, err := f.svc.SendMembershipExpiryReminders(context.Background())
	require.NoError(t, err)
	// Only the active member expiring inside the window gets a reminder.
	assert.Equal(t, 1, count)
}

func TestSendWelcome(t *testing.T) {
	f := newNotificationFixture()
	f.members.members[1] = &domain.Member{ID: 1, Active: true, MembershipType: domain.MembershipBasic}

	require.NoError(t, f.svc.SendWelcome(context.Background(), 1))
	assert.ErrorIs(t, f.svc.SendWelcome(context.Background(), 404), pgx.ErrNoRows)
}
