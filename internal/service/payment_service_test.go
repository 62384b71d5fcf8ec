package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/domain"
)

type memPaymentRepo struct {
	seq      int64
	payments map[int64]*domain.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: map[int64]*domain.Payment{}}
}

func (r *memPaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	r.seq++
	payment.ID = r.seq
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *memPaymentRepo) Update(_ context.Context, payment *domain.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *memPaymentRepo) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *payment
	return &copied, nil
}

func (r *memPaymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPaymentRepo) ListByMember(_ context.Context, memberID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.MemberID == memberID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) ListByStatus(_ context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.Status == domain.PaymentStatusPaid {
			total += p.Amount
		}
	}
	return total, nil
}

type paymentFixture struct {
	svc      *PaymentService
	payments *memPaymentRepo
	bookings *memBookingRepo
}

func newPaymentFixture() *paymentFixture {
	payments := newMemPaymentRepo()
	bookings := newMemBookingRepo()
	return &paymentFixture{
		svc:      NewPaymentService(payments, bookings, nil),
		payments: payments,
		bookings: bookings,
	}
}

func (f *paymentFixture) addBooking(memberID, classID int64) *domain.ClassBooking {
	booking := &domain.ClassBooking{MemberID: memberID, FitnessClassID: classID, Status: domain.BookingStatusActive}
	_ = f.bookings.Create(context.Background(), booking)
	return booking
}

func TestRecordPaymentBindsToBooking(t *testing.T) {
	f := newPaymentFixture()
	booking := f.addBooking(5, 3)

	payment, err := f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: booking.ID,
		Amount:         49.90,
		Method:         domain.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), payment.MemberID)
	assert.Equal(t, int64(3), payment.FitnessClassID)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.PaidAt)
}

func TestRecordPaymentValidation(t *testing.T) {
	f := newPaymentFixture()
	booking := f.addBooking(5, 3)

	_, err := f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: booking.ID,
		Amount:         -1,
		Method:         domain.PaymentMethodCash,
	})
	requireStatus(t, err, 400)

	_, err = f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: booking.ID,
		Amount:         10,
		Method:         "BARTER",
	})
	requireStatus(t, err, 400)

	_, err = f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: 404,
		Amount:         10,
		Method:         domain.PaymentMethodCash,
	})
	requireStatus(t, err, 404)
}

func TestRecordPaidPaymentStampsPaidAt(t *testing.T) {
	f := newPaymentFixture()
	booking := f.addBooking(5, 3)

	payment, err := f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: booking.ID,
		Amount:         10,
		Method:         domain.PaymentMethodOnline,
		Status:         domain.PaymentStatusPaid,
	})
	require.NoError(t, err)
	require.NotNil(t, payment.PaidAt)
}

func TestPaymentStatusTransitions(t *testing.T) {
	f := newPaymentFixture()
	booking := f.addBooking(5, 3)

	payment, err := f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: booking.ID,
		Amount:         10,
		Method:         domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	// PENDING cannot jump straight to REFUNDED.
	_, err = f.svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentStatusRefunded)
	requireStatus(t, err, 409)

	paid, err := f.svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	_, err = f.svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentStatusCancelled)
	requireStatus(t, err, 409)

	refunded, err := f.svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, refunded.Status)

	// Terminal states reject further transitions.
	_, err = f.svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentStatusPaid)
	requireStatus(t, err, 409)
}

func TestPaymentCancelFromPending(t *testing.T) {
	f := newPaymentFixture()
	booking := f.addBooking(5, 3)

	payment, err := f.svc.Record(context.Background(), &domain.Payment{
		ClassBookingID: booking.ID,
		Amount:         10,
		Method:         domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	cancelled, err := f.svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.PaidAt)
}
