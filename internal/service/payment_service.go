package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// PaymentService records and transitions payments.
type PaymentService struct {
	payments   repository.PaymentRepository
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, bookings repository.BookingRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, bookings: bookings, dispatcher: dispatcher}
}

// Record creates a payment for an existing booking.
func (s *PaymentService) Record(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", nil)
	}
	switch payment.Method {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodOnline:
	default:
		return nil, apperrors.NewValidationError("unknown payment method", map[string]any{"method": payment.Method})
	}

	booking, err := s.bookings.GetByID(ctx, payment.ClassBookingID)
	if err != nil {
		return nil, err
	}
	payment.MemberID = booking.MemberID
	payment.FitnessClassID = booking.FitnessClassID

	if payment.Status == "" {
		payment.Status = domain.PaymentStatusPending
	}
	if payment.Status == domain.PaymentStatusPaid && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			EntityID:  payment.ID,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				MemberID: payment.MemberID,
				Amount:   payment.Amount,
				Status:   payment.Status,
			},
		})
	}
	return payment, nil
}

// UpdateStatus moves a payment along PENDING→PAID/CANCELLED and
// PAID→REFUNDED.
func (s *PaymentService) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !validPaymentTransition(payment.Status, status) {
		return nil, apperrors.NewConflict("invalid payment status transition", map[string]any{
			"from": payment.Status,
			"to":   status,
		})
	}

	payment.Status = status
	if status == domain.PaymentStatusPaid && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Get returns one payment.
func (s *PaymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

// List returns all payments.
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}

// ListByMember returns a member's payments.
func (s *PaymentService) ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	return s.payments.ListByMember(ctx, memberID)
}

// ListByStatus filters payments by status.
func (s *PaymentService) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	return s.payments.ListByStatus(ctx, status)
}

func validPaymentTransition(from, to domain.PaymentStatus) bool {
	switch from {
	case domain.PaymentStatusPending:
		return to == domain.PaymentStatusPaid || to == domain.PaymentStatusCancelled
	case domain.PaymentStatusPaid:
		return to == domain.PaymentStatusRefunded
	default:
		return false
	}
}
