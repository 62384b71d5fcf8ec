package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// BookingService enforces the booking business rules: class capacity, no
// double booking, and ownership on cancellation. The route policy only
// checks that the caller is authenticated; ownership is re-verified here.
type BookingService struct {
	bookings   repository.BookingRepository
	classes    repository.ClassRepository
	members    repository.MemberRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, classes repository.ClassRepository, members repository.MemberRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, classes: classes, members: members, dispatcher: dispatcher}
}

// Book creates an active booking for the caller's member profile.
func (s *BookingService) Book(ctx context.Context, actor *auth.Principal, classID int64) (*domain.ClassBooking, error) {
	member, err := s.memberForActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("fitness class", map[string]any{"class_id": classID})
		}
		return nil, err
	}
	if !class.Active {
		return nil, apperrors.NewValidationError("class is not open for booking", nil)
	}
	if time.Now().After(class.StartTime) {
		return nil, apperrors.NewValidationError("class has already started", nil)
	}

	exists, err := s.bookings.ActiveBookingExists(ctx, member.ID, classID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("member already booked into this class", nil)
	}

	count, err := s.bookings.CountActiveForClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	if count >= class.Capacity {
		return nil, apperrors.NewConflict("class is full", map[string]any{"capacity": class.Capacity})
	}

	booking := &domain.ClassBooking{
		FitnessClassID: classID,
		MemberID:       member.ID,
		BookingDate:    time.Now(),
		Status:         domain.BookingStatusActive,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, events.EventBookingCreated, booking.ID, events.BookingCreatedPayload{
		FitnessClassID: classID,
		MemberID:       member.ID,
	})
	return booking, nil
}

// Cancel cancels a booking. Members may only cancel their own; admins may
// cancel any.
func (s *BookingService) Cancel(ctx context.Context, actor *auth.Principal, bookingID int64) (*domain.ClassBooking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}

	isAdmin := actor.HasRole(domain.RoleAdmin)
	if !isAdmin {
		member, err := s.memberForActor(ctx, actor)
		if err != nil {
			return nil, err
		}
		if booking.MemberID != member.ID {
			return nil, apperrors.NewForbidden("booking belongs to another member")
		}
	}

	if booking.Status != domain.BookingStatusActive {
		return nil, apperrors.NewConflict("booking is not active", map[string]any{"status": booking.Status})
	}

	now := time.Now()
	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = &now
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, events.EventBookingCancelled, booking.ID, events.BookingCancelledPayload{
		FitnessClassID: booking.FitnessClassID,
		MemberID:       booking.MemberID,
		ByAdmin:        isAdmin,
	})
	return booking, nil
}

// UpdateStatus sets an explicit status. Admin-only by route policy.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.ClassBooking, error) {
	switch status {
	case domain.BookingStatusActive, domain.BookingStatusCancelled, domain.BookingStatusCompleted:
	default:
		return nil, apperrors.NewValidationError("unknown booking status", map[string]any{"status": status})
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if status == domain.BookingStatusCancelled && booking.CancelledAt == nil {
		now := time.Now()
		booking.CancelledAt = &now
	}
	booking.Status = status
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete removes the booking row entirely.
func (s *BookingService) Delete(ctx context.Context, bookingID int64) error {
	return s.bookings.Delete(ctx, bookingID)
}

// Get returns a single booking.
func (s *BookingService) Get(ctx context.Context, bookingID int64) (*domain.ClassBooking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

// ListByMember returns a member's bookings.
func (s *BookingService) ListByMember(ctx context.Context, memberID int64) ([]domain.ClassBooking, error) {
	return s.bookings.ListByMember(ctx, memberID)
}

// ListByClass returns all bookings for a class.
func (s *BookingService) ListByClass(ctx context.Context, classID int64) ([]domain.ClassBooking, error) {
	return s.bookings.ListByClass(ctx, classID)
}

// ListByStatus returns bookings filtered by status.
func (s *BookingService) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.ClassBooking, error) {
	return s.bookings.ListByStatus(ctx, status)
}

func (s *BookingService) memberForActor(ctx context.Context, actor *auth.Principal) (*domain.Member, error) {
	member, err := s.members.GetByUserID(ctx, actor.User.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewForbidden("no member profile for this account")
		}
		return nil, err
	}
	return member, nil
}

func (s *BookingService) publish(ctx context.Context, actor *auth.Principal, eventType events.EventType, entityID int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if actor != nil {
		role := actor.User.Role
		event.Actor = events.Actor{UserID: &actor.User.ID, Username: actor.User.Username, Role: &role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}
