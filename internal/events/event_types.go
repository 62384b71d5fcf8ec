package events

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
	EventPaymentRecorded  EventType = "payment_recorded"
	EventContactReceived  EventType = "contact_received"
)

// Actor identifies who triggered an event, when known.
type Actor struct {
	UserID   *int64       `json:"user_id,omitempty"`
	Username string       `json:"username,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	FitnessClassID int64 `json:"fitness_class_id"`
	MemberID       int64 `json:"member_id"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	FitnessClassID int64 `json:"fitness_class_id"`
	MemberID       int64 `json:"member_id"`
	ByAdmin        bool  `json:"by_admin"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	MemberID int64                `json:"member_id"`
	Amount   float64              `json:"amount"`
	Status   domain.PaymentStatus `json:"status"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}
