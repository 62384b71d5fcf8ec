package domain

import "time"

// PaymentStatus tracks a payment through its lifecycle.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// Payment records money received for a class booking.
type Payment struct {
	ID             int64
	MemberID       int64
	FitnessClassID int64
	ClassBookingID int64
	Amount         float64
	Status         PaymentStatus
	Method         PaymentMethod
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
