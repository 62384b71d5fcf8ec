package domain

import "time"

// BookingStatus tracks the lifecycle of a class booking.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// ClassBooking links a member to a fitness class occurrence.
type ClassBooking struct {
	ID             int64
	FitnessClassID int64
	MemberID       int64
	BookingDate    time.Time
	Status         BookingStatus
	CancelledAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
