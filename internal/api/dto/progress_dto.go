package dto

import "time"

// ProgressRequest payload for creating/updating a progress entry.
type ProgressRequest struct {
	MemberID       int64     `json:"member_id,omitempty"`
	RecordedAt     time.Time `json:"recorded_at,omitempty"`
	WeightKG       float64   `json:"weight_kg"`
	BodyFatPercent *float64  `json:"body_fat_percent,omitempty"`
	MuscleMassKG   *float64  `json:"muscle_mass_kg,omitempty"`
	Notes          string    `json:"notes"`
}

// PaymentRequest payload for recording a payment.
type PaymentRequest struct {
	ClassBookingID int64   `json:"class_booking_id"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	Status         string  `json:"status,omitempty"`
}

// PaymentStatusRequest payload for payment status transitions.
type PaymentStatusRequest struct {
	Status string `json:"status"`
}

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UserUpdateRequest payload for profile updates.
type UserUpdateRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RoleRequest payload for role changes.
type RoleRequest struct {
	Role string `json:"role"`
}
