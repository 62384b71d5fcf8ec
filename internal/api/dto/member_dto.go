package dto

import "time"

// MemberRequest payload for creating/updating a member profile.
type MemberRequest struct {
	UserID            int64      `json:"user_id"`
	DateOfBirth       time.Time  `json:"date_of_birth"`
	Gender            string     `json:"gender"`
	PhoneNumber       string     `json:"phone_number"`
	Address           string     `json:"address"`
	MembershipStart   time.Time  `json:"membership_start"`
	MembershipEnd     *time.Time `json:"membership_end,omitempty"`
	MembershipType    string     `json:"membership_type"`
	Active            *bool      `json:"active,omitempty"`
	MedicalConditions string     `json:"medical_conditions"`
	EmergencyContact  string     `json:"emergency_contact"`
}

// TrainerRequest payload for creating/updating a trainer profile.
type TrainerRequest struct {
	UserID         int64     `json:"user_id"`
	Specialization string    `json:"specialization"`
	PhoneNumber    string    `json:"phone_number"`
	Bio            string    `json:"bio"`
	HireDate       time.Time `json:"hire_date"`
	HourlyRate     float64   `json:"hourly_rate"`
	Active         *bool     `json:"active,omitempty"`
}
