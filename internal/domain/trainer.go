package domain

import "time"

// Trainer models an instructor who can be assigned to fitness classes.
type Trainer struct {
	ID             int64
	UserID         int64
	Specialization string
	PhoneNumber    string
	Bio            string
	HireDate       time.Time
	HourlyRate     float64
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
