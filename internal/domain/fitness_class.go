package domain

import "time"

// FitnessClass is a scheduled class members can book into.
type FitnessClass struct {
	ID          int64
	Name        string
	Description string
	TrainerID   *int64
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
	Price       float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
