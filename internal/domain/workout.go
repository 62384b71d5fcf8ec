package domain

import "time"

// Workout is a catalogued workout session.
type Workout struct {
	ID        int64
	Type      string
	Date      time.Time
	Duration  int
	Calories  int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
