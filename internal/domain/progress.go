package domain

import "time"

// FitnessProgress is a single measurement entry for a member.
type FitnessProgress struct {
	ID             int64
	MemberID       int64
	RecordedAt     time.Time
	WeightKG       float64
	BodyFatPercent *float64
	MuscleMassKG   *float64
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
