package dto

import "time"

// ClassRequest payload for creating/updating a fitness class.
type ClassRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TrainerID   *int64    `json:"trainer_id,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	Active      *bool     `json:"active,omitempty"`
}

// BookingRequest payload for booking into a class.
type BookingRequest struct {
	FitnessClassID int64 `json:"fitness_class_id"`
}

// BookingStatusRequest payload for admin status changes.
type BookingStatusRequest struct {
	Status string `json:"status"`
}

// WorkoutRequest payload for creating/updating a workout.
type WorkoutRequest struct {
	Type     string    `json:"type"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
	Calories int       `json:"calories"`
	Notes    string    `json:"notes"`
}
