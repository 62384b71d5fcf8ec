package dto

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// MemberResponse is the wire shape of a member profile.
type MemberResponse struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	DateOfBirth       time.Time  `json:"date_of_birth"`
	Gender            string     `json:"gender"`
	PhoneNumber       string     `json:"phone_number"`
	Address           string     `json:"address"`
	MembershipStart   time.Time  `json:"membership_start"`
	MembershipEnd     *time.Time `json:"membership_end,omitempty"`
	MembershipType    string     `json:"membership_type"`
	Active            bool       `json:"active"`
	MedicalConditions string     `json:"medical_conditions,omitempty"`
	EmergencyContact  string     `json:"emergency_contact,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TrainerResponse is the wire shape of a trainer profile.
type TrainerResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Specialization string    `json:"specialization"`
	PhoneNumber    string    `json:"phone_number"`
	Bio            string    `json:"bio,omitempty"`
	HireDate       time.Time `json:"hire_date"`
	HourlyRate     float64   `json:"hourly_rate"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClassResponse is the wire shape of a fitness class.
type ClassResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TrainerID   *int64    `json:"trainer_id,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingResponse is the wire shape of a class booking.
type BookingResponse struct {
	ID             int64      `json:"id"`
	FitnessClassID int64      `json:"fitness_class_id"`
	MemberID       int64      `json:"member_id"`
	BookingDate    time.Time  `json:"booking_date"`
	Status         string     `json:"status"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ProgressResponse is the wire shape of a progress entry.
type ProgressResponse struct {
	ID             int64     `json:"id"`
	MemberID       int64     `json:"member_id"`
	RecordedAt     time.Time `json:"recorded_at"`
	WeightKG       float64   `json:"weight_kg"`
	BodyFatPercent *float64  `json:"body_fat_percent,omitempty"`
	MuscleMassKG   *float64  `json:"muscle_mass_kg,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaymentResponse is the wire shape of a payment.
type PaymentResponse struct {
	ID             int64      `json:"id"`
	MemberID       int64      `json:"member_id"`
	FitnessClassID int64      `json:"fitness_class_id"`
	ClassBookingID int64      `json:"class_booking_id"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	Method         string     `json:"method"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ContactResponse is the wire shape of a contact message.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkoutResponse is the wire shape of a workout.
type WorkoutResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Duration  int       `json:"duration"`
	Calories  int       `json:"calories"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMemberResponse converts a domain member.
func NewMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:                m.ID,
		UserID:            m.UserID,
		DateOfBirth:       m.DateOfBirth,
		Gender:            string(m.Gender),
		PhoneNumber:       m.PhoneNumber,
		Address:           m.Address,
		MembershipStart:   m.MembershipStart,
		MembershipEnd:     m.MembershipEnd,
		MembershipType:    string(m.MembershipType),
		Active:            m.Active,
		MedicalConditions: m.MedicalConditions,
		EmergencyContact:  m.EmergencyContact,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// NewMemberResponses converts a slice of domain members.
func NewMemberResponses(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, NewMemberResponse(&members[i]))
	}
	return out
}

// NewTrainerResponse converts a domain trainer.
func NewTrainerResponse(t *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		Specialization: t.Specialization,
		PhoneNumber:    t.PhoneNumber,
		Bio:            t.Bio,
		HireDate:       t.HireDate,
		HourlyRate:     t.HourlyRate,
		Active:         t.Active,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// NewTrainerResponses converts a slice of domain trainers.
func NewTrainerResponses(trainers []domain.Trainer) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(trainers))
	for i := range trainers {
		out = append(out, NewTrainerResponse(&trainers[i]))
	}
	return out
}

// NewClassResponse converts a domain fitness class.
func NewClassResponse(c *domain.FitnessClass) ClassResponse {
	return ClassResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		TrainerID:   c.TrainerID,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Capacity:    c.Capacity,
		Price:       c.Price,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewClassResponses converts a slice of domain classes.
func NewClassResponses(classes []domain.FitnessClass) []ClassResponse {
	out := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, NewClassResponse(&classes[i]))
	}
	return out
}

// NewBookingResponse converts a domain booking.
func NewBookingResponse(b *domain.ClassBooking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		FitnessClassID: b.FitnessClassID,
		MemberID:       b.MemberID,
		BookingDate:    b.BookingDate,
		Status:         string(b.Status),
		CancelledAt:    b.CancelledAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// NewBookingResponses converts a slice of domain bookings.
func NewBookingResponses(bookings []domain.ClassBooking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}

// NewProgressResponse converts a domain progress entry.
func NewProgressResponse(p *domain.FitnessProgress) ProgressResponse {
	return ProgressResponse{
		ID:             p.ID,
		MemberID:       p.MemberID,
		RecordedAt:     p.RecordedAt,
		WeightKG:       p.WeightKG,
		BodyFatPercent: p.BodyFatPercent,
		MuscleMassKG:   p.MuscleMassKG,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewProgressResponses converts a slice of domain progress entries.
func NewProgressResponses(entries []domain.FitnessProgress) []ProgressResponse {
	out := make([]ProgressResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewProgressResponse(&entries[i]))
	}
	return out
}

// NewPaymentResponse converts a domain payment.
func NewPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		MemberID:       p.MemberID,
		FitnessClassID: p.FitnessClassID,
		ClassBookingID: p.ClassBookingID,
		Amount:         p.Amount,
		Status:         string(p.Status),
		Method:         string(p.Method),
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewPaymentResponses converts a slice of domain payments.
func NewPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}

// NewContactResponse converts a domain contact message.
func NewContactResponse(m *domain.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

// NewContactResponses converts a slice of domain contact messages.
func NewContactResponses(messages []domain.ContactMessage) []ContactResponse {
	out := make([]ContactResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewContactResponse(&messages[i]))
	}
	return out
}

// NewWorkoutResponse converts a domain workout.
func NewWorkoutResponse(w *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:        w.ID,
		Type:      w.Type,
		Date:      w.Date,
		Duration:  w.Duration,
		Calories:  w.Calories,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// NewWorkoutResponses converts a slice of domain workouts.
func NewWorkoutResponses(workouts []domain.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, NewWorkoutResponse(&workouts[i]))
	}
	return out
}
