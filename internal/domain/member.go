package domain

import "time"

// Gender as recorded on the membership form.
type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderOther  Gender = "OTHER"
)

// MembershipType enumerates the plans the gym sells.
type MembershipType string

const (
	MembershipBasic    MembershipType = "BASIC"
	MembershipStandard MembershipType = "STANDARD"
	MembershipPremium  MembershipType = "PREMIUM"
)

// Member models a gym member profile linked to a user account.
type Member struct {
	ID                int64
	UserID            int64
	DateOfBirth       time.Time
	Gender            Gender
	PhoneNumber       string
	Address           string
	MembershipStart   time.Time
	MembershipEnd     *time.Time
	MembershipType    MembershipType
	Active            bool
	MedicalConditions string
	EmergencyContact  string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
