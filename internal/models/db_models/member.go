package db_models

type MembershipType string

const (
	MembershipMember    MembershipType = "Member"
	MembershipNotMember MembershipType = "Not Member"
)

// Member is a person enrolled for fingerprint check-in.
// CountryCode+PhoneNumber identify a member globally, so the pair
// carries a composite unique index.
type Member struct {
	BaseModel
	FirstName      string         `gorm:"size:50;not null"`
	LastName       string         `gorm:"size:150;not null"`
	Email          string         `gorm:"size:150;not null"`
	CountryCode    string         `gorm:"size:8;not null;uniqueIndex:idx_members_phone"`
	PhoneNumber    string         `gorm:"size:16;not null;uniqueIndex:idx_members_phone"`
	Gender         string         `gorm:"size:10;not null"`
	MembershipType MembershipType `gorm:"size:50;not null"`

	// LastCheckIn and NextPayment are unix seconds, like the BaseModel timestamps.
	LastCheckIn   int64
	RemainingDays int `gorm:"not null;default:0"`
	NextPayment   int64
}
