package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted for UserInfo.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Other"
)

// Marital status values accepted for UserInfo.
const (
	MaritalSingle   = "Single"
	MaritalMarried  = "Married"
	MaritalDivorced = "Divorced"
	MaritalWidowed  = "Widowed"
	MaritalOther    = "Other"
)

// UserInfo is the civil profile referenced by at most one User. Deletion is
// a soft flag.
type UserInfo struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName     string    `json:"firstName" gorm:"size:100;not null"`
	LastName      string    `json:"lastName" gorm:"size:100;not null"`
	Gender        string    `json:"gender" gorm:"size:10;not null"`
	DateOfBirth   time.Time `json:"dateOfBirth" gorm:"not null"`
	MaritalStatus string    `json:"maritalStatus" gorm:"size:20;not null"`
	Occupation    string    `json:"occupation" gorm:"size:100;not null"`
	Address       string    `json:"address" gorm:"size:255"`
	PhoneNumber   string    `json:"phoneNumber" gorm:"size:50"`
	Email         string    `json:"email,omitempty" gorm:"size:255;index"`
	Deleted       bool      `json:"-" gorm:"default:false"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Identifications []Identification `json:"identifications,omitempty" gorm:"foreignKey:UserInfoID;constraint:OnDelete:CASCADE"`
}

func (u *UserInfo) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Age derives the person's age in whole years.
func (u *UserInfo) Age(now time.Time) int {
	years := now.Year() - u.DateOfBirth.Year()
	if now.YearDay() < u.DateOfBirth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Identification is one identity document. The (CardType, CardCode) pair is
// globally unique across all profiles.
type Identification struct {
	ID         uuid.UUID `json:"-" gorm:"type:char(36);primaryKey"`
	UserInfoID uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	CardType   string    `json:"cardType" gorm:"size:50;not null;uniqueIndex:idx_identification_pair"`
	CardCode   string    `json:"cardCode" gorm:"size:100;not null;uniqueIndex:idx_identification_pair"`
}

func (i *Identification) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
