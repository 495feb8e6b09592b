package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactPerson is the event contact embedded in Event.
type ContactPerson struct {
	Name  string `json:"name" gorm:"size:100"`
	Phone string `json:"phone" gorm:"size:50"`
	Email string `json:"email,omitempty" gorm:"size:255"`
}

// Event is a scheduled happening. Times are HH:mm strings; deletion is a
// soft cancel.
type Event struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	DateFrom    time.Time  `json:"dateFrom" gorm:"not null;index"`
	DateTo      time.Time  `json:"dateTo" gorm:"not null;index"`
	TimeFrom    string     `json:"timeFrom" gorm:"size:5;not null"`
	TimeTo      string     `json:"timeTo" gorm:"size:5;not null"`
	Description string     `json:"description" gorm:"size:1024"`
	Map         string     `json:"map" gorm:"size:512"`
	URLImage    string     `json:"urlImage" gorm:"size:512"`
	IsCanceled  bool       `json:"isCanceled" gorm:"default:false"`
	CreatedByID uuid.UUID  `json:"-" gorm:"type:char(36);not null"`
	UpdatedByID *uuid.UUID `json:"-" gorm:"type:char(36)"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	ContactPerson ContactPerson `json:"contactPerson" gorm:"embedded;embeddedPrefix:contact_"`
	CreatedBy     *User         `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	UpdatedBy     *User         `json:"updatedBy,omitempty" gorm:"foreignKey:UpdatedByID"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
