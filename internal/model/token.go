package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessToken is one issued access token. Rows are appended on every login
// and registration; nothing revokes or prunes them, tokens simply outlive
// their usefulness when the signature expires.
type AccessToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);index;not null"`
	Token     string    `json:"token" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *AccessToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// RefreshToken is one issued refresh token, stored under the same append-only
// policy as AccessToken.
type RefreshToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);index;not null"`
	Token     string    `json:"token" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
