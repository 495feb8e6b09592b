package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Branch is an office location. Deleting a branch only clears IsActive.
type Branch struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string     `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Address   string     `json:"address" gorm:"size:255"`
	City      string     `json:"city" gorm:"size:100"`
	Phone     string     `json:"phone" gorm:"size:50"`
	ManagerID *uuid.UUID `json:"managerId,omitempty" gorm:"type:char(36);index"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Manager *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}

func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
