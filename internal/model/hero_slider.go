package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroSlider is one landing-page slide with a single image attachment.
// Deletion is hard and removes the stored object first.
type HeroSlider struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Subtitle    string     `json:"subtitle" gorm:"size:255"`
	Link        string     `json:"link" gorm:"size:512"`
	Sort        int        `json:"sort" gorm:"default:1"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`
	CreatedByID uuid.UUID  `json:"-" gorm:"type:char(36);not null"`
	UpdatedByID *uuid.UUID `json:"-" gorm:"type:char(36)"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Image     ImageMeta `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	CreatedBy *User     `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
}

func (h *HeroSlider) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
