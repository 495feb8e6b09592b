package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content is a public content page made of ordered detail blocks. Deletion
// is a soft flag, but the backing attachments are removed from the object
// store first.
type Content struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Description string     `json:"description" gorm:"size:1024"`
	Sort        int        `json:"sort" gorm:"default:1"`
	Deleted     bool       `json:"-" gorm:"default:false"`
	CreatedByID uuid.UUID  `json:"-" gorm:"type:char(36);not null"`
	UpdatedByID *uuid.UUID `json:"-" gorm:"type:char(36)"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Details   []ContentDetail `json:"details" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
	CreatedBy *User           `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	UpdatedBy *User           `json:"updatedBy,omitempty" gorm:"foreignKey:UpdatedByID"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ContentDetail is one block: a statement, an optional string list and any
// number of image attachments.
type ContentDetail struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ContentID uuid.UUID  `json:"-" gorm:"type:char(36);index;not null"`
	Statement string     `json:"statement" gorm:"size:1024;not null"`
	List      StringList `json:"list" gorm:"type:json"`

	Images []ContentImage `json:"images" gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE"`
}

func (d *ContentDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// ContentImage is one attachment belonging to a detail block.
type ContentImage struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	DetailID uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	ImageMeta
}

func (i *ContentImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
