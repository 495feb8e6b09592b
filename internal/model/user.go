package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an administrative account. The password hash is never exposed in
// JSON and never selectable through list endpoints.
type User struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Username   string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	FullName   string     `json:"fullName" gorm:"size:100;not null"`
	Password   string     `json:"-" gorm:"size:255;not null"`
	BranchID   *uuid.UUID `json:"branchId,omitempty" gorm:"type:char(36);index"`
	UserInfoID *uuid.UUID `json:"userInfoId,omitempty" gorm:"type:char(36);index"`
	IsActive   bool       `json:"isActive" gorm:"default:true"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Roles    []Role    `json:"roles,omitempty" gorm:"many2many:user_roles"`
	Branch   *Branch   `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
	UserInfo *UserInfo `json:"userInfo,omitempty" gorm:"foreignKey:UserInfoID"`
}

// BeforeCreate assigns the UUID primary key.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasRole reports whether the user carries the exact role name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
