package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Roles lists every role an admin-panel user can hold.
var Roles = []string{RoleAdmin, RoleEditor, RoleViewer}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an admin-panel account. Visitors never have one.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	DisplayName string     `gorm:"size:255" json:"display_name"`
	Role        string     `gorm:"size:20;not null;default:'viewer'" json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
