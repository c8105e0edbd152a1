// models/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel: one administrator account. Every user may sign in; role only
// gates the account-management endpoints.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserName     string    `gorm:"column:user_name;type:varchar(80);not null" json:"user_name"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:staff" json:"user_role"`
	UserGoogleID *string   `gorm:"column:user_google_id;type:varchar(64);index" json:"-"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time  `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt *time.Time `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)
