package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey;type:uuid"`
	UserName      string    `gorm:"column:user_name;type:varchar(64);not null;uniqueIndex:uq_users_name"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(128);not null"`         // bcrypt hash
	UserRole      string    `gorm:"column:user_role;type:varchar(16);not null;default:user"` // user | admin
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
