package dto

import (
	"time"

	"kuesioner_backend/internals/features/users/model"
)

// =============================
// 📤 Response DTO
// =============================
type UserDTO struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// =============================
// 📥 Request DTO
// =============================
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// =============================
// 🔁 Converters
// =============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserRole:  m.UserRole,
		CreatedAt: m.UserCreatedAt,
	}
}
