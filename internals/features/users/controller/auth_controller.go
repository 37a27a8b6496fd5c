package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kuesioner_backend/internals/configs"
	"kuesioner_backend/internals/features/users/dto"
	"kuesioner_backend/internals/features/users/model"
	helper "kuesioner_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// ➕ Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserPassword: string(hash),
		UserRole:     "user",
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Username already taken")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, dto.ToUserDTO(user))
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_name = ?", req.UserName).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := issueToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserDTO(user),
	})
}

func issueToken(user model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"role":    user.UserRole,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
