package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/configs"
	"rumahjogja_backend/internals/features/users/auth/dto"
	userModel "rumahjogja_backend/internals/features/users/user/model"
	helper "rumahjogja_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const tokenTTL = 24 * time.Hour

// =============================
// 🔐 Login admin
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err.Error())
	}

	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ? AND user_is_active = TRUE", req.Email).Error
	if err != nil {
		// Email tidak terdaftar dan password salah dibalas pesan yang sama
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] sign token for %s: %v", user.UserEmail, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(tokenTTL),
		HTTPOnly: true,
		Secure:   configs.AppEnv == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return helper.Success(c, dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:    user.UserID.String(),
			Name:  user.UserName,
			Email: user.UserEmail,
			Role:  user.UserRole,
		},
	})
}

// =============================
// 🚪 Logout (hapus cookie)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.Success(c, fiber.Map{"message": "Logout berhasil"})
}

// =============================
// 👤 Profil dari token aktif
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.Unauthorized(c)
	}

	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, dto.UserInfo{
		ID:    user.UserID.String(),
		Name:  user.UserName,
		Email: user.UserEmail,
		Role:  user.UserRole,
	})
}
