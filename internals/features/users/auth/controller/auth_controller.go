// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bokjisa_backend/internals/configs"
	"bokjisa_backend/internals/features/users/auth/dto"
	"bokjisa_backend/internals/features/users/auth/service"
	userModel "bokjisa_backend/internals/features/users/user/model"
	helper "bokjisa_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

func (ctl *AuthController) findActiveUserByEmail(email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := ctl.DB.Where("user_email = ? AND user_deleted_at IS NULL", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(service.RefreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func userResponse(u *userModel.UserModel) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		UserID: u.UserID.String(),
		Email:  u.UserEmail,
		Name:   u.UserName,
		Role:   u.UserRole,
	}
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := ctl.findActiveUserByEmail(body.Email)
	if err != nil {
		// identical message for unknown email and wrong password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	pair, err := service.IssueTokenPair(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issue failed")
	}
	setRefreshCookie(c, pair.RefreshToken)

	return helper.JsonOK(c, "Login success", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
		"user":         userResponse(user),
	})
}

// POST /auth/login-google
// Verified Google accounts get a user row on first sign-in.
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	var user userModel.UserModel
	err = ctl.DB.Where("user_google_id = ? AND user_deleted_at IS NULL", claimSet.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		googleID := claimSet.Sub
		user = userModel.UserModel{
			UserEmail:    claimSet.Email,
			UserName:     claimSet.Name,
			UserPassword: "-", // never matches a bcrypt compare
			UserRole:     userModel.RoleStaff,
			UserGoogleID: &googleID,
		}
		if err := ctl.DB.Create(&user).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
		}
		log.Printf("🌱 new user via Google sign-in: %s", user.UserEmail)
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	pair, err := service.IssueTokenPair(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issue failed")
	}
	setRefreshCookie(c, pair.RefreshToken)

	return helper.JsonOK(c, "Login success", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
		"user":         userResponse(&user),
	})
}

// POST /auth/refresh-token
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := c.Cookies("refresh_token")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}
	userID, err := service.ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_id = ? AND user_deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	pair, err := service.IssueTokenPair(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issue failed")
	}
	setRefreshCookie(c, pair.RefreshToken)

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
	})
}

// POST /auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /auth/me (behind AuthJWT)
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var user userModel.UserModel
	if err := ctl.DB.Where("user_id = ? AND user_deleted_at IS NULL", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	return helper.JsonOK(c, "me", userResponse(&user))
}

// POST /auth/register (behind AuthJWT, admin role)
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	claims, err := helper.ClaimsFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role, _ := claims["role"].(string); role != userModel.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Admin role required")
	}

	var body dto.RegisterDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserEmail:    body.Email,
		UserPassword: string(hashed),
		UserName:     body.Name,
		UserRole:     body.Role,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}
	return helper.JsonCreated(c, "User created", userResponse(&user))
}

// POST /auth/change-password (behind AuthJWT)
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.ChangePasswordDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_id = ? AND user_deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"user_password":   string(hashed),
			"user_updated_at": gorm.Expr("now()"),
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}
	return helper.JsonUpdated(c, "Password updated", nil)
}
