package controller

import (
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	dto "eduadmin_backend/internals/features/auth/dto"
	model "eduadmin_backend/internals/features/auth/model"
	svc "eduadmin_backend/internals/features/auth/service"
	helper "eduadmin_backend/internals/helpers"
	authMw "eduadmin_backend/internals/middlewares/auth"
)

/* ========================================================
   Controller
======================================================== */

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.AdminUser
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "admin_user_email = ?", req.Email).Error; err != nil {
		// pesan sama untuk email tak dikenal & password salah
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.AdminUserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.AdminUserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is disabled. Contact the administrator.")
	}

	return ctl.issueTokens(c, &user)
}

// POST /api/auth/google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	// Hanya akun staf yang sudah ada yang boleh masuk via Google;
	// tidak ada auto-provisioning untuk panel admin.
	var user model.AdminUser
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "admin_user_email = ?", claimSet.Email).Error; err != nil {
		return helper.Error(c, fiber.StatusForbidden, "No staff account for this Google email")
	}
	if !user.AdminUserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is disabled. Contact the administrator.")
	}

	return ctl.issueTokens(c, &user)
}

// POST /api/auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req)
	raw := req.RefreshToken
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "refresh_token is required")
	}

	rec, newRaw, err := svc.RotateRefreshToken(ctl.DB.WithContext(c.UserContext()), raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.AdminUser
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "admin_user_id = ?", rec.RefreshTokenUserID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	return ctl.respondTokens(c, &user, newRaw)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if userID, ok := authMw.GetUserID(c); ok {
		_ = svc.RevokeUserTokens(ctl.DB.WithContext(c.UserContext()), userID)
	}
	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logged out", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := authMw.GetUserID(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user model.AdminUser
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "admin_user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", dto.UserBrief{
		ID:       user.AdminUserID,
		Name:     user.AdminUserName,
		Email:    user.AdminUserEmail,
		Role:     user.AdminUserRole,
		CenterID: user.AdminUserCenterID,
	})
}

/* ========================================================
   Helpers
======================================================== */

func (ctl *AuthController) issueTokens(c *fiber.Ctx, user *model.AdminUser) error {
	refresh, err := svc.IssueRefreshToken(ctl.DB.WithContext(c.UserContext()), user.AdminUserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}
	return ctl.respondTokens(c, user, refresh)
}

func (ctl *AuthController) respondTokens(c *fiber.Ctx, user *model.AdminUser, refresh string) error {
	access, exp, err := svc.GenerateAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  exp,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	return helper.Success(c, "Login success", dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    exp,
		User: dto.UserBrief{
			ID:       user.AdminUserID,
			Name:     user.AdminUserName,
			Email:    user.AdminUserEmail,
			Role:     user.AdminUserRole,
			CenterID: user.AdminUserCenterID,
		},
	})
}
