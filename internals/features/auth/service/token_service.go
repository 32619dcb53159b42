package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	authModel "eduadmin_backend/internals/features/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// GenerateAccessToken buat JWT HMAC dengan klaim sub/role/center_id.
func GenerateAccessToken(u *authModel.AdminUser) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is not configured")
	}
	exp := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"sub":  u.AdminUserID.String(),
		"role": u.AdminUserRole,
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	}
	if u.AdminUserCenterID != nil {
		claims["center_id"] = u.AdminUserCenterID.String()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	return signed, exp, err
}

// IssueRefreshToken simpan hash refresh token di DB, kembalikan raw token.
// Raw token tidak pernah disimpan; verifikasi pakai HMAC hash.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	raw := uuid.New().String() + uuid.New().String()
	rec := authModel.RefreshToken{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      HashRefreshToken(raw),
		RefreshTokenExpiresAt: time.Now().Add(refreshTTLDefault),
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// RotateRefreshToken verifikasi raw token, revoke yang lama, terbitkan baru.
func RotateRefreshToken(db *gorm.DB, raw string) (*authModel.RefreshToken, string, error) {
	var rec authModel.RefreshToken
	if err := db.First(&rec, "refresh_token_hash = ?", HashRefreshToken(raw)).Error; err != nil {
		return nil, "", errors.New("refresh token not found")
	}
	if !rec.Usable(time.Now()) {
		return nil, "", errors.New("refresh token expired or revoked")
	}
	now := time.Now()
	if err := db.Model(&rec).Update("refresh_token_revoked_at", &now).Error; err != nil {
		return nil, "", err
	}
	newRaw, err := IssueRefreshToken(db, rec.RefreshTokenUserID)
	if err != nil {
		return nil, "", err
	}
	return &rec, newRaw, nil
}

// RevokeUserTokens revoke semua refresh token milik user (logout all).
func RevokeUserTokens(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now()
	return db.Model(&authModel.RefreshToken{}).
		Where("refresh_token_user_id = ? AND refresh_token_revoked_at IS NULL", userID).
		Update("refresh_token_revoked_at", &now).Error
}

func HashRefreshToken(raw string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
