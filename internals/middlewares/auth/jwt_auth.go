package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys yang diisi middleware ini.
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocCenterID = "center_id"
	LocRawToken = "raw_token"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool     // pakai cookie access_token jika tidak ada Bearer
	RequireRoles        []string // kosong = semua role yang valid boleh lewat
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
		}
		role, _ := claims["role"].(string)

		// 3) Role gate (opsional)
		if len(o.RequireRoles) > 0 {
			allowed := false
			for _, r := range o.RequireRoles {
				if strings.EqualFold(r, role) {
					allowed = true
					break
				}
			}
			if !allowed {
				return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
			}
		}

		c.Locals(LocUserID, userID)
		c.Locals(LocRole, role)
		c.Locals(LocRawToken, raw)
		if cid, _ := claims["center_id"].(string); cid != "" {
			if centerID, err := uuid.Parse(cid); err == nil {
				c.Locals(LocCenterID, centerID)
			}
		}
		return c.Next()
	}
}

// GetUserID mengambil user id hasil AuthJWT dari Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocUserID).(uuid.UUID)
	return id, ok
}

// GetCenterID mengambil center id (untuk akun ATC) dari Locals.
func GetCenterID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocCenterID).(uuid.UUID)
	return id, ok
}

// GetRole mengambil role dari Locals.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}
