package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	authController "eduadmin_backend/internals/features/auth/controller"
	middlewares "eduadmin_backend/internals/middlewares"
	authMiddleware "eduadmin_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh", ctl.Refresh)
	auth.Post("/logout", ctl.Logout)

	auth.Get("/me", authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}), ctl.Me)
}
