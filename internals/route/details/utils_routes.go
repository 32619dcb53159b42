package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	uploadController "eduadmin_backend/internals/features/uploads/controller"
	"eduadmin_backend/internals/helpers/storage"
	authMiddleware "eduadmin_backend/internals/middlewares/auth"
)

// UtilsRoutes: upload multipart + serving file lokal.
func UtilsRoutes(app *fiber.App, db *gorm.DB) {
	uploads := uploadController.NewUploadController(db, storage.NewBlobServiceFromEnv())

	anyRole := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	app.Post("/api/upload", anyRole, uploads.Upload)
	app.Post("/api/upload-gallery", anyRole, uploads.UploadGallery)
	app.Post("/api/local-upload", anyRole, uploads.LocalUpload)

	// Backend lokal menulis ke UploadDir; OSS tidak butuh ini.
	app.Static("/uploads", configs.UploadDir)
}
