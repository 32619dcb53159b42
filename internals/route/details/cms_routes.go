package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	authModel "eduadmin_backend/internals/features/auth/model"
	cmsController "eduadmin_backend/internals/features/cms/controller"
	authMiddleware "eduadmin_backend/internals/middlewares/auth"
)

// CmsRoutes: konten publik read-only, mutasi untuk admin.
func CmsRoutes(app *fiber.App, db *gorm.DB) {
	contents := cmsController.NewContentController(db)
	site := cmsController.NewSiteController(db)

	adminOnly := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		RequireRoles:        []string{authModel.RoleAdmin},
	})

	app.Get("/api/cms/contents/:section", contents.ListBySection)
	app.Get("/api/cms/gallery", site.ListGallery)
	app.Get("/api/cms/legal", site.ListLegalDocuments)
	app.Get("/api/cms/legal/:slug", site.GetLegalDocument)
	app.Get("/api/cms/team", site.ListTeamMembers)

	admin := app.Group("/api/a/cms", adminOnly)
	admin.Put("/contents", contents.Upsert)
	admin.Delete("/contents/:section/:key", contents.Delete)

	admin.Post("/gallery", site.CreateGalleryItem)
	admin.Put("/gallery/:id", site.UpdateGalleryItem)
	admin.Delete("/gallery/:id", site.DeleteGalleryItem)

	admin.Post("/legal", site.CreateLegalDocument)
	admin.Put("/legal/:id", site.UpdateLegalDocument)
	admin.Delete("/legal/:id", site.DeleteLegalDocument)

	admin.Post("/team", site.CreateTeamMember)
	admin.Put("/team/:id", site.UpdateTeamMember)
	admin.Delete("/team/:id", site.DeleteTeamMember)
}
