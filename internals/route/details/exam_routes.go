package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	authModel "eduadmin_backend/internals/features/auth/model"
	certController "eduadmin_backend/internals/features/certificates/controller"
	appController "eduadmin_backend/internals/features/exams/applications/controller"
	paperController "eduadmin_backend/internals/features/exams/papers/controller"
	authMiddleware "eduadmin_backend/internals/middlewares/auth"
)

// ExamRoutes: paper + soal, aplikasi ujian, template & render sertifikat.
func ExamRoutes(app *fiber.App, db *gorm.DB) {
	papers := paperController.NewPaperController(db)
	questions := paperController.NewQuestionController(db)
	applications := appController.NewExamApplicationController(db)
	templates := certController.NewTemplateController(db)
	render := certController.NewRenderController(db)

	anyRole := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})
	adminOnly := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		RequireRoles:        []string{authModel.RoleAdmin},
	})

	// Paper bisa dibaca akun mana pun yang login (jadwal, detail, soal).
	pg := app.Group("/api/exam-papers", anyRole)
	pg.Get("/", papers.List)
	pg.Get("/:id", papers.GetByID)
	pg.Get("/:id/questions", questions.ListByPaper)
	pg.Get("/:id/questions/sample", questions.DownloadSample)

	// Aplikasi ujian: create/list/verify/approve butuh login.
	ag := app.Group("/api/exam-applications", anyRole)
	ag.Post("/", applications.Create)
	ag.Get("/", applications.List)
	ag.Head("/", applications.Head)
	ag.Post("/:id/verify", applications.Verify)
	ag.Post("/:id/approve", adminOnly, applications.Approve)
	ag.Patch("/:id/status", applications.UpdateStatus)

	// Render sertifikat/marksheet dari aplikasi approved.
	app.Get("/api/certificates/:applicationID/render", anyRole, render.Render)
	app.Get("/api/templates", anyRole, templates.List)
	app.Get("/api/templates/:code", anyRole, templates.Get)

	// Administrasi paper/soal/template.
	admin := app.Group("/api/a", adminOnly)
	admin.Post("/exam-papers", papers.Create)
	admin.Put("/exam-papers/:id", papers.Update)
	admin.Post("/exam-papers/:id/activate", papers.Activate)
	admin.Post("/exam-papers/:id/deactivate", papers.Deactivate)
	admin.Delete("/exam-papers/:id", papers.Delete)
	admin.Post("/exam-papers/:id/questions", questions.Create)
	admin.Post("/exam-papers/:id/questions/import", questions.Import)
	admin.Delete("/exam-papers/:id/questions/:questionId", questions.Delete)

	admin.Put("/templates", templates.Upsert)
	admin.Delete("/templates/:id", templates.Delete)
}
