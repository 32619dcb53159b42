package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	authModel "eduadmin_backend/internals/features/auth/model"
	paymentController "eduadmin_backend/internals/features/finance/payments/controller"
	centerController "eduadmin_backend/internals/features/institute/centers/controller"
	courseController "eduadmin_backend/internals/features/institute/courses/controller"
	studentController "eduadmin_backend/internals/features/institute/students/controller"
	middlewares "eduadmin_backend/internals/middlewares"
	authMiddleware "eduadmin_backend/internals/middlewares/auth"
)

// InstituteRoutes: center, course, student, dan pembayaran registrasi.
func InstituteRoutes(app *fiber.App, db *gorm.DB) {
	centers := centerController.NewCenterController(db)
	courses := courseController.NewCourseController(db)
	students := studentController.NewStudentController(db)
	payments := paymentController.NewPaymentController(db, configs.MidtransServerKey, configs.MidtransProduction)

	anyRole := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})
	adminOnly := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		RequireRoles:        []string{authModel.RoleAdmin},
	})

	// Katalog kursus untuk halaman publik / wizard registrasi.
	app.Get("/api/courses", courses.List)
	app.Get("/api/courses/:id", courses.GetByID)

	// Registrasi siswa dari wizard publik, dibatasi rate-nya.
	app.Post("/api/students/register", middlewares.RegisterRateLimiter(), students.Register)

	// Pembayaran registrasi: create butuh login, notifikasi dari gateway publik.
	app.Post("/api/payments/registration/:studentId", anyRole, payments.CreateRegistrationPayment)
	app.Post("/api/payments/notification", payments.HandleNotification)
	app.Get("/api/payments/student/:studentId", anyRole, payments.ListByStudent)

	// Siswa: admin penuh, akun center otomatis terbatas lewat centerScope.
	sg := app.Group("/api/students", anyRole)
	sg.Get("/", students.List)
	sg.Get("/:id", students.GetByID)
	sg.Put("/:id", students.Update)

	// Administrasi master data.
	admin := app.Group("/api/a", adminOnly)
	admin.Get("/centers", centers.List)
	admin.Get("/centers/:id", centers.GetByID)
	admin.Post("/centers", centers.Create)
	admin.Put("/centers/:id", centers.Update)
	admin.Delete("/centers/:id", centers.Delete)

	admin.Post("/courses", courses.Create)
	admin.Put("/courses/:id", courses.Update)
	admin.Delete("/courses/:id", courses.Delete)
	admin.Post("/courses/:id/subjects", courses.AddSubject)
	admin.Delete("/courses/:id/subjects/:subjectId", courses.DeleteSubject)
}
