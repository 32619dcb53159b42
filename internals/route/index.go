package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "eduadmin_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	routeDetails.AuthRoutes(app, db)
	routeDetails.InstituteRoutes(app, db)
	routeDetails.ExamRoutes(app, db)
	routeDetails.CmsRoutes(app, db)
	routeDetails.UtilsRoutes(app, db)
}
