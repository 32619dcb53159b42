package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "eduadmin_backend/internals/features/certificates/model"
	svc "eduadmin_backend/internals/features/certificates/service"
	appModel "eduadmin_backend/internals/features/exams/applications/model"
	courseModel "eduadmin_backend/internals/features/institute/courses/model"
	studentModel "eduadmin_backend/internals/features/institute/students/model"
	helper "eduadmin_backend/internals/helpers"
)

type RenderController struct {
	DB *gorm.DB
}

func NewRenderController(db *gorm.DB) *RenderController {
	return &RenderController{DB: db}
}

// GET /api/certificates/:applicationID/render?type=&template=&format=json|html
// Hanya aplikasi approved yang bisa dirender.
func (ctl *RenderController) Render(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	appID, err := uuid.Parse(c.Params("applicationID"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid application id")
	}
	var app appModel.ExamApplication
	if err := db.First(&app, "exam_application_id = ?", appID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam application not found")
	}
	if app.ExamApplicationStatus != appModel.AppStatusApproved {
		return helper.Error(c, fiber.StatusBadRequest, "Application is not approved yet")
	}

	tmplType := strings.TrimSpace(c.Query("type"))
	if tmplType == "" {
		tmplType = model.TemplateTypeCertificate
	}
	tmplCode := strings.TrimSpace(c.Query("template"))

	var tmpl model.TemplateConfig
	q := db.Where("template_config_type = ?", tmplType)
	if tmplCode != "" {
		q = q.Where("template_config_code = ?", tmplCode)
	}
	if err := q.Order("template_config_code ASC").First(&tmpl).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Template not found")
	}

	var student studentModel.Student
	if err := db.First(&student, "student_id = ?", app.ExamApplicationStudentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	var course courseModel.Course
	courseName := ""
	if err := db.First(&course, "course_id = ?", student.StudentCourseID).Error; err == nil {
		courseName = course.CourseName
	}

	values := svc.FieldValues(&app, &student, courseName)
	layout, err := svc.BuildLayout(&tmpl, values, &app)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build layout")
	}

	if strings.TrimSpace(c.Query("format")) == "html" {
		html, err := svc.RenderHTML(layout)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to render document")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(html)
	}
	return helper.Success(c, "OK", layout)
}
