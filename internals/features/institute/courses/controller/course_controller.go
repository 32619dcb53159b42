package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/institute/courses/dto"
	model "eduadmin_backend/internals/features/institute/courses/model"
	helper "eduadmin_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validator: validator.New()}
}

func subjectOrder(db *gorm.DB) *gorm.DB {
	return db.Order("subjects.subject_sort_order ASC")
}

// GET /api/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Course{}).
		Where("deleted_at IS NULL").
		Preload("Subjects", subjectOrder)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("course_name ILIKE ?", "%"+search+"%")
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("course_is_active = ?", strings.EqualFold(active, "true"))
	}

	var courses []model.Course
	if err := q.Order("course_name ASC").Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.Success(c, "OK", courses)
}

// GET /api/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course model.Course
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Subjects", subjectOrder).
		First(&course, "course_id = ? AND deleted_at IS NULL", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "OK", course)
}

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", m)
}

// PUT /api/a/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course model.Course
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ? AND deleted_at IS NULL", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&course)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.Success(c, "Course updated", course)
}

// DELETE /api/a/courses/:id (soft delete; siswa lama tetap merujuk kursusnya)
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Model(&model.Course{}).
		Where("course_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "Course deleted", nil)
}

// POST /api/a/courses/:id/subjects
func (ctl *CourseController) AddSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course model.Course
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ? AND deleted_at IS NULL", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	var req dto.AddSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.WithContext(c.UserContext()).Model(&model.Subject{}).
		Where("subject_course_id = ?", id).Count(&count)

	m := req.ToModel(id, int(count))
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to add subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject added", m)
}

// DELETE /api/a/courses/:id/subjects/:subjectId
func (ctl *CourseController) DeleteSubject(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_course_id = ?", subjectID, courseID).
		Delete(&model.Subject{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.Success(c, "Subject deleted", nil)
}
