package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/institute/students/dto"
	model "eduadmin_backend/internals/features/institute/students/model"
	helper "eduadmin_backend/internals/helpers"
	authMw "eduadmin_backend/internals/middlewares/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

// centerScope membatasi akun ATC hanya ke siswa miliknya.
func centerScope(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if centerID, ok := authMw.GetCenterID(c); ok && authMw.GetRole(c) == "center" {
		return q.Where("student_center_id = ?", centerID)
	}
	return q
}

// POST /api/students/register — submit tunggal dari wizard 3 langkah.
func (ctl *StudentController) Register(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	db := ctl.DB.WithContext(c.UserContext())
	err := db.Create(m).Error
	if helper.IsDuplicateKey(err) && isIDNumberCollision(db, err, m.StudentEmail) {
		// Nomor registrasi acak bisa tabrakan; coba sekali dengan nomor baru.
		m.StudentIDNumber = dto.GenerateStudentIDNumber()
		err = db.Create(m).Error
	}
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Student already registered with this email")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student registered", m)
}

// isIDNumberCollision membedakan duplikat email (input user, 400) dari
// tabrakan nomor registrasi acak (bisa diulang). Translate GORM membuang
// detail constraint, jadi tanpa nama constraint keberadaan email yang dicek.
func isIDNumberCollision(db *gorm.DB, err error, email string) bool {
	if cons := helper.DuplicateConstraint(err); cons != "" {
		return strings.Contains(cons, "student_id_number")
	}
	var n int64
	if db.Model(&model.Student{}).Where("LOWER(student_email) = LOWER(?)", email).Count(&n).Error != nil {
		return false
	}
	return n == 0
}

// GET /api/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParsePageWith(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Student{})
	q = centerScope(c, q)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR student_email ILIKE ? OR student_id_number ILIKE ?", like, like, like)
	}
	if courseID := strings.TrimSpace(c.Query("courseId")); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid courseId")
		}
		q = q.Where("student_course_id = ?", id)
	}
	if centerID := strings.TrimSpace(c.Query("centerId")); centerID != "" {
		id, err := uuid.Parse(centerID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid centerId")
		}
		q = q.Where("student_center_id = ?", id)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("student_is_active = ?", strings.EqualFold(active, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.Student
	order := p.OrderClause(map[string]string{
		"created_at": "created_at",
		"name":       "student_name",
	})
	if err := q.Order(order).Limit(p.PerPage).Offset(p.Offset()).Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   students,
		"pagination": helper.NewPageMeta(p, total),
	})
}

// GET /api/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	q := centerScope(c, ctl.DB.WithContext(c.UserContext()))
	var student model.Student
	if err := q.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "OK", student)
}

// PUT /api/students/:id — admin edit; tidak pernah hard-delete.
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	q := centerScope(c, ctl.DB.WithContext(c.UserContext()))
	var student model.Student
	if err := q.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&student)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", student)
}
