package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/exams/papers/dto"
	model "eduadmin_backend/internals/features/exams/papers/model"
	svc "eduadmin_backend/internals/features/exams/papers/service"
	helper "eduadmin_backend/internals/helpers"
)

type PaperController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaperController(db *gorm.DB) *PaperController {
	return &PaperController{DB: db, Validator: validator.New()}
}

// FindPaperByAnyID resolve paper via database id ATAU business code (mis. "P1").
func FindPaperByAnyID(db *gorm.DB, idOrCode string) (*model.ExamPaper, error) {
	var paper model.ExamPaper
	if id, err := uuid.Parse(idOrCode); err == nil {
		if err := db.First(&paper, "exam_paper_id = ? AND deleted_at IS NULL", id).Error; err == nil {
			return &paper, nil
		} else if !helper.IsNotFound(err) {
			return nil, err
		}
	}
	if err := db.First(&paper, "exam_paper_code = ? AND deleted_at IS NULL", idOrCode).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

// GET /api/exam-papers
func (ctl *PaperController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ExamPaper{}).Where("deleted_at IS NULL")
	if mode := strings.TrimSpace(c.Query("mode")); mode != "" {
		q = q.Where("exam_paper_mode = ?", mode)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("exam_paper_status = ?", status)
	}
	if courseID := strings.TrimSpace(c.Query("courseId")); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid courseId")
		}
		q = q.Where("exam_paper_course_id = ?", id)
	}

	var papers []model.ExamPaper
	if err := q.Order("created_at DESC").Find(&papers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch exam papers")
	}
	return helper.Success(c, "OK", papers)
}

// GET /api/exam-papers/:id
// Halaman detail juga jadi titik recheck opportunistik untuk auto-aktivasi.
func (ctl *PaperController) GetByID(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}

	if changed, err := svc.RecheckActivation(db, paper); err != nil {
		log.Printf("[WARN] activation recheck failed for paper %s: %v", paper.ExamPaperID, err)
	} else if changed {
		log.Printf("[INFO] paper %s auto-activated", paper.ExamPaperCode)
	}

	counts, err := svc.QuestionCountsBySubject(db, paper.ExamPaperID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count questions")
	}
	return helper.Success(c, "OK", fiber.Map{
		"paper":           paper,
		"question_counts": counts,
	})
}

// POST /api/a/exam-papers
func (ctl *PaperController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaperRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject configuration")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Paper code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create exam paper")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam paper created", m)
}

// PUT /api/a/exam-papers/:id
func (ctl *PaperController) Update(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}

	var req dto.UpdatePaperRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Apply(paper); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject configuration")
	}
	if err := db.Save(paper).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update exam paper")
	}
	return helper.Success(c, "Exam paper updated", paper)
}

// POST /api/a/exam-papers/:id/activate
// Aktivasi manual tetap lewat cek invarian; tanpa soal lengkap ditolak.
func (ctl *PaperController) Activate(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}
	if paper.ExamPaperStatus == model.PaperStatusActive {
		return helper.Success(c, "Exam paper already active", paper)
	}

	ok, err := svc.CanActivate(db, paper)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify paper questions")
	}
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot activate: every subject needs at least one question")
	}
	if err := db.Model(paper).Update("exam_paper_status", model.PaperStatusActive).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to activate exam paper")
	}
	paper.ExamPaperStatus = model.PaperStatusActive
	return helper.Success(c, "Exam paper activated", paper)
}

// POST /api/a/exam-papers/:id/deactivate — aksi manual admin, selalu boleh.
func (ctl *PaperController) Deactivate(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}
	if err := db.Model(paper).Update("exam_paper_status", model.PaperStatusInactive).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate exam paper")
	}
	paper.ExamPaperStatus = model.PaperStatusInactive
	return helper.Success(c, "Exam paper deactivated", paper)
}

// DELETE /api/a/exam-papers/:id (soft delete)
func (ctl *PaperController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}
	if err := db.Model(paper).Update("deleted_at", gorm.Expr("NOW()")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete exam paper")
	}
	return helper.Success(c, "Exam paper deleted", nil)
}
