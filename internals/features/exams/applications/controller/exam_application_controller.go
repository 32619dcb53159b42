package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/exams/applications/dto"
	model "eduadmin_backend/internals/features/exams/applications/model"
	svc "eduadmin_backend/internals/features/exams/applications/service"
	paperModel "eduadmin_backend/internals/features/exams/papers/model"
	studentModel "eduadmin_backend/internals/features/institute/students/model"
	helper "eduadmin_backend/internals/helpers"
)

type ExamApplicationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExamApplicationController(db *gorm.DB) *ExamApplicationController {
	return &ExamApplicationController{DB: db, Validator: validator.New()}
}

// applicationRow adalah bentuk baca: aplikasi + join siswa + paper.
type applicationRow struct {
	model.ExamApplication
	StudentName     string `json:"student_name" gorm:"column:student_name"`
	StudentIDNumber string `json:"student_id_number" gorm:"column:student_id_number"`
	StudentEmail    string `json:"student_email" gorm:"column:student_email"`
	ExamPaperCode   string `json:"exam_paper_code" gorm:"column:exam_paper_code"`
	ExamPaperName   string `json:"exam_paper_name" gorm:"column:exam_paper_name"`
	ExamPaperType   string `json:"exam_paper_type" gorm:"column:exam_paper_type"`
}

// normalize menjaga kontrak payload baca: paper type selalu online|offline
// dan percentage selalu ada (0 untuk aplikasi yang belum dinilai).
func (r *applicationRow) normalize() {
	r.ExamApplicationPaperType = model.NormalizePaperType(r.ExamApplicationPaperType)
	if r.ExamApplicationPercentage == nil {
		zero := 0.0
		r.ExamApplicationPercentage = &zero
	}
}

func resolvePaper(db *gorm.DB, idOrCode string) (*paperModel.ExamPaper, error) {
	var paper paperModel.ExamPaper
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

// resolveStudent terima database id atau nomor registrasi (STU-...).
func resolveStudent(db *gorm.DB, idOrNumber string) (*studentModel.Student, error) {
	var student studentModel.Student
	if id, err := uuid.Parse(idOrNumber); err == nil {
		if err := db.First(&student, "student_id = ?", id).Error; err == nil {
			return &student, nil
		} else if !helper.IsNotFound(err) {
			return nil, err
		}
	}
	if err := db.First(&student, "student_id_number = ?", idOrNumber).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

/* =========================================================
   POST /api/exam-applications
   Satu transaksi untuk semua siswa: duplikat satu saja berarti
   seluruh batch batal (nol baris tersimpan).
   ========================================================= */

func (ctl *ExamApplicationController) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	paper, err := resolvePaper(db, strings.TrimSpace(req.ExamPaperID))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}

	paperType := req.ResolvedPaperType(paper.ExamPaperMode)

	var created []model.ExamApplication
	txErr := db.Transaction(func(tx *gorm.DB) error {
		for _, rawID := range req.StudentIDs {
			student, err := resolveStudent(tx, strings.TrimSpace(rawID))
			if err != nil {
				if helper.IsNotFound(err) {
					return fmt.Errorf("student %s not found", rawID)
				}
				return err
			}

			app := model.ExamApplication{
				ExamApplicationStudentID:       student.StudentID,
				ExamApplicationPaperID:         paper.ExamPaperID,
				ExamApplicationCenterID:        student.StudentCenterID,
				ExamApplicationStatus:          model.AppStatusScheduled,
				ExamApplicationPaperType:       paperType,
				ExamApplicationScheduledTime:   req.ScheduledTime.Time,
				ExamApplicationStudentName:     student.StudentName,
				ExamApplicationStudentIDNumber: student.StudentIDNumber,
			}
			if err := tx.Create(&app).Error; err != nil {
				return err
			}
			created = append(created, app)
		}
		return nil
	})
	if txErr != nil {
		if helper.IsDuplicateKey(txErr) {
			return helper.Error(c, fiber.StatusBadRequest, "Student already registered for this exam")
		}
		return helper.Error(c, fiber.StatusBadRequest, txErr.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam applications created", created)
}

/* =========================================================
   GET /api/exam-applications
   Filter campuran: id/studentId/studentEmail/examId/centerId/
   atcId/status (boleh koma)/paperType. Tanpa filter = semua.
   ========================================================= */

func (ctl *ExamApplicationController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	q := db.Model(&model.ExamApplication{}).
		Select(`exam_applications.*,
			students.student_name AS student_name,
			students.student_id_number AS student_id_number,
			students.student_email AS student_email,
			exam_papers.exam_paper_code AS exam_paper_code,
			exam_papers.exam_paper_name AS exam_paper_name,
			exam_papers.exam_paper_type AS exam_paper_type`).
		Joins("JOIN students ON students.student_id = exam_applications.exam_application_student_id").
		Joins("JOIN exam_papers ON exam_papers.exam_paper_id = exam_applications.exam_application_paper_id")

	if raw := strings.TrimSpace(c.Query("id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
		}
		q = q.Where("exam_applications.exam_application_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("studentId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid studentId")
		}
		q = q.Where("exam_applications.exam_application_student_id = ?", id)
	}
	if email := strings.TrimSpace(c.Query("studentEmail")); email != "" {
		q = q.Where("LOWER(students.student_email) = LOWER(?)", email)
	}
	if raw := strings.TrimSpace(c.Query("examId")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q = q.Where("exam_applications.exam_application_paper_id = ?", id)
		} else {
			q = q.Where("exam_papers.exam_paper_code = ?", raw)
		}
	}
	// centerId dan atcId nama lama/baru untuk filter yang sama.
	// Keanggotaan center dibaca dari data siswa saat query, bukan dari
	// snapshot aplikasi, supaya siswa yang pindah center ikut pindah.
	centerRaw := strings.TrimSpace(c.Query("centerId"))
	if centerRaw == "" {
		centerRaw = strings.TrimSpace(c.Query("atcId"))
	}
	if centerRaw != "" {
		id, err := uuid.Parse(centerRaw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid centerId")
		}
		q = q.Where("students.student_center_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		parts := splitCSV(status)
		if len(parts) == 1 {
			q = q.Where("exam_applications.exam_application_status = ?", parts[0])
		} else {
			q = q.Where("exam_applications.exam_application_status IN ?", parts)
		}
	}
	if pt := strings.TrimSpace(c.Query("paperType")); pt != "" {
		if pt == model.PaperTypeOnline {
			// '' tersimpan lama juga berarti online.
			q = q.Where("(exam_applications.exam_application_paper_type = ? OR exam_applications.exam_application_paper_type IS NULL OR exam_applications.exam_application_paper_type = '')", pt)
		} else {
			q = q.Where("exam_applications.exam_application_paper_type = ?", pt)
		}
	}

	var rows []applicationRow
	if err := q.Order("exam_applications.created_at DESC").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch exam applications")
	}
	for i := range rows {
		rows[i].normalize()
	}

	// Status ujian harus selalu segar; jangan di-cache perantara.
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	c.Set(fiber.HeaderPragma, "no-cache")
	return helper.Success(c, "OK", rows)
}

// HEAD /api/exam-applications: hitungan ringkas lewat header, tanpa body.
func (ctl *ExamApplicationController) Head(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	var offline, approved, offlineApproved int64

	base := func() *gorm.DB { return db.Model(&model.ExamApplication{}) }
	if err := base().Where("exam_application_paper_type = ?", model.PaperTypeOffline).Count(&offline).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Count failed")
	}
	if err := base().Where("exam_application_status = ?", model.AppStatusApproved).Count(&approved).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Count failed")
	}
	if err := base().
		Where("exam_application_paper_type = ? AND exam_application_status = ?", model.PaperTypeOffline, model.AppStatusApproved).
		Count(&offlineApproved).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Count failed")
	}

	c.Set("X-Offline-Count", fmt.Sprintf("%d", offline))
	c.Set("X-Approved-Count", fmt.Sprintf("%d", approved))
	c.Set("X-Offline-Approved-Count", fmt.Sprintf("%d", offlineApproved))
	return c.SendStatus(fiber.StatusOK)
}

/* =========================================================
   Verify & approve nilai offline. Dua-duanya lewat
   svc.ComputeResult; verify tidak menulis apa pun.
   ========================================================= */

// POST /api/exam-applications/:id/verify
func (ctl *ExamApplicationController) Verify(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	app, err := ctl.findByID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam application not found")
	}
	if app.ExamApplicationStatus == model.AppStatusApproved {
		return helper.Error(c, fiber.StatusBadRequest, "Application already approved")
	}

	var req dto.MarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := svc.ComputeResult(req.ToSubjectMarks())
	return helper.Success(c, "Marks verified", res)
}

// POST /api/exam-applications/:id/approve
func (ctl *ExamApplicationController) Approve(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	app, err := ctl.findByID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam application not found")
	}
	switch app.ExamApplicationStatus {
	case model.AppStatusScheduled, model.AppStatusCompleted:
		// boleh lanjut
	case model.AppStatusApproved:
		return helper.Error(c, fiber.StatusBadRequest, "Application already approved")
	default:
		return helper.Error(c, fiber.StatusBadRequest, "Cancelled application cannot be approved")
	}

	var req dto.MarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	marks := req.ToSubjectMarks()
	res := svc.ComputeResult(marks)

	var student studentModel.Student
	if err := db.First(&student, "student_id = ?", app.ExamApplicationStudentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	certNo, err := svc.GenerateCertificateNumber(db)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate certificate number")
	}

	marksJSON, err := sonicMarshal(marks)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode marks")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"exam_application_subject_marks":     marksJSON,
		"exam_application_score":             res.Obtained,
		"exam_application_total_marks":       res.Max,
		"exam_application_percentage":        res.Percentage,
		"exam_application_certificate_no":    certNo,
		"exam_application_student_name":      student.StudentName,
		"exam_application_student_id_number": student.StudentIDNumber,
		"exam_application_status":            model.AppStatusApproved,
		"exam_application_approved_at":       now,
	}
	// Guard status di WHERE: dua approve balapan, yang kalah kena 0 baris.
	tx := db.Model(&model.ExamApplication{}).
		Where("exam_application_id = ? AND exam_application_status IN ?",
			app.ExamApplicationID, []string{model.AppStatusScheduled, model.AppStatusCompleted}).
		Updates(updates)
	if tx.Error != nil {
		if helper.IsDuplicateKey(tx.Error) {
			return helper.Error(c, fiber.StatusConflict, "Certificate number collision, please retry")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to approve application")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusConflict, "Application was approved by another request")
	}

	return helper.Success(c, "Application approved", fiber.Map{
		"exam_application_id": app.ExamApplicationID,
		"certificate_no":      certNo,
		"result":              res,
		"approved_at":         now,
	})
}

// PATCH /api/exam-applications/:id/status
func (ctl *ExamApplicationController) UpdateStatus(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	app, err := ctl.findByID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam application not found")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if app.ExamApplicationStatus == model.AppStatusApproved {
		return helper.Error(c, fiber.StatusBadRequest, "Approved application is frozen")
	}
	if app.ExamApplicationStatus == model.AppStatusCancelled && req.Status != model.AppStatusScheduled {
		return helper.Error(c, fiber.StatusBadRequest, "Cancelled application can only be rescheduled")
	}

	if err := db.Model(app).Update("exam_application_status", req.Status).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	app.ExamApplicationStatus = req.Status
	return helper.Success(c, "Status updated", app)
}

func (ctl *ExamApplicationController) findByID(db *gorm.DB, raw string) (*model.ExamApplication, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var app model.ExamApplication
	if err := db.First(&app, "exam_application_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
