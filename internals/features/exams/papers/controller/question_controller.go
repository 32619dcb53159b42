package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eduadmin_backend/internals/features/exams/papers/dto"
	"eduadmin_backend/internals/features/exams/papers/importer"
	model "eduadmin_backend/internals/features/exams/papers/model"
	svc "eduadmin_backend/internals/features/exams/papers/service"
	helper "eduadmin_backend/internals/helpers"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db, Validator: validator.New()}
}

// GET /api/exam-papers/:id/questions?subjectId=
func (ctl *QuestionController) ListByPaper(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}

	q := db.Model(&model.Question{}).Where("question_paper_id = ?", paper.ExamPaperID)
	if sid := strings.TrimSpace(c.Query("subjectId")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid subjectId")
		}
		q = q.Where("question_subject_id = ?", id)
	}

	var questions []model.Question
	if err := q.Order("created_at ASC").Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	return helper.Success(c, "OK", questions)
}

// POST /api/a/exam-papers/:id/questions
func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !subjectConfigured(paper, req.QuestionSubjectID) {
		return helper.Error(c, fiber.StatusBadRequest, "Subject is not part of this paper")
	}

	m := req.ToModel(paper.ExamPaperID)
	if err := db.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	// Soal baru bisa melengkapi subject terakhir; cek auto-aktivasi.
	if changed, err := svc.RecheckActivation(db, paper); err != nil {
		log.Printf("[WARN] activation recheck failed for paper %s: %v", paper.ExamPaperID, err)
	} else if changed {
		log.Printf("[INFO] paper %s auto-activated after question insert", paper.ExamPaperCode)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", m)
}

// DELETE /api/a/exam-papers/:id/questions/:questionId
func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}
	qid, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}

	res := db.Where("question_id = ? AND question_paper_id = ?", qid, paper.ExamPaperID).
		Delete(&model.Question{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.Success(c, "Question deleted", nil)
}

// POST /api/a/exam-papers/:id/questions/import
// Multipart field "file": workbook .xlsx dengan header fuzzy-match.
// Baris invalid dilaporkan per baris, baris valid tetap masuk.
func (ctl *QuestionController) Import(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	paper, err := FindPaperByAnyID(db, c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Exam paper not found")
	}

	subjectID, err := uuid.Parse(strings.TrimSpace(c.FormValue("subject_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "subject_id is required")
	}
	if !subjectConfigured(paper, subjectID) {
		return helper.Error(c, fiber.StatusBadRequest, "Subject is not part of this paper")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Excel file is required (field: file)")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot read uploaded file")
	}
	defer f.Close()

	parsed, rowErrs, err := importer.ParseWorkbook(f)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if len(parsed) == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "No valid questions found in workbook", rowErrorMessages(rowErrs))
	}

	questions := make([]model.Question, 0, len(parsed))
	for _, pq := range parsed {
		questions = append(questions, model.Question{
			QuestionPaperID:   paper.ExamPaperID,
			QuestionSubjectID: subjectID,
			QuestionText:      pq.Text,
			QuestionOptionA:   pq.OptionA,
			QuestionOptionB:   pq.OptionB,
			QuestionOptionC:   pq.OptionC,
			QuestionOptionD:   pq.OptionD,
			QuestionCorrect:   pq.Correct,
			QuestionMarks:     pq.Marks,
		})
	}
	if err := db.CreateInBatches(&questions, 200).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save imported questions")
	}

	if changed, err := svc.RecheckActivation(db, paper); err != nil {
		log.Printf("[WARN] activation recheck failed for paper %s: %v", paper.ExamPaperID, err)
	} else if changed {
		log.Printf("[INFO] paper %s auto-activated after import", paper.ExamPaperCode)
	}

	return helper.Success(c, "Questions imported", fiber.Map{
		"imported_count": len(questions),
		"skipped_count":  len(rowErrs),
		"row_errors":     rowErrorMessages(rowErrs),
		"paper_status":   paper.ExamPaperStatus,
	})
}

// GET /api/exam-papers/:id/questions/sample — unduh template workbook.
func (ctl *QuestionController) DownloadSample(c *fiber.Ctx) error {
	wb, err := importer.BuildSampleWorkbook()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build sample workbook")
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode sample workbook")
	}
	name := fmt.Sprintf("question-import-sample-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}

func subjectConfigured(paper *model.ExamPaper, subjectID uuid.UUID) bool {
	configs, err := svc.DecodeSubjectConfigs(paper)
	if err != nil {
		return false
	}
	for _, cfg := range configs {
		if cfg.SubjectID == subjectID {
			return true
		}
	}
	return false
}

func rowErrorMessages(errs []importer.RowError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
