package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "eduadmin_backend/internals/features/exams/papers/model"
)

type SubjectConfigInput struct {
	SubjectID     uuid.UUID `json:"subject_id" validate:"required"`
	QuestionCount int       `json:"question_count" validate:"min=1"`
	PassingMarks  float64   `json:"passing_marks" validate:"min=0"`
}

type CreatePaperRequest struct {
	ExamPaperCode     string               `json:"exam_paper_code" validate:"required,min=2,max=32"`
	ExamPaperName     string               `json:"exam_paper_name" validate:"required,min=3"`
	ExamPaperType     string               `json:"exam_paper_type" validate:"omitempty,oneof=Main Practice"`
	ExamPaperMode     string               `json:"exam_paper_mode" validate:"omitempty,oneof=online offline"`
	ExamPaperCourseID uuid.UUID            `json:"exam_paper_course_id" validate:"required"`
	ExamPaperStartAt  *time.Time           `json:"exam_paper_start_at"`
	ExamPaperEndAt    *time.Time           `json:"exam_paper_end_at"`
	ExamPaperDuration int                  `json:"exam_paper_duration_minutes" validate:"min=0"`
	ExamPaperPosMarks float64              `json:"exam_paper_positive_marks"`
	ExamPaperNegMarks float64              `json:"exam_paper_negative_marks"`
	Subjects          []SubjectConfigInput `json:"subjects" validate:"required,min=1,dive"`
}

func (r CreatePaperRequest) Validate() error {
	if r.ExamPaperStartAt != nil && r.ExamPaperEndAt != nil && !r.ExamPaperEndAt.After(*r.ExamPaperStartAt) {
		return errors.New("exam_paper_end_at must be after exam_paper_start_at")
	}
	return nil
}

func (r CreatePaperRequest) ToModel() (*model.ExamPaper, error) {
	configs := make([]model.SubjectConfig, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		configs = append(configs, model.SubjectConfig{
			SubjectID:     s.SubjectID,
			QuestionCount: s.QuestionCount,
			PassingMarks:  s.PassingMarks,
		})
	}
	raw, err := json.Marshal(configs)
	if err != nil {
		return nil, err
	}

	paperType := r.ExamPaperType
	if paperType == "" {
		paperType = model.PaperTypeMain
	}
	mode := r.ExamPaperMode
	if mode == "" {
		mode = model.PaperModeOnline
	}
	duration := r.ExamPaperDuration
	if duration == 0 {
		duration = 60
	}
	posMarks := r.ExamPaperPosMarks
	if posMarks == 0 {
		posMarks = 1
	}

	return &model.ExamPaper{
		ExamPaperCode:     r.ExamPaperCode,
		ExamPaperName:     r.ExamPaperName,
		ExamPaperType:     paperType,
		ExamPaperMode:     mode,
		ExamPaperStatus:   model.PaperStatusInactive, // aktivasi lewat invarian, bukan create
		ExamPaperCourseID: r.ExamPaperCourseID,
		ExamPaperStartAt:  r.ExamPaperStartAt,
		ExamPaperEndAt:    r.ExamPaperEndAt,
		ExamPaperDuration: duration,
		ExamPaperPosMarks: posMarks,
		ExamPaperNegMarks: r.ExamPaperNegMarks,
		ExamPaperSubjects: datatypes.JSON(raw),
	}, nil
}

type UpdatePaperRequest struct {
	ExamPaperName     *string              `json:"exam_paper_name"`
	ExamPaperType     *string              `json:"exam_paper_type" validate:"omitempty,oneof=Main Practice"`
	ExamPaperMode     *string              `json:"exam_paper_mode" validate:"omitempty,oneof=online offline"`
	ExamPaperStartAt  *time.Time           `json:"exam_paper_start_at"`
	ExamPaperEndAt    *time.Time           `json:"exam_paper_end_at"`
	ExamPaperDuration *int                 `json:"exam_paper_duration_minutes"`
	ExamPaperPosMarks *float64             `json:"exam_paper_positive_marks"`
	ExamPaperNegMarks *float64             `json:"exam_paper_negative_marks"`
	Subjects          []SubjectConfigInput `json:"subjects" validate:"omitempty,dive"`
}

func (r UpdatePaperRequest) Apply(m *model.ExamPaper) error {
	if r.ExamPaperName != nil {
		m.ExamPaperName = *r.ExamPaperName
	}
	if r.ExamPaperType != nil {
		m.ExamPaperType = *r.ExamPaperType
	}
	if r.ExamPaperMode != nil {
		m.ExamPaperMode = *r.ExamPaperMode
	}
	if r.ExamPaperStartAt != nil {
		m.ExamPaperStartAt = r.ExamPaperStartAt
	}
	if r.ExamPaperEndAt != nil {
		m.ExamPaperEndAt = r.ExamPaperEndAt
	}
	if r.ExamPaperDuration != nil {
		m.ExamPaperDuration = *r.ExamPaperDuration
	}
	if r.ExamPaperPosMarks != nil {
		m.ExamPaperPosMarks = *r.ExamPaperPosMarks
	}
	if r.ExamPaperNegMarks != nil {
		m.ExamPaperNegMarks = *r.ExamPaperNegMarks
	}
	if len(r.Subjects) > 0 {
		configs := make([]model.SubjectConfig, 0, len(r.Subjects))
		for _, s := range r.Subjects {
			configs = append(configs, model.SubjectConfig{
				SubjectID:     s.SubjectID,
				QuestionCount: s.QuestionCount,
				PassingMarks:  s.PassingMarks,
			})
		}
		raw, err := json.Marshal(configs)
		if err != nil {
			return err
		}
		m.ExamPaperSubjects = datatypes.JSON(raw)
	}
	return nil
}

type CreateQuestionRequest struct {
	QuestionSubjectID uuid.UUID `json:"question_subject_id" validate:"required"`
	QuestionText      string    `json:"question_text" validate:"required,min=3"`
	QuestionOptionA   string    `json:"question_option_a" validate:"required"`
	QuestionOptionB   string    `json:"question_option_b" validate:"required"`
	QuestionOptionC   string    `json:"question_option_c"`
	QuestionOptionD   string    `json:"question_option_d"`
	QuestionCorrect   string    `json:"question_correct_option" validate:"required,oneof=A B C D"`
	QuestionMarks     float64   `json:"question_marks" validate:"min=0"`
}

func (r CreateQuestionRequest) ToModel(paperID uuid.UUID) *model.Question {
	marks := r.QuestionMarks
	if marks == 0 {
		marks = 1
	}
	return &model.Question{
		QuestionPaperID:   paperID,
		QuestionSubjectID: r.QuestionSubjectID,
		QuestionText:      r.QuestionText,
		QuestionOptionA:   r.QuestionOptionA,
		QuestionOptionB:   r.QuestionOptionB,
		QuestionOptionC:   r.QuestionOptionC,
		QuestionOptionD:   r.QuestionOptionD,
		QuestionCorrect:   r.QuestionCorrect,
		QuestionMarks:     marks,
	}
}
