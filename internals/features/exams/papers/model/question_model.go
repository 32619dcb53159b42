package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	QuestionID        uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionPaperID   uuid.UUID `json:"question_paper_id" gorm:"column:question_paper_id;type:uuid;not null;index"`
	QuestionSubjectID uuid.UUID `json:"question_subject_id" gorm:"column:question_subject_id;type:uuid;not null;index"`
	QuestionText      string    `json:"question_text" gorm:"column:question_text;type:text;not null"`
	QuestionOptionA   string    `json:"question_option_a" gorm:"column:question_option_a;not null"`
	QuestionOptionB   string    `json:"question_option_b" gorm:"column:question_option_b;not null"`
	QuestionOptionC   string    `json:"question_option_c" gorm:"column:question_option_c"`
	QuestionOptionD   string    `json:"question_option_d" gorm:"column:question_option_d"`
	QuestionCorrect   string    `json:"question_correct_option" gorm:"column:question_correct_option;not null"` // A|B|C|D
	QuestionMarks     float64   `json:"question_marks" gorm:"column:question_marks;not null;default:1"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
