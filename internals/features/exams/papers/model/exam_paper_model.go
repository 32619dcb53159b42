package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PaperTypeMain     = "Main"
	PaperTypePractice = "Practice"

	PaperModeOnline  = "online"
	PaperModeOffline = "offline"

	PaperStatusActive   = "active"
	PaperStatusInactive = "inactive"
)

// ExamPaper adalah definisi paper/bank soal, terpisah dari aplikasi siswa
// untuk mengikutinya. Konfigurasi per-subject disimpan sebagai JSON
// (jumlah soal + passing marks per mata pelajaran).
type ExamPaper struct {
	ExamPaperID       uuid.UUID      `json:"exam_paper_id" gorm:"column:exam_paper_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ExamPaperCode     string         `json:"exam_paper_code" gorm:"column:exam_paper_code;uniqueIndex;not null"`
	ExamPaperName     string         `json:"exam_paper_name" gorm:"column:exam_paper_name;not null"`
	ExamPaperType     string         `json:"exam_paper_type" gorm:"column:exam_paper_type;not null;default:'Main'"`
	ExamPaperMode     string         `json:"exam_paper_mode" gorm:"column:exam_paper_mode;not null;default:'online'"`
	ExamPaperStatus   string         `json:"exam_paper_status" gorm:"column:exam_paper_status;not null;default:'inactive'"`
	ExamPaperCourseID uuid.UUID      `json:"exam_paper_course_id" gorm:"column:exam_paper_course_id;type:uuid;not null;index"`
	ExamPaperStartAt  *time.Time     `json:"exam_paper_start_at,omitempty" gorm:"column:exam_paper_start_at"`
	ExamPaperEndAt    *time.Time     `json:"exam_paper_end_at,omitempty" gorm:"column:exam_paper_end_at"`
	ExamPaperDuration int            `json:"exam_paper_duration_minutes" gorm:"column:exam_paper_duration_minutes;not null;default:60"`
	ExamPaperPosMarks float64        `json:"exam_paper_positive_marks" gorm:"column:exam_paper_positive_marks;not null;default:1"`
	ExamPaperNegMarks float64        `json:"exam_paper_negative_marks" gorm:"column:exam_paper_negative_marks;not null;default:0"`
	ExamPaperSubjects datatypes.JSON `json:"exam_paper_subjects" gorm:"column:exam_paper_subjects"` // []SubjectConfig
	CreatedAt         time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt         *time.Time     `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (ExamPaper) TableName() string {
	return "exam_papers"
}

// SubjectConfig adalah isi JSON exam_paper_subjects.
type SubjectConfig struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	QuestionCount int       `json:"question_count"`
	PassingMarks  float64   `json:"passing_marks"`
}
