package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AppStatusScheduled = "scheduled"
	AppStatusCompleted = "completed"
	AppStatusApproved  = "approved"
	AppStatusCancelled = "cancelled"

	PaperTypeOnline  = "online"
	PaperTypeOffline = "offline"
)

/* =========================================================
   ExamApplication: satu siswa mendaftar ke satu paper.
   Unik per (student, paper); approved itu terminal dan
   membekukan nilai + nomor sertifikat.
   ========================================================= */

type ExamApplication struct {
	ExamApplicationID        uuid.UUID  `json:"exam_application_id" gorm:"column:exam_application_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ExamApplicationStudentID uuid.UUID  `json:"exam_application_student_id" gorm:"column:exam_application_student_id;type:uuid;not null;uniqueIndex:uq_exam_application_student_paper"`
	ExamApplicationPaperID   uuid.UUID  `json:"exam_application_paper_id" gorm:"column:exam_application_paper_id;type:uuid;not null;uniqueIndex:uq_exam_application_student_paper"`
	ExamApplicationCenterID  *uuid.UUID `json:"exam_application_center_id,omitempty" gorm:"column:exam_application_center_id;type:uuid;index"`

	ExamApplicationStatus        string    `json:"exam_application_status" gorm:"column:exam_application_status;not null;default:'scheduled';index"`
	ExamApplicationPaperType     string    `json:"exam_application_paper_type" gorm:"column:exam_application_paper_type"` // online|offline, '' dibaca online
	ExamApplicationScheduledTime time.Time `json:"exam_application_scheduled_time" gorm:"column:exam_application_scheduled_time;not null"`

	// Hasil ujian, terisi saat approve (offline) atau selesai ujian (online).
	ExamApplicationSubjectMarks datatypes.JSON `json:"exam_application_subject_marks,omitempty" gorm:"column:exam_application_subject_marks"` // []SubjectMark
	ExamApplicationScore        *float64       `json:"exam_application_score,omitempty" gorm:"column:exam_application_score"`
	ExamApplicationTotalMarks   *float64       `json:"exam_application_total_marks,omitempty" gorm:"column:exam_application_total_marks"`
	ExamApplicationPercentage   *float64       `json:"exam_application_percentage,omitempty" gorm:"column:exam_application_percentage"`

	// Snapshot identitas siswa saat approve, supaya sertifikat tidak
	// ikut berubah kalau data siswa diedit belakangan.
	ExamApplicationCertificateNo   *string `json:"exam_application_certificate_no,omitempty" gorm:"column:exam_application_certificate_no;uniqueIndex"`
	ExamApplicationStudentName     string  `json:"exam_application_student_name" gorm:"column:exam_application_student_name"`
	ExamApplicationStudentIDNumber string  `json:"exam_application_student_id_number" gorm:"column:exam_application_student_id_number"`

	ExamApplicationApprovedAt *time.Time `json:"exam_application_approved_at,omitempty" gorm:"column:exam_application_approved_at"`
	CreatedAt                 time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                 time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (ExamApplication) TableName() string {
	return "exam_applications"
}

// SubjectMark adalah isi JSON exam_application_subject_marks.
// Teori dan praktik dicatat terpisah lalu dijumlah saat komputasi.
type SubjectMark struct {
	SubjectID         uuid.UUID `json:"subject_id"`
	SubjectName       string    `json:"subject_name"`
	TotalMarks        float64   `json:"total_marks"`
	PracticalMarks    float64   `json:"practical_marks"`
	ObtainedMarks     float64   `json:"obtained_marks"`
	ObtainedPractical float64   `json:"obtained_practical"`
}

// NormalizePaperType menjamin jalur baca selalu memulangkan online|offline.
func NormalizePaperType(raw string) string {
	if raw == PaperTypeOffline {
		return PaperTypeOffline
	}
	return PaperTypeOnline
}
