package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	CourseID             uuid.UUID  `json:"course_id" gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseName           string     `json:"course_name" gorm:"column:course_name;not null"`
	CourseDurationMonths int        `json:"course_duration_months" gorm:"column:course_duration_months;not null;default:0"`
	CourseFee            float64    `json:"course_fee" gorm:"column:course_fee;not null;default:0"`
	CourseIsActive       bool       `json:"course_is_active" gorm:"column:course_is_active;not null;default:true"`
	CreatedAt            time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`

	// Urutan mata pelajaran mengikuti subject_sort_order.
	Subjects []Subject `json:"subjects,omitempty" gorm:"foreignKey:SubjectCourseID;references:CourseID"`
}

func (Course) TableName() string {
	return "courses"
}

// Subject belongs to exactly one Course. Total marks dipakai saat
// perhitungan persentase nilai ujian offline.
type Subject struct {
	SubjectID                  uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectCourseID            uuid.UUID `json:"subject_course_id" gorm:"column:subject_course_id;type:uuid;not null;index"`
	SubjectName                string    `json:"subject_name" gorm:"column:subject_name;not null"`
	SubjectTotalTheoryMarks    int       `json:"subject_total_theory_marks" gorm:"column:subject_total_theory_marks;not null;default:0"`
	SubjectTotalPracticalMarks int       `json:"subject_total_practical_marks" gorm:"column:subject_total_practical_marks;not null;default:0"`
	SubjectSortOrder           int       `json:"subject_sort_order" gorm:"column:subject_sort_order;not null;default:0"`
	CreatedAt                  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Subject) TableName() string {
	return "subjects"
}
