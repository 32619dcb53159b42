package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Student dibuat sekali lewat registration wizard (data diri + dokumen +
// rincian biaya digabung satu record), lalu hanya dimutasi oleh admin.
// Tidak pernah hard-delete; nonaktif via student_is_active.
type Student struct {
	StudentID        uuid.UUID  `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentIDNumber  string     `json:"student_id_number" gorm:"column:student_id_number;uniqueIndex;not null"`
	StudentName      string     `json:"student_name" gorm:"column:student_name;not null"`
	StudentEmail     string     `json:"student_email" gorm:"column:student_email;uniqueIndex;not null"`
	StudentPhone     string     `json:"student_phone" gorm:"column:student_phone"`
	StudentDOB       *time.Time `json:"student_dob,omitempty" gorm:"column:student_dob"`
	StudentGender    string     `json:"student_gender" gorm:"column:student_gender"`
	StudentAddress   string     `json:"student_address" gorm:"column:student_address"`
	StudentCourseID  uuid.UUID  `json:"student_course_id" gorm:"column:student_course_id;type:uuid;not null;index"`
	StudentCenterID  *uuid.UUID `json:"student_center_id,omitempty" gorm:"column:student_center_id;type:uuid;index"`
	StudentIsActive  bool       `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`
	StudentPhotoURL  string     `json:"student_photo_url" gorm:"column:student_photo_url"`
	StudentSignURL   string     `json:"student_sign_url" gorm:"column:student_sign_url"`
	StudentDocuments datatypes.JSONMap `json:"student_documents" gorm:"column:student_documents"`

	// ===== Fee ledger =====
	StudentCourseFee      float64 `json:"student_course_fee" gorm:"column:student_course_fee;not null;default:0"`
	StudentAdmissionFee   float64 `json:"student_admission_fee" gorm:"column:student_admission_fee;not null;default:0"`
	StudentExamFee        float64 `json:"student_exam_fee" gorm:"column:student_exam_fee;not null;default:0"`
	StudentDiscount       float64 `json:"student_discount" gorm:"column:student_discount;not null;default:0"`
	StudentTotalFee       float64 `json:"student_total_fee" gorm:"column:student_total_fee;not null;default:0"`
	StudentPayableAmount  float64 `json:"student_payable_amount" gorm:"column:student_payable_amount;not null;default:0"`
	StudentInstallments   int     `json:"student_installments" gorm:"column:student_installments;not null;default:1"`
	StudentPaymentStatus  string  `json:"student_payment_status" gorm:"column:student_payment_status;not null;default:'unpaid'"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Student) TableName() string {
	return "students"
}
