package dto

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "eduadmin_backend/internals/features/institute/students/model"
)

// RegisterStudentRequest adalah record gabungan hasil wizard 3 langkah
// (data diri → upload dokumen → biaya). Seluruh state dikumpulkan client
// dan disubmit sekali di akhir.
type RegisterStudentRequest struct {
	StudentName    string     `json:"student_name" validate:"required,min=3"`
	StudentEmail   string     `json:"student_email" validate:"required,email"`
	StudentPhone   string     `json:"student_phone" validate:"omitempty,min=6"`
	StudentDOB     *time.Time `json:"student_dob"`
	StudentGender  string     `json:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentAddress string     `json:"student_address"`

	StudentCourseID uuid.UUID  `json:"student_course_id" validate:"required"`
	StudentCenterID *uuid.UUID `json:"student_center_id"`

	StudentPhotoURL  string            `json:"student_photo_url"`
	StudentSignURL   string            `json:"student_sign_url"`
	StudentDocuments map[string]string `json:"student_documents"` // mis. {"id_proof": url, "marksheet": url}

	StudentCourseFee    float64 `json:"student_course_fee" validate:"min=0"`
	StudentAdmissionFee float64 `json:"student_admission_fee" validate:"min=0"`
	StudentExamFee      float64 `json:"student_exam_fee" validate:"min=0"`
	StudentDiscount     float64 `json:"student_discount" validate:"min=0"`
	StudentInstallments int     `json:"student_installments" validate:"min=0"`
}

type UpdateStudentRequest struct {
	StudentName     *string    `json:"student_name"`
	StudentPhone    *string    `json:"student_phone"`
	StudentAddress  *string    `json:"student_address"`
	StudentCenterID *uuid.UUID `json:"student_center_id"`
	StudentIsActive *bool      `json:"student_is_active"`
	StudentPhotoURL *string    `json:"student_photo_url"`
	StudentSignURL  *string    `json:"student_sign_url"`
	StudentDiscount *float64   `json:"student_discount"`
}

// FeeLedger hasil derivasi server-side; client tidak dipercaya menghitung total.
type FeeLedger struct {
	TotalFee      float64
	PayableAmount float64
	Installments  int
}

// DeriveFeeLedger: totalFee = course+admission+exam-discount (floor 0);
// payableAmount = cicilan pertama bila installments > 1.
func (r RegisterStudentRequest) DeriveFeeLedger() FeeLedger {
	total := r.StudentCourseFee + r.StudentAdmissionFee + r.StudentExamFee - r.StudentDiscount
	if total < 0 {
		total = 0
	}
	installments := r.StudentInstallments
	if installments < 1 {
		installments = 1
	}
	payable := total
	if installments > 1 {
		payable = total / float64(installments)
	}
	return FeeLedger{TotalFee: total, PayableAmount: payable, Installments: installments}
}

func (r RegisterStudentRequest) ToModel() *model.Student {
	ledger := r.DeriveFeeLedger()
	docs := datatypes.JSONMap{}
	for k, v := range r.StudentDocuments {
		docs[k] = v
	}
	return &model.Student{
		StudentIDNumber:  GenerateStudentIDNumber(),
		StudentName:      r.StudentName,
		StudentEmail:     r.StudentEmail,
		StudentPhone:     r.StudentPhone,
		StudentDOB:       r.StudentDOB,
		StudentGender:    r.StudentGender,
		StudentAddress:   r.StudentAddress,
		StudentCourseID:  r.StudentCourseID,
		StudentCenterID:  r.StudentCenterID,
		StudentIsActive:  true,
		StudentPhotoURL:  r.StudentPhotoURL,
		StudentSignURL:   r.StudentSignURL,
		StudentDocuments: docs,

		StudentCourseFee:     r.StudentCourseFee,
		StudentAdmissionFee:  r.StudentAdmissionFee,
		StudentExamFee:       r.StudentExamFee,
		StudentDiscount:      r.StudentDiscount,
		StudentTotalFee:      ledger.TotalFee,
		StudentPayableAmount: ledger.PayableAmount,
		StudentInstallments:  ledger.Installments,
		StudentPaymentStatus: model.PaymentStatusUnpaid,
	}
}

func (r UpdateStudentRequest) Apply(m *model.Student) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentPhone != nil {
		m.StudentPhone = *r.StudentPhone
	}
	if r.StudentAddress != nil {
		m.StudentAddress = *r.StudentAddress
	}
	if r.StudentCenterID != nil {
		m.StudentCenterID = r.StudentCenterID
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
	if r.StudentPhotoURL != nil {
		m.StudentPhotoURL = *r.StudentPhotoURL
	}
	if r.StudentSignURL != nil {
		m.StudentSignURL = *r.StudentSignURL
	}
	if r.StudentDiscount != nil {
		m.StudentDiscount = *r.StudentDiscount
		total := m.StudentCourseFee + m.StudentAdmissionFee + m.StudentExamFee - m.StudentDiscount
		if total < 0 {
			total = 0
		}
		m.StudentTotalFee = total
	}
}

// GenerateStudentIDNumber: nomor registrasi tampilan, mis. STU-20250829-4821.
// Kolomnya unique; collision (sangat jarang) akan ditolak DB dan wizard retry.
func GenerateStudentIDNumber() string {
	return fmt.Sprintf("STU-%s-%04d", time.Now().Format("20060102"), rand.Intn(10000))
}
