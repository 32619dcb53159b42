package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusSettled = "settled"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"

	PaymentProviderMidtrans = "midtrans"
)

// Payment mencatat transaksi gateway untuk biaya pendaftaran siswa.
// Satu payment = satu order Midtrans (order_id = payment_order_id).
type Payment struct {
	PaymentID          uuid.UUID      `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PaymentStudentID   uuid.UUID      `json:"payment_student_id" gorm:"column:payment_student_id;type:uuid;not null;index"`
	PaymentOrderID     string         `json:"payment_order_id" gorm:"column:payment_order_id;uniqueIndex;not null"`
	PaymentProvider    string         `json:"payment_provider" gorm:"column:payment_provider;not null;default:'midtrans'"`
	PaymentAmount      int64          `json:"payment_amount" gorm:"column:payment_amount;not null"`
	PaymentStatus      string         `json:"payment_status" gorm:"column:payment_status;not null;default:'pending'"`
	PaymentSnapToken   *string        `json:"payment_snap_token,omitempty" gorm:"column:payment_snap_token"`
	PaymentRedirectURL *string        `json:"payment_redirect_url,omitempty" gorm:"column:payment_redirect_url"`
	PaymentNotifiedAt  *time.Time     `json:"payment_notified_at,omitempty" gorm:"column:payment_notified_at"`
	PaymentRawNotif    datatypes.JSON `json:"payment_raw_notif,omitempty" gorm:"column:payment_raw_notif"`
	CreatedAt          time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time      `json:"updated_at" gorm:"column:updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
