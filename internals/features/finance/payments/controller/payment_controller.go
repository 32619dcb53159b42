package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "eduadmin_backend/internals/features/finance/payments/model"
	svc "eduadmin_backend/internals/features/finance/payments/service"
	studentModel "eduadmin_backend/internals/features/institute/students/model"
	helper "eduadmin_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type PaymentController struct {
	DB                *gorm.DB
	Validator         *validator.Validate
	MidtransServerKey string // dipakai untuk verify signature di webhook
}

func NewPaymentController(db *gorm.DB, midtransServerKey string, useProd bool) *PaymentController {
	svc.InitMidtrans(midtransServerKey, useProd)
	return &PaymentController{
		DB:                db,
		Validator:         validator.New(),
		MidtransServerKey: midtransServerKey,
	}
}

// POST /api/payments/registration/:studentId
// Buat transaksi Snap untuk payable amount siswa (langkah payment di wizard).
func (h *PaymentController) CreateRegistrationPayment(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.Student
	if err := h.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}
	if student.StudentPaymentStatus == studentModel.PaymentStatusPaid {
		return helper.Error(c, fiber.StatusBadRequest, "Registration already paid")
	}

	amount := int64(student.StudentPayableAmount)
	if amount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing payable for this student")
	}

	m := &model.Payment{
		PaymentStudentID: student.StudentID,
		PaymentOrderID:   fmt.Sprintf("REG-%s-%d", student.StudentIDNumber, time.Now().Unix()),
		PaymentProvider:  model.PaymentProviderMidtrans,
		PaymentAmount:    amount,
		PaymentStatus:    model.PaymentStatusPending,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	token, redirectURL, err := svc.GenerateSnapToken(m.PaymentOrderID, amount, "Registration fee", svc.CustomerInput{
		Name:  student.StudentName,
		Email: student.StudentEmail,
		Phone: student.StudentPhone,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Midtrans error: "+err.Error())
	}

	m.PaymentSnapToken = &token
	m.PaymentRedirectURL = &redirectURL
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment")
	}

	// Tandai ledger pending sampai notifikasi settle masuk.
	_ = h.DB.WithContext(c.UserContext()).Model(&student).
		Update("student_payment_status", studentModel.PaymentStatusPending).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment created", m)
}

/* =======================================================================
   Webhook
======================================================================= */

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// POST /api/payments/notification
func (h *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif midtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	// Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	got := sha512sum(notif.OrderID + notif.StatusCode + notif.GrossAmount + h.MidtransServerKey)
	if want == "" || got != want {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	var payment model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		First(&payment, "payment_order_id = ?", notif.OrderID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Payment not found")
	}

	status := payment.PaymentStatus
	switch notif.TransactionStatus {
	case "capture", "settlement":
		if notif.FraudStatus == "" || notif.FraudStatus == "accept" {
			status = model.PaymentStatusSettled
		}
	case "deny", "cancel", "failure":
		status = model.PaymentStatusFailed
	case "expire":
		status = model.PaymentStatusExpired
	}

	now := time.Now()
	raw := datatypes.JSON(c.Body())
	updates := map[string]interface{}{
		"payment_status":      status,
		"payment_notified_at": &now,
		"payment_raw_notif":   raw,
	}
	if err := h.DB.WithContext(c.UserContext()).Model(&payment).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	if status == model.PaymentStatusSettled {
		_ = h.DB.WithContext(c.UserContext()).Model(&studentModel.Student{}).
			Where("student_id = ?", payment.PaymentStudentID).
			Update("student_payment_status", studentModel.PaymentStatusPaid).Error
	}

	return helper.Success(c, "OK", nil)
}

// GET /api/payments/student/:studentId
func (h *PaymentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var payments []model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return helper.Success(c, "OK", payments)
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}
