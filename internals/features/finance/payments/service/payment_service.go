// file: internals/features/finance/payments/service/payment_service.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payments/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

var ErrPaymentNotFound = errors.New("payment tidak ditemukan")

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// CreateTuition membuat tagihan SPP lalu meminta Snap token ke Midtrans.
// Row tetap tersimpan berstatus initiated kalau permintaan token gagal,
// supaya bisa dicoba ulang tanpa tagihan ganda.
func (s *PaymentService) CreateTuition(row *model.PaymentModel) error {
	var student studentModel.StudentModel
	if err := s.DB.First(&student, "student_id = ?", row.PaymentStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("Student tidak ditemukan")
		}
		return err
	}

	orderID := fmt.Sprintf("SPP-%s-%s",
		strings.ToUpper(uuid.NewString()[:8]), row.PaymentPeriod)
	row.PaymentExternalID = &orderID
	row.PaymentStatus = model.PaymentStatusInitiated
	row.PaymentMethod = model.PaymentMethodGateway

	if err := s.DB.Create(row).Error; err != nil {
		return err
	}

	token, redirectURL, err := GenerateSnapToken(*row, CustomerInput{
		FirstName: student.StudentName,
	})
	if err != nil {
		return err
	}

	row.PaymentSnapToken = &token
	row.PaymentCheckoutURL = &redirectURL
	row.PaymentStatus = model.PaymentStatusPending
	return s.DB.Save(row).Error
}

// MidtransNotification: subset field webhook yang dipakai.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SettlementTime    string `json:"settlement_time"`
}

// ApplyNotification memperbarui status payment dari event webhook Midtrans.
// Payload mentah disimpan apa adanya untuk audit.
func (s *PaymentService) ApplyNotification(raw []byte) (*model.PaymentModel, error) {
	var notif MidtransNotification
	if err := json.Unmarshal(raw, &notif); err != nil {
		return nil, err
	}
	if notif.OrderID == "" {
		return nil, errors.New("order_id kosong")
	}

	var row model.PaymentModel
	if err := s.DB.First(&row, "payment_external_id = ?", notif.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	switch notif.TransactionStatus {
	case "capture":
		if notif.FraudStatus == "accept" || notif.FraudStatus == "" {
			s.markPaid(&row, notif)
		} else {
			row.PaymentStatus = model.PaymentStatusPending
		}
	case "settlement":
		s.markPaid(&row, notif)
	case "pending":
		row.PaymentStatus = model.PaymentStatusPending
	case "deny", "failure":
		row.PaymentStatus = model.PaymentStatusFailed
	case "cancel":
		row.PaymentStatus = model.PaymentStatusCanceled
	case "expire":
		row.PaymentStatus = model.PaymentStatusExpired
	}

	row.PaymentGatewayPayload = raw
	if err := s.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *PaymentService) markPaid(row *model.PaymentModel, notif MidtransNotification) {
	row.PaymentStatus = model.PaymentStatusPaid
	if t, err := time.Parse("2006-01-02 15:04:05", notif.SettlementTime); err == nil {
		row.PaymentPaidAt = &t
	} else {
		now := time.Now()
		row.PaymentPaidAt = &now
	}
}
