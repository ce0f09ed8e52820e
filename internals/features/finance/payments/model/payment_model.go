// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCanceled  = "canceled"
	PaymentStatusExpired   = "expired"
)

const (
	PaymentMethodGateway      = "gateway"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
)

/* ===================== Model ===================== */

// PaymentModel: tagihan SPP per student per periode.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	PaymentAmountIDR int    `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr >= 0" json:"payment_amount_idr"`
	PaymentPeriod    string `gorm:"column:payment_period;type:varchar(7);not null;index" json:"payment_period"` // "2026-08"

	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);not null;default:'initiated'" json:"payment_status"`
	PaymentMethod string `gorm:"column:payment_method;type:varchar(20);not null;default:'gateway'" json:"payment_method"`

	PaymentDescription *string `gorm:"column:payment_description" json:"payment_description,omitempty"`

	// Info gateway (Midtrans)
	PaymentExternalID  *string `gorm:"column:payment_external_id;uniqueIndex:uq_payments_external_id" json:"payment_external_id,omitempty"` // order_id di PSP
	PaymentSnapToken   *string `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`
	PaymentCheckoutURL *string `gorm:"column:payment_checkout_url" json:"payment_checkout_url,omitempty"`

	// Payload mentah event webhook terakhir dari gateway.
	PaymentGatewayPayload datatypes.JSON `gorm:"column:payment_gateway_payload;type:jsonb" json:"payment_gateway_payload,omitempty"`

	PaymentPaidAt     *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentExpiresAt  *time.Time `gorm:"column:payment_expires_at" json:"payment_expires_at,omitempty"`
	PaymentCreatedAt  time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt  time.Time  `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}
