// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/finance/payments/model"
)

/* ============ REQUESTS ============ */

type CreatePaymentRequest struct {
	PaymentStudentID   uuid.UUID `json:"student_id" validate:"required"`
	PaymentAmountIDR   int       `json:"amount_idr" validate:"required,min=1"`
	PaymentPeriod      string    `json:"period" validate:"required,datetime=2006-01"`
	PaymentDescription *string   `json:"description" validate:"omitempty,max=200"`
}

func (r CreatePaymentRequest) ToModel() model.PaymentModel {
	var desc *string
	if r.PaymentDescription != nil {
		if v := strings.TrimSpace(*r.PaymentDescription); v != "" {
			desc = &v
		}
	}
	return model.PaymentModel{
		PaymentStudentID:   r.PaymentStudentID,
		PaymentAmountIDR:   r.PaymentAmountIDR,
		PaymentPeriod:      strings.TrimSpace(r.PaymentPeriod),
		PaymentDescription: desc,
	}
}

/* ============ RESPONSES ============ */

type PaymentResponse struct {
	PaymentID          uuid.UUID  `json:"payment_id"`
	PaymentStudentID   uuid.UUID  `json:"student_id"`
	PaymentAmountIDR   int        `json:"amount_idr"`
	PaymentPeriod      string     `json:"period"`
	PaymentStatus      string     `json:"status"`
	PaymentMethod      string     `json:"method"`
	PaymentDescription *string    `json:"description,omitempty"`
	PaymentExternalID  *string    `json:"order_id,omitempty"`
	PaymentSnapToken   *string    `json:"snap_token,omitempty"`
	PaymentCheckoutURL *string    `json:"checkout_url,omitempty"`
	PaymentPaidAt      *time.Time `json:"paid_at,omitempty"`
	PaymentCreatedAt   time.Time  `json:"created_at"`
}

func FromModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentStudentID:   m.PaymentStudentID,
		PaymentAmountIDR:   m.PaymentAmountIDR,
		PaymentPeriod:      m.PaymentPeriod,
		PaymentStatus:      m.PaymentStatus,
		PaymentMethod:      m.PaymentMethod,
		PaymentDescription: m.PaymentDescription,
		PaymentExternalID:  m.PaymentExternalID,
		PaymentSnapToken:   m.PaymentSnapToken,
		PaymentCheckoutURL: m.PaymentCheckoutURL,
		PaymentPaidAt:      m.PaymentPaidAt,
		PaymentCreatedAt:   m.PaymentCreatedAt,
	}
}

func FromModels(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
