package response

import (
	"time"

	"resort-engine/internal/domain/billing"

	"github.com/google/uuid"
)

type PaymentSummaryResponse struct {
	PaymentIDs    []uuid.UUID `json:"payment_ids"`
	Count         int         `json:"count"`
	TotalAmount   string      `json:"total_amount"`
	PaymentMethod string      `json:"payment_method"`
	PaidAt        time.Time   `json:"paid_at"`
}

func FromSummary(s *billing.Summary) *PaymentSummaryResponse {
	return &PaymentSummaryResponse{
		PaymentIDs:    s.PaymentIDs,
		Count:         s.Count,
		TotalAmount:   s.Total.String(),
		PaymentMethod: s.Method.String(),
		PaidAt:        s.PaidAt,
	}
}
