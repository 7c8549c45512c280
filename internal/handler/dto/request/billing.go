package request

import (
	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/shared/money"

	"github.com/google/uuid"
)

type InvoiceItemRequest struct {
	InvoiceID   uuid.UUID `json:"invoice_id" binding:"required"`
	InvoiceType string    `json:"invoice_type" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
}

type PayInvoicesRequest struct {
	CustomerID    *uuid.UUID           `json:"customer_id"`
	PaymentMethod string               `json:"payment_method" binding:"required"`
	Invoices      []InvoiceItemRequest `json:"invoices" binding:"required,min=1,dive"`
}

// ToBatch validates the batch; customerID is resolved against the actor by
// the command.
func (r PayInvoicesRequest) ToBatch() (billing.Batch, error) {
	method, err := billing.ParseMethod(r.PaymentMethod)
	if err != nil {
		return billing.Batch{}, err
	}
	items := make([]billing.Item, 0, len(r.Invoices))
	for _, inv := range r.Invoices {
		typ, err := billing.ParseInvoiceType(inv.InvoiceType)
		if err != nil {
			return billing.Batch{}, err
		}
		amount, err := money.FromFloat(inv.Amount)
		if err != nil {
			return billing.Batch{}, err
		}
		items = append(items, billing.Item{
			Ref:    billing.InvoiceRef{ID: inv.InvoiceID, Type: typ},
			Amount: amount,
		})
	}
	customerID := uuid.Nil
	if r.CustomerID != nil {
		customerID = *r.CustomerID
	}
	return billing.NewBatch(customerID, method, items)
}

type InvoicesQuery struct {
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	Paid       bool   `form:"paid"`
}

func (q InvoicesQuery) Customer() uuid.UUID {
	if q.CustomerID == "" {
		return uuid.Nil
	}
	return uuid.MustParse(q.CustomerID)
}
