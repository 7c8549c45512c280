package billing

import (
	"time"

	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatch       = errs.Validation("payment batch is empty")
	ErrDuplicateInvoice = errs.Validation("invoice listed more than once in batch")
)

type Item struct {
	Ref    InvoiceRef
	Amount money.Money
}

// Batch is a validated set of invoices to settle in one attempt.
type Batch struct {
	customerID uuid.UUID
	method     Method
	items      []Item
}

func NewBatch(customerID uuid.UUID, method Method, items []Item) (Batch, error) {
	if len(items) == 0 {
		return Batch{}, ErrEmptyBatch
	}
	if _, err := ParseMethod(string(method)); err != nil {
		return Batch{}, err
	}
	seen := make(map[InvoiceRef]struct{}, len(items))
	for _, it := range items {
		if _, err := ParseInvoiceType(string(it.Ref.Type)); err != nil {
			return Batch{}, err
		}
		if !it.Amount.IsPositive() {
			return Batch{}, money.ErrInvalidAmount
		}
		if _, dup := seen[it.Ref]; dup {
			return Batch{}, errs.Wrapf(ErrDuplicateInvoice, "%s %s", it.Ref.Type, it.Ref.ID)
		}
		seen[it.Ref] = struct{}{}
	}
	return Batch{customerID: customerID, method: method, items: items}, nil
}

func (b Batch) CustomerID() uuid.UUID { return b.customerID }
func (b Batch) Method() Method        { return b.method }
func (b Batch) Items() []Item         { return b.items }

// Payment is one ledger row. Amount is the amount paid for that invoice only.
type Payment struct {
	id          uuid.UUID
	customerID  uuid.UUID
	invoiceID   uuid.UUID
	invoiceType InvoiceType
	amount      money.Money
	method      Method
	paidAt      time.Time
}

func NewPayment(customerID uuid.UUID, item Item, method Method, now time.Time) *Payment {
	return &Payment{
		id:          uuid.New(),
		customerID:  customerID,
		invoiceID:   item.Ref.ID,
		invoiceType: item.Ref.Type,
		amount:      item.Amount,
		method:      method,
		paidAt:      now,
	}
}

func ReconstructPayment(id, customerID, invoiceID uuid.UUID, invoiceType InvoiceType, amount money.Money, method Method, paidAt time.Time) *Payment {
	return &Payment{
		id:          id,
		customerID:  customerID,
		invoiceID:   invoiceID,
		invoiceType: invoiceType,
		amount:      amount,
		method:      method,
		paidAt:      paidAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) CustomerID() uuid.UUID    { return p.customerID }
func (p *Payment) InvoiceID() uuid.UUID     { return p.invoiceID }
func (p *Payment) InvoiceType() InvoiceType { return p.invoiceType }
func (p *Payment) Amount() money.Money      { return p.amount }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) PaidAt() time.Time        { return p.paidAt }

type Summary struct {
	PaymentIDs []uuid.UUID
	Count      int
	Total      money.Money
	Method     Method
	PaidAt     time.Time
}

func Summarize(payments []*Payment, method Method, now time.Time) Summary {
	s := Summary{Method: method, PaidAt: now}
	for _, p := range payments {
		s.PaymentIDs = append(s.PaymentIDs, p.id)
		s.Total = s.Total.Add(p.amount)
	}
	s.Count = len(payments)
	return s
}
