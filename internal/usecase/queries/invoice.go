package queries

import (
	"context"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/infra"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	ListInvoices(ctx context.Context, actor shared.Actor, customerID uuid.UUID, paid bool) ([]InvoiceView, error)
	ListPayments(ctx context.Context, actor shared.Actor, customerID uuid.UUID) ([]PaymentView, error)
}

type invoiceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewInvoiceQueries(uow shared.UnitOfWork) InvoiceQueries {
	return &invoiceQueriesImpl{uow: uow}
}

// ListInvoices projects every live reservation of the customer with the
// given payment state, across all kinds, newest first.
func (q *invoiceQueriesImpl) ListInvoices(ctx context.Context, actor shared.Actor, customerID uuid.UUID, paid bool) ([]InvoiceView, error) {
	customerID = actor.OnBehalfOf(customerID)

	invoices := []InvoiceView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureCustomer(ctx, tx, customerID); err != nil {
			return err
		}
		rows, err := tx.Reservations().ListByCustomer(ctx, customerID, paid)
		if err != nil {
			return err
		}
		for _, r := range rows {
			inv, err := ToInvoiceView(billing.InvoiceOf(r))
			if err != nil {
				return err
			}
			invoices = append(invoices, inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (q *invoiceQueriesImpl) ListPayments(ctx context.Context, actor shared.Actor, customerID uuid.UUID) ([]PaymentView, error) {
	customerID = actor.OnBehalfOf(customerID)

	payments := []PaymentView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureCustomer(ctx, tx, customerID); err != nil {
			return err
		}
		rows, err := tx.Payments().ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		for _, p := range rows {
			payments = append(payments, ToPaymentView(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func ensureCustomer(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	_, err := tx.Customers().FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return customer.ErrCustomerNotFound
	}
	return err
}
