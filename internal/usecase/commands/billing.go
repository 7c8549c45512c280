package commands

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/infra"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/errs"
	"resort-engine/internal/usecase/shared"
)

type BillingCommands interface {
	PayInvoices(ctx context.Context, actor shared.Actor, batch billing.Batch) (*billing.Summary, error)
}

type billingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	metrics  shared.Metrics
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBillingCommands(uow shared.UnitOfWork, notifier shared.Notifier, metrics shared.Metrics, clock clock.Clock, logger *slog.Logger) BillingCommands {
	return &billingCommandsImpl{
		uow:      uow,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

// PayInvoices settles every invoice of the batch or none of them. Rows are
// locked in (type, id) order so that overlapping batches cannot deadlock.
func (c *billingCommandsImpl) PayInvoices(ctx context.Context, actor shared.Actor, batch billing.Batch) (*billing.Summary, error) {
	customerID := actor.OnBehalfOf(batch.CustomerID())
	now := stamp(c.clock)

	items := slices.Clone(batch.Items())
	slices.SortFunc(items, func(a, b billing.Item) int {
		if c := strings.Compare(a.Ref.Type.String(), b.Ref.Type.String()); c != 0 {
			return c
		}
		return strings.Compare(a.Ref.ID.String(), b.Ref.ID.String())
	})

	var (
		summary billing.Summary
		payer   *customer.Customer
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindByID(ctx, customerID)
		if err != nil {
			return translate(err, customer.ErrCustomerNotFound)
		}

		payments := make([]*billing.Payment, 0, len(items))
		for _, item := range items {
			r, err := tx.Reservations().GetForUpdate(ctx, item.Ref.Type.Kind(), item.Ref.ID)
			if err != nil {
				return errs.Wrapf(translate(err, billing.ErrInvoiceNotFound), "%s %s", item.Ref.Type, item.Ref.ID)
			}
			if !r.OwnedBy(customerID) {
				return errs.Wrapf(billing.ErrInvoiceNotFound, "%s %s", item.Ref.Type, item.Ref.ID)
			}
			if err := r.Settle(item.Amount, now); err != nil {
				return errs.Wrapf(err, "%s %s", item.Ref.Type, item.Ref.ID)
			}
			if err := tx.Reservations().Update(ctx, r); err != nil {
				return translate(err, billing.ErrInvoiceNotFound)
			}

			p := billing.NewPayment(customerID, item, batch.Method(), now)
			if err := tx.Payments().Create(ctx, p); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Wrapf(reservation.ErrAlreadyPaid, "%s %s", item.Ref.Type, item.Ref.ID)
				}
				return err
			}
			payments = append(payments, p)
		}

		summary = billing.Summarize(payments, batch.Method(), now)
		payer = cust
		return nil
	})
	if err != nil {
		c.logger.DebugContext(ctx, "payment batch rejected",
			"customer_id", customerID,
			"invoices", len(items),
			"error", err.Error())
		return nil, err
	}

	c.metrics.PaymentsSettled(summary.Count, summary.Total)
	c.logger.InfoContext(ctx, "payment batch settled",
		"customer_id", customerID,
		"count", summary.Count,
		"total", summary.Total.String(),
		"method", summary.Method)
	c.notifier.Notify(ctx, shared.Notification{
		Recipient: payer.Email().Value(),
		Template:  shared.TemplatePaymentReceived,
		Locale:    payer.Locale().String(),
		Data: map[string]any{
			"name":   payer.FullName(),
			"count":  summary.Count,
			"total":  summary.Total.String(),
			"method": summary.Method.String(),
		},
	})
	return &summary, nil
}
