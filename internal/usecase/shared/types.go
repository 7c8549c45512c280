package shared

import (
	"context"

	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"

	"github.com/google/uuid"
)

// Notification templates.
const (
	TemplateReservationCreated = "reservation_created"
	TemplateReservationUpdated = "reservation_updated"
	TemplatePaymentReceived    = "payment_received"
	TemplateVerificationCode   = "verification_code"
)

type Notification struct {
	Recipient string         `json:"recipient"`
	Template  string         `json:"template"`
	Locale    string         `json:"locale"`
	Data      map[string]any `json:"data"`
}

// Notifier is fire-and-forget: delivery failures never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type QuoteKey struct {
	ResourceID uuid.UUID
	Span       interval.Interval
	Occupancy  int
}

// QuoteToken names the cache slot a Get observed. A price resolved after a
// miss is stored under the token, never under a freshly derived slot, so an
// Invalidate racing the resolution cannot revive a stale price. The empty
// token stores nothing.
type QuoteToken string

// QuoteCache memoizes resolved prices. Invalidate must be called whenever
// the pricing rules of a resource change.
type QuoteCache interface {
	Get(ctx context.Context, key QuoteKey) (money.Money, QuoteToken, bool)
	Put(ctx context.Context, token QuoteToken, price money.Money)
	Invalidate(ctx context.Context, resourceID uuid.UUID)
}

// Metrics receives engine outcomes.
type Metrics interface {
	ReservationCreated(kind string)
	ReservationRejected(kind, reason string)
	TransitionApplied(kind, action string)
	PaymentsSettled(count int, total money.Money)
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Notification) {}

type NopQuoteCache struct{}

func (NopQuoteCache) Get(context.Context, QuoteKey) (money.Money, QuoteToken, bool) {
	return money.Zero(), "", false
}
func (NopQuoteCache) Put(context.Context, QuoteToken, money.Money) {}
func (NopQuoteCache) Invalidate(context.Context, uuid.UUID)        {}

type NopMetrics struct{}

func (NopMetrics) ReservationCreated(string)          {}
func (NopMetrics) ReservationRejected(string, string) {}
func (NopMetrics) TransitionApplied(string, string)   {}
func (NopMetrics) PaymentsSettled(int, money.Money)   {}
