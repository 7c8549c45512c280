package commands

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/infra"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/secret"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	GenerateToken(subject uuid.UUID, role customer.Role, now time.Time) (string, error)
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Locale    string
}

type Registration struct {
	Customer *customer.Customer
	Token    string
}

type CustomerCommands interface {
	Register(ctx context.Context, in RegisterInput) (*Registration, error)
	IssueVerificationCode(ctx context.Context, customerID uuid.UUID) error
	Verify(ctx context.Context, customerID uuid.UUID, code string) error
	PurgeExpiredCodes(ctx context.Context) (int64, error)
}

type customerCommandsImpl struct {
	uow      shared.UnitOfWork
	tokens   TokenIssuer
	notifier shared.Notifier
	clock    clock.Clock
	codeTTL  time.Duration
	logger   *slog.Logger
}

func NewCustomerCommands(uow shared.UnitOfWork, tokens TokenIssuer, notifier shared.Notifier, clock clock.Clock, codeTTL time.Duration, logger *slog.Logger) CustomerCommands {
	return &customerCommandsImpl{
		uow:      uow,
		tokens:   tokens,
		notifier: notifier,
		clock:    clock,
		codeTTL:  codeTTL,
		logger:   logger,
	}
}

func (c *customerCommandsImpl) Register(ctx context.Context, in RegisterInput) (*Registration, error) {
	email, err := customer.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	locale, err := customer.ParseLocale(in.Locale)
	if err != nil {
		return nil, err
	}
	now := stamp(c.clock)
	cust, err := customer.NewCustomer(email, in.FirstName, in.LastName, locale, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Create(ctx, cust); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return customer.ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.GenerateToken(cust.ID(), customer.RoleCustomer, now)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "customer registered", "customer_id", cust.ID())
	return &Registration{Customer: cust, Token: token}, nil
}

// IssueVerificationCode replaces any outstanding code and sends the new one.
// Only the hash is stored.
func (c *customerCommandsImpl) IssueVerificationCode(ctx context.Context, customerID uuid.UUID) error {
	now := stamp(c.clock)

	var (
		cust  *customer.Customer
		plain string
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Customers().FindByID(ctx, customerID)
		if err != nil {
			return translate(err, customer.ErrCustomerNotFound)
		}
		if found.IsVerified() {
			return customer.ErrAlreadyVerified
		}
		code, p, err := customer.IssueCode(customerID, c.codeTTL, now, secret.Hash)
		if err != nil {
			return err
		}
		if err := tx.VerificationCodes().Upsert(ctx, code); err != nil {
			return err
		}
		cust, plain = found, p
		return nil
	})
	if err != nil {
		return err
	}

	c.notifier.Notify(ctx, shared.Notification{
		Recipient: cust.Email().Value(),
		Template:  shared.TemplateVerificationCode,
		Locale:    cust.Locale().String(),
		Data: map[string]any{
			"name":       cust.FullName(),
			"code":       plain,
			"expires_in": c.codeTTL.String(),
		},
	})
	return nil
}

// Verify checks expiry on every use; the stored code is consumed only on
// success.
func (c *customerCommandsImpl) Verify(ctx context.Context, customerID uuid.UUID, code string) error {
	now := stamp(c.clock)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindByID(ctx, customerID)
		if err != nil {
			return translate(err, customer.ErrCustomerNotFound)
		}
		stored, err := tx.VerificationCodes().FindByCustomer(ctx, customerID)
		if err != nil {
			return translate(err, customer.ErrCodeNotFound)
		}
		if err := stored.Check(code, now); err != nil {
			return err
		}
		if err := cust.MarkVerified(now); err != nil {
			return err
		}
		if err := tx.Customers().Update(ctx, cust); err != nil {
			return translate(err, customer.ErrCustomerNotFound)
		}
		return tx.VerificationCodes().Delete(ctx, customerID)
	})
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "customer verified", "customer_id", customerID)
	return nil
}

func (c *customerCommandsImpl) PurgeExpiredCodes(ctx context.Context) (int64, error) {
	now := stamp(c.clock)
	var purged int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.VerificationCodes().DeleteExpired(ctx, now)
		purged = n
		return err
	})
	if err != nil {
		return 0, err
	}
	c.logger.InfoContext(ctx, "expired verification codes purged", "count", purged)
	return purged, nil
}
