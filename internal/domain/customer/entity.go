package customer

import (
	"strings"
	"time"

	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errs.NotFound("customer not found")
	ErrEmailTaken       = errs.Conflict("email already registered")
	ErrAlreadyVerified  = errs.Conflict("customer already verified")
)

type Customer struct {
	id        uuid.UUID
	email     Email
	firstName string
	lastName  string
	locale    Locale
	verified  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(email Email, firstName, lastName string, locale Locale, now time.Time) (*Customer, error) {
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidName
	}
	if locale == "" {
		locale = LocaleEN
	}
	return &Customer{
		id:        uuid.New(),
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		locale:    locale,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, email Email, firstName, lastName string, locale Locale, verified bool, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		locale:    locale,
		verified:  verified,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) MarkVerified(now time.Time) error {
	if c.verified {
		return ErrAlreadyVerified
	}
	c.verified = true
	c.updatedAt = now
	return nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Locale() Locale       { return c.locale }
func (c *Customer) IsVerified() bool     { return c.verified }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}
