package response

import (
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Locale    string    `json:"locale"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

type RegistrationResponse struct {
	AccessToken string            `json:"access_token"`
	Customer    *CustomerResponse `json:"customer"`
}

func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID(),
		Email:     c.Email().Value(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Locale:    c.Locale().String(),
		Verified:  c.IsVerified(),
		CreatedAt: c.CreatedAt(),
	}
}

func FromRegistration(r *commands.Registration) *RegistrationResponse {
	return &RegistrationResponse{
		AccessToken: r.Token,
		Customer:    FromCustomer(r.Customer),
	}
}
