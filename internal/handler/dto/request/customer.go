package request

import "resort-engine/internal/usecase/commands"

type RegisterCustomerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Locale    string `json:"locale" binding:"omitempty,oneof=en ar"`
}

// ToInput falls back to the negotiated request locale.
func (r RegisterCustomerRequest) ToInput(fallbackLocale string) commands.RegisterInput {
	locale := r.Locale
	if locale == "" {
		locale = fallbackLocale
	}
	return commands.RegisterInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Locale:    locale,
	}
}

type VerifyCustomerRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}
