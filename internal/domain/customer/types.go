package customer

import (
	"regexp"
	"strings"

	"resort-engine/internal/pkg/errs"
)

var (
	ErrInvalidEmail  = errs.Validation("invalid email format")
	ErrInvalidName   = errs.Validation("first and last name are required")
	ErrInvalidLocale = errs.Validation("unsupported locale")
	ErrInvalidRole   = errs.Validation("invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case LocaleEN, LocaleAR:
		return l, nil
	case "":
		return LocaleEN, nil
	default:
		return "", ErrInvalidLocale
	}
}

// NegotiateLocale picks the first supported tag from an Accept-Language header.
func NegotiateLocale(header string) Locale {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		tag = strings.SplitN(tag, "-", 2)[0]
		if l, err := ParseLocale(tag); err == nil && tag != "" {
			return l
		}
	}
	return LocaleEN
}

func (l Locale) String() string {
	return string(l)
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleStaff
}

func (r Role) String() string {
	return string(r)
}
