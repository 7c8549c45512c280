package billing

import (
	"strings"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/pkg/errs"
)

type InvoiceType string

const (
	InvoiceBooking         InvoiceType = "Booking"
	InvoicePoolVisit       InvoiceType = "PoolVisit"
	InvoiceRestaurantVisit InvoiceType = "RestaurantVisit"
	InvoiceHallReservation InvoiceType = "HallReservation"
)

var ErrInvalidInvoiceType = errs.Validation("invalid invoice type")

var invoiceKinds = map[InvoiceType]reservation.Kind{
	InvoiceBooking:         reservation.KindBooking,
	InvoicePoolVisit:       reservation.KindPoolVisit,
	InvoiceRestaurantVisit: reservation.KindRestaurantVisit,
	InvoiceHallReservation: reservation.KindHallReservation,
}

func ParseInvoiceType(s string) (InvoiceType, error) {
	t := InvoiceType(s)
	if _, ok := invoiceKinds[t]; !ok {
		return "", ErrInvalidInvoiceType
	}
	return t, nil
}

func InvoiceTypeOf(kind reservation.Kind) InvoiceType {
	for t, k := range invoiceKinds {
		if k == kind {
			return t
		}
	}
	return ""
}

func (t InvoiceType) Kind() reservation.Kind {
	return invoiceKinds[t]
}

func (t InvoiceType) String() string {
	return string(t)
}

type Method string

const (
	MethodCash     Method = "cash"
	MethodVisaCard Method = "visa card"
	MethodPaypal   Method = "paypal"
)

var ErrInvalidPaymentMethod = errs.Validation("invalid payment method")

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodCash, MethodVisaCard, MethodPaypal:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m Method) String() string {
	return string(m)
}
