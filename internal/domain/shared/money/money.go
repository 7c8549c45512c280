package money

import (
	"fmt"
	"math"

	"resort-engine/internal/pkg/errs"
)

var (
	ErrInvalidAmount  = errs.Validation("amount must be a positive finite number")
	ErrAmountOverflow = errs.Refine(ErrInvalidAmount, errs.KindValidation, "amount is too large")
)

// Money is an amount in minor units (cents). Floating point never enters
// arithmetic; it is only accepted at the edges through FromFloat.
type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromFloat converts a decimal amount received from a client.
func FromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Money{}, ErrInvalidAmount
	}
	cents := math.Round(amount * 100)
	if cents <= 0 || cents > math.MaxInt64/2 {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Mul scales m by a non-negative factor, failing instead of wrapping around.
func (m Money) Mul(n int64) (Money, error) {
	if n < 0 {
		return Money{}, ErrInvalidAmount
	}
	if n == 0 || m.cents == 0 {
		return Money{}, nil
	}
	if m.cents > math.MaxInt64/n || m.cents < math.MinInt64/n {
		return Money{}, errs.Wrapf(ErrAmountOverflow, "%s x %d", m, n)
	}
	return Money{cents: m.cents * n}, nil
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) Less(other Money) bool {
	return m.cents < other.cents
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func Sum(values ...Money) Money {
	var total Money
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
