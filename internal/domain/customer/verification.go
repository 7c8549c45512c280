package customer

import (
	"time"

	"resort-engine/internal/pkg/errs"
	"resort-engine/internal/pkg/secret"

	"github.com/google/uuid"
)

const CodeLength = 6

var (
	ErrCodeInvalid  = errs.Validation("verification code is invalid")
	ErrCodeExpired  = errs.Temporal("verification code has expired")
	ErrCodeNotFound = errs.NotFound("no verification code issued")
)

// VerificationCode is stored hashed; the plain code only leaves through Issue.
type VerificationCode struct {
	customerID uuid.UUID
	codeHash   string
	expiresAt  time.Time
	createdAt  time.Time
}

// IssueCode creates a fresh code valid for ttl and returns it with its plain form.
func IssueCode(customerID uuid.UUID, ttl time.Duration, now time.Time, hash func(string) (string, error)) (*VerificationCode, string, error) {
	plain, err := secret.Digits(CodeLength)
	if err != nil {
		return nil, "", errs.Wrap(err, "generate verification code")
	}
	if hash == nil {
		hash = secret.Hash
	}
	hashed, err := hash(plain)
	if err != nil {
		return nil, "", errs.Wrap(err, "hash verification code")
	}
	return &VerificationCode{
		customerID: customerID,
		codeHash:   hashed,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
	}, plain, nil
}

func ReconstructCode(customerID uuid.UUID, codeHash string, expiresAt, createdAt time.Time) *VerificationCode {
	return &VerificationCode{customerID: customerID, codeHash: codeHash, expiresAt: expiresAt, createdAt: createdAt}
}

// Check validates a submitted code. Expiry is checked before the hash.
func (v *VerificationCode) Check(plain string, now time.Time) error {
	if len(plain) != CodeLength {
		return ErrCodeInvalid
	}
	if v.Expired(now) {
		return ErrCodeExpired
	}
	if err := secret.Compare(v.codeHash, plain); err != nil {
		return ErrCodeInvalid
	}
	return nil
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.expiresAt)
}

func (v *VerificationCode) CustomerID() uuid.UUID { return v.customerID }
func (v *VerificationCode) CodeHash() string      { return v.codeHash }
func (v *VerificationCode) ExpiresAt() time.Time  { return v.expiresAt }
func (v *VerificationCode) CreatedAt() time.Time  { return v.createdAt }
