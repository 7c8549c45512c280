package errs

import "errors"

// Category sentinels. Every domain error reports exactly one category.
var (
	ErrValidation = New("validation error")
	ErrConflict   = New("conflict")
	ErrNotFound   = New("not found")
	ErrTemporal   = New("temporal rule violated")
	ErrIntegrity  = New("integrity violation")
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindTemporal   Kind = "temporal"
	KindIntegrity  Kind = "integrity"
	KindInternal   Kind = "internal"
)

var categories = map[Kind]error{
	KindValidation: ErrValidation,
	KindConflict:   ErrConflict,
	KindNotFound:   ErrNotFound,
	KindTemporal:   ErrTemporal,
	KindIntegrity:  ErrIntegrity,
}

// DomainError is a named, categorised failure. Sentinels are compared by
// identity; the category is reachable through Is.
type DomainError struct {
	kind   Kind
	msg    string
	parent error
}

func (e *DomainError) Error() string { return e.msg }

func (e *DomainError) Kind() Kind { return e.kind }

func (e *DomainError) Is(target error) bool {
	if target == categories[e.kind] {
		return true
	}
	return e.parent != nil && (e.parent == target || errors.Is(e.parent, target))
}

func Validation(msg string) error { return &DomainError{kind: KindValidation, msg: msg} }
func Conflict(msg string) error   { return &DomainError{kind: KindConflict, msg: msg} }
func NotFound(msg string) error   { return &DomainError{kind: KindNotFound, msg: msg} }
func Temporal(msg string) error   { return &DomainError{kind: KindTemporal, msg: msg} }
func Integrity(msg string) error  { return &DomainError{kind: KindIntegrity, msg: msg} }

// Refine derives a more specific error that still matches parent.
func Refine(parent error, kind Kind, msg string) error {
	return &DomainError{kind: kind, msg: msg, parent: parent}
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.kind
	}
	for kind, sentinel := range categories {
		if Is(err, sentinel) {
			return kind
		}
	}
	return KindInternal
}
