package httperr

import "errors"

// ===============================
// Domain error taxonomy
// ===============================

type Kind int

const (
	KindNotFound Kind = iota
	KindForbidden
	KindValidation
)

type DomainError struct {
	Kind Kind
	Code string
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return DomainError{Kind: KindNotFound, Code: code}
}

func ErrForbidden(code string) error {
	return DomainError{Kind: KindForbidden, Code: code}
}

func ErrValidation(code string) error {
	return DomainError{Kind: KindValidation, Code: code}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Code extracts the domain code, or empty for foreign errors.
func Code(err error) string {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
