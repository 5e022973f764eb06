package service

import (
	"errors"
	"strings"

	"sellos/internal/sellado"
)

var (
	ErrActNotFound      = errors.New("act not found")
	ErrPartyNotFound    = errors.New("party not found")
	ErrRegistryNotFound = errors.New("party has no registry data")
	ErrInvalidCUIT      = errors.New("CUIT must be 11 digits")
	ErrRecordNotFound   = errors.New("stamp record not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidEdit      = errors.New("invalid edit")
	ErrInvalidFilter    = errors.New("invalid filter")
)

// FormValidationError carries the failed submit-gate conditions.
type FormValidationError struct {
	Failed []sellado.Check
}

func (e *FormValidationError) Error() string {
	msgs := make([]string, 0, len(e.Failed))
	for _, c := range e.Failed {
		msgs = append(msgs, c.Message)
	}
	return "form is not valid: " + strings.Join(msgs, "; ")
}

func validCUIT(cuit string) bool {
	if len(cuit) != 11 {
		return false
	}
	for _, r := range cuit {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
