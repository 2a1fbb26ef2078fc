package registration

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicate is returned when a birth for the same parents and birth
	// date has already been registered.
	ErrDuplicate = errors.New("birth already registered for these parents and birth date")

	// ErrPersistenceUnconfirmed is returned when the confirmation re-read
	// after a committed insert finds no row. This is an integrity fault,
	// not a client error.
	ErrPersistenceUnconfirmed = errors.New("insert committed but not confirmed by re-read")
)

// Violation codes attached to FieldError.
const (
	CodeNotNumeric          = "not_numeric"
	CodeLengthMismatch      = "length_mismatch"
	CodeUnknownDocumentType = "unknown_document_type"
	CodeInvalidScript       = "invalid_script"
	CodeMalformedDate       = "malformed_date"
	CodeFutureDate          = "future_date"
	CodeImplausibleDate     = "implausible_date"
	CodeWindowExceeded      = "window_exceeded"
)

// FieldError describes a single validation violation on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every violation found in one validation pass.
// It is never empty when returned as an error.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
