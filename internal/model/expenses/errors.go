package expenses

import (
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/clients/rest"
	"max.ks1230/expense-tracker/internal/model/validation"
)

const (
	fillAllFieldsMessage = "Please fill out all fields before adding a new expense."
	addFailedPrefix      = "Failed to add new expense. Reason: "
	unknownReason        = "unknown error"
)

var (
	ErrSessionMissing = errors.New("username not found in session")
	ErrEmptyResponse  = errors.New("no data returned from server")
)

// ValidationError lists the empty add-expense fields.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return "invalid draft: " + validation.Describe(e.Fields)
}

// AddExpenseError carries the best reason available for a failed submission.
type AddExpenseError struct {
	Reason string
	Err    error
}

func newAddExpenseError(err error) *AddExpenseError {
	return &AddExpenseError{Reason: reason(err), Err: err}
}

func (e *AddExpenseError) Error() string {
	return "add expense: " + e.Reason
}

func (e *AddExpenseError) Unwrap() error {
	return e.Err
}

// reason prefers the service's own message, then the underlying error text.
func reason(err error) string {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil {
		if msg := errors.Cause(err).Error(); msg != "" {
			return msg
		}
	}
	return unknownReason
}

// Message is the text shown to the user for err.
func Message(err error) string {
	var (
		validationErr *ValidationError
		addErr        *AddExpenseError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return fillAllFieldsMessage
	case errors.As(err, &addErr):
		return addFailedPrefix + addErr.Reason
	default:
		return errors.Cause(err).Error()
	}
}
