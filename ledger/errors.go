package ledger

import (
	"errors"
	"fmt"
)

// ErrorCode is a domain error code used by ledger validations.
type ErrorCode string

const (
	// ErrorInsufficientFunds indicates available funds cannot cover the amount.
	ErrorInsufficientFunds ErrorCode = "0018"
	// ErrorInsufficientHeld indicates held funds cannot cover the amount.
	ErrorInsufficientHeld ErrorCode = "0021"
	// ErrorInvalidAmount indicates a negative deposit or withdrawal amount.
	ErrorInvalidAmount ErrorCode = "0022"
	// ErrorDuplicateTransaction indicates the transaction id was already recorded.
	ErrorDuplicateTransaction ErrorCode = "0023"
	// ErrorAccountLocked indicates the account is frozen by a prior chargeback.
	ErrorAccountLocked ErrorCode = "0024"
	// ErrorAccountNotFound indicates the referenced client has never transacted.
	ErrorAccountNotFound ErrorCode = "0026"
	// ErrorTransactionNotFound indicates the referenced transaction id is unknown.
	ErrorTransactionNotFound ErrorCode = "0027"
	// ErrorTransactionNotDisputable indicates the referenced transaction is a
	// withdrawal, which is never disputable.
	ErrorTransactionNotDisputable ErrorCode = "0028"
)

// DomainError represents a structured ledger validation error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}

// CodeOf extracts the domain error code from err. The second return reports
// whether err carries a DomainError.
func CodeOf(err error) (ErrorCode, bool) {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code, true
	}

	return "", false
}
