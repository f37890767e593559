package assert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-engine/log"
)

// Logger defines the minimal logging interface required by assertions.
// This interface is satisfied by log.Logger.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Asserter evaluates invariants and logs on failure.
type Asserter struct {
	logger    Logger
	component string
	operation string
}

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError represents a failed assertion with rich context.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.Details == "" {
		return "assertion failed: " + entry.Message
	}

	return "assertion failed: " + entry.Message + " (" + entry.Details + ")"
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// New creates an Asserter with logging and labels. component and operation
// are attached to every failure for diagnosis.
func New(logger Logger, component, operation string) *Asserter {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Asserter{
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// That returns an error if ok is false. Use for general-purpose assertions.
func (asserter *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return asserter.fail(ctx, "That", msg, kv...)
}

// NotNegative returns an error if v is negative. The offending value is
// included in the assertion context.
func (asserter *Asserter) NotNegative(ctx context.Context, v decimal.Decimal, msg string, kv ...any) error {
	if !v.IsNegative() {
		return nil
	}

	kvWithValue := make([]any, 0, len(kv)+2)
	kvWithValue = append(kvWithValue, "value", v.String())
	kvWithValue = append(kvWithValue, kv...)

	return asserter.fail(ctx, "NotNegative", msg, kvWithValue...)
}

// NoError returns an error if err is not nil. The error message and type are
// included in the assertion context for debugging.
func (asserter *Asserter) NoError(ctx context.Context, err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	kvWithError := make([]any, 0, len(kv)+4)
	kvWithError = append(kvWithError, "error", err.Error())
	kvWithError = append(kvWithError, "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	return asserter.fail(ctx, "NoError", msg, kvWithError...)
}

// Never always returns an error. Use for code paths that should be unreachable.
func (asserter *Asserter) Never(ctx context.Context, msg string, kv ...any) error {
	return asserter.fail(ctx, "Never", msg, kv...)
}

func (asserter *Asserter) fail(ctx context.Context, assertion, msg string, kv ...any) error {
	details := formatKeyValuePairs(kv)

	asserter.logger.Log(ctx, log.LevelError, "assertion failed: "+msg,
		log.String("assertion", assertion),
		log.String("component", asserter.component),
		log.String("operation", asserter.operation),
		log.String("details", details),
	)

	return &AssertionError{
		Assertion: assertion,
		Message:   msg,
		Component: asserter.component,
		Operation: asserter.operation,
		Details:   details,
	}
}

func formatKeyValuePairs(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i+1 < len(kv); i += 2 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}

		fmt.Fprintf(&sb, "%v=%v", kv[i], kv[i+1])
	}

	if len(kv)%2 != 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}

		fmt.Fprintf(&sb, "%v=<missing>", kv[len(kv)-1])
	}

	return sb.String()
}
