package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorFormatting(t *testing.T) {
	t.Parallel()

	withField := NewDomainError(ErrorInsufficientFunds, "amount", "withdrawal exceeds available funds")
	assert.Equal(t, "0018: withdrawal exceeds available funds (amount)", withField.Error())

	withoutField := DomainError{Code: ErrorAccountLocked, Message: "account is locked"}
	assert.Equal(t, "0024: account is locked", withoutField.Error())
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	err := NewDomainError(ErrorDuplicateTransaction, "tx", "transaction id already recorded")

	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrorDuplicateTransaction, code)

	// Works through wrapping.
	code, ok = CodeOf(fmt.Errorf("line 3: %w", err))
	require.True(t, ok)
	assert.Equal(t, ErrorDuplicateTransaction, code)

	_, ok = CodeOf(fmt.Errorf("plain error"))
	assert.False(t, ok)
}
