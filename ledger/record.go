package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account. It is externally supplied, never
// generated by the engine.
type ClientID uint16

// TxID identifies a deposit or withdrawal. It must be unique across the
// lifetime of one ledger run.
type TxID uint32

// RecordType discriminates the five transaction record variants.
type RecordType string

const (
	// RecordDeposit credits available funds on a client account.
	RecordDeposit RecordType = "deposit"
	// RecordWithdrawal debits available funds from a client account.
	RecordWithdrawal RecordType = "withdrawal"
	// RecordDispute holds the funds of a prior deposit pending resolution.
	RecordDispute RecordType = "dispute"
	// RecordResolve releases the funds of a disputed deposit back to available.
	RecordResolve RecordType = "resolve"
	// RecordChargeback withdraws the held funds of a disputed deposit and
	// permanently locks the account.
	RecordChargeback RecordType = "chargeback"
)

// ParseRecordType parses a case-insensitive record type discriminator.
func ParseRecordType(s string) (RecordType, error) {
	switch RecordType(strings.ToLower(strings.TrimSpace(s))) {
	case RecordDeposit:
		return RecordDeposit, nil
	case RecordWithdrawal:
		return RecordWithdrawal, nil
	case RecordDispute:
		return RecordDispute, nil
	case RecordResolve:
		return RecordResolve, nil
	case RecordChargeback:
		return RecordChargeback, nil
	}

	return "", fmt.Errorf("not a valid record type: %q", s)
}

// RequiresAmount reports whether records of this type carry an amount field.
// Only deposits and withdrawals do; the dispute lifecycle records reference
// the original transaction's amount instead.
func (t RecordType) RequiresAmount() bool {
	return t == RecordDeposit || t == RecordWithdrawal
}

// Record is one immutable transaction event, already decoded and validated
// for field presence. Amount is meaningful only when Type.RequiresAmount().
type Record struct {
	Type   RecordType
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}

// String renders the record for diagnostics.
func (r Record) String() string {
	if r.Type.RequiresAmount() {
		return fmt.Sprintf("%s{client=%d tx=%d amount=%s}", r.Type, r.Client, r.Tx, r.Amount)
	}

	return fmt.Sprintf("%s{client=%d tx=%d}", r.Type, r.Client, r.Tx)
}
