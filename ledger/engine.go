package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-engine/assert"
	"github.com/LerianStudio/payments-engine/log"
)

// Engine applies transaction records sequentially against an AccountStore and
// a TxStore. It is the single writer of both stores for the lifetime of one
// run; it is not safe for concurrent use.
type Engine struct {
	accounts *AccountStore
	txs      *TxStore
	logger   log.Logger
	asserter *assert.Asserter
}

// NewEngine creates an engine with empty stores. A nil logger is replaced by
// a no-op logger.
func NewEngine(logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Engine{
		accounts: NewAccountStore(),
		txs:      NewTxStore(),
		logger:   logger,
		asserter: assert.New(logger, "ledger", "apply"),
	}
}

// Apply dispatches one record to the matching operation. Any returned error
// is a per-record failure: the record had no effect and processing may
// continue with the next one.
func (e *Engine) Apply(ctx context.Context, record Record) error {
	switch record.Type {
	case RecordDeposit:
		return e.Deposit(ctx, record.Client, record.Tx, record.Amount)
	case RecordWithdrawal:
		return e.Withdraw(ctx, record.Client, record.Tx, record.Amount)
	case RecordDispute:
		return e.Dispute(ctx, record.Client, record.Tx)
	case RecordResolve:
		return e.Resolve(ctx, record.Client, record.Tx)
	case RecordChargeback:
		return e.Chargeback(ctx, record.Client, record.Tx)
	}

	return e.asserter.Never(ctx, "unhandled record type", "type", record.Type)
}

// Deposit credits amount to the client's available funds and records the
// transaction with a positive amount. The account is created on first use.
func (e *Engine) Deposit(ctx context.Context, client ClientID, tx TxID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewDomainError(ErrorInvalidAmount, "amount", "deposit amount must not be negative")
	}

	if e.txs.Contains(tx) {
		return NewDomainError(ErrorDuplicateTransaction, "tx", "transaction id already recorded")
	}

	account := e.accounts.GetOrCreate(client)
	if account.Locked {
		return NewDomainError(ErrorAccountLocked, "client", "account is locked")
	}

	if err := e.txs.Insert(tx, amount); err != nil {
		return err
	}

	account.Available = account.Available.Add(amount)

	return e.checkInvariants(ctx, account)
}

// Withdraw debits amount from the client's available funds and records the
// transaction with a negative amount.
func (e *Engine) Withdraw(ctx context.Context, client ClientID, tx TxID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewDomainError(ErrorInvalidAmount, "amount", "withdrawal amount must not be negative")
	}

	if e.txs.Contains(tx) {
		return NewDomainError(ErrorDuplicateTransaction, "tx", "transaction id already recorded")
	}

	account := e.accounts.GetOrCreate(client)
	if account.Locked {
		return NewDomainError(ErrorAccountLocked, "client", "account is locked")
	}

	if amount.GreaterThan(account.Available) {
		return NewDomainError(ErrorInsufficientFunds, "amount", "withdrawal exceeds available funds")
	}

	if err := e.txs.Insert(tx, amount.Neg()); err != nil {
		return err
	}

	account.Available = account.Available.Sub(amount)

	return e.checkInvariants(ctx, account)
}

// Dispute moves the referenced deposit's amount from available to held,
// pending resolution. Withdrawals are never disputable.
func (e *Engine) Dispute(ctx context.Context, client ClientID, tx TxID) error {
	account, disputed, err := e.lookup(client, tx)
	if err != nil {
		return err
	}

	if account.Available.Sub(disputed.Amount).IsNegative() {
		return NewDomainError(ErrorInsufficientFunds, "available", "dispute would drive available funds negative")
	}

	account.Available = account.Available.Sub(disputed.Amount)
	account.Held = account.Held.Add(disputed.Amount)

	return e.checkInvariants(ctx, account)
}

// Resolve lifts a dispute, moving the referenced deposit's amount from held
// back to available.
//
// There is no per-transaction dispute flag: resolving without an open dispute
// is rejected only when it would drive held funds negative. See the package
// documentation for the sign-convention design.
func (e *Engine) Resolve(ctx context.Context, client ClientID, tx TxID) error {
	account, disputed, err := e.lookup(client, tx)
	if err != nil {
		return err
	}

	if account.Held.Sub(disputed.Amount).IsNegative() {
		return NewDomainError(ErrorInsufficientHeld, "held", "resolve exceeds held funds")
	}

	account.Held = account.Held.Sub(disputed.Amount)
	account.Available = account.Available.Add(disputed.Amount)

	return e.checkInvariants(ctx, account)
}

// Chargeback settles a dispute by withdrawing the held funds and permanently
// locking the account. Every later operation on the account is rejected with
// ErrorAccountLocked.
func (e *Engine) Chargeback(ctx context.Context, client ClientID, tx TxID) error {
	account, disputed, err := e.lookup(client, tx)
	if err != nil {
		return err
	}

	if account.Held.Sub(disputed.Amount).IsNegative() {
		return NewDomainError(ErrorInsufficientHeld, "held", "chargeback exceeds held funds")
	}

	account.Held = account.Held.Sub(disputed.Amount)
	account.Locked = true

	return e.checkInvariants(ctx, account)
}

// Accounts returns a snapshot of every account ever created, in ascending
// client id order.
func (e *Engine) Accounts() []Account {
	return e.accounts.Sorted()
}

// Account returns a snapshot of one account if it exists.
func (e *Engine) Account(client ClientID) (Account, bool) {
	account, ok := e.accounts.Get(client)
	if !ok {
		return Account{}, false
	}

	return *account, true
}

// lookup resolves the account and disputed transaction shared by the dispute
// lifecycle operations. Referencing an unknown client must fail, never create
// one.
func (e *Engine) lookup(client ClientID, tx TxID) (*Account, Tx, error) {
	account, ok := e.accounts.Get(client)
	if !ok {
		return nil, Tx{}, NewDomainError(ErrorAccountNotFound, "client", "client has never transacted")
	}

	disputed, ok := e.txs.Get(tx)
	if !ok {
		return nil, Tx{}, NewDomainError(ErrorTransactionNotFound, "tx", "transaction id is unknown")
	}

	if account.Locked {
		return nil, Tx{}, NewDomainError(ErrorAccountLocked, "client", "account is locked")
	}

	if disputed.Amount.IsNegative() {
		return nil, Tx{}, NewDomainError(ErrorTransactionNotDisputable, "tx", "withdrawals are not disputable")
	}

	return account, disputed, nil
}

func (e *Engine) checkInvariants(ctx context.Context, account *Account) error {
	if err := e.asserter.NotNegative(ctx, account.Available, "available funds must not be negative",
		"client", account.ID); err != nil {
		return err
	}

	return e.asserter.NotNegative(ctx, account.Held, "held funds must not be negative",
		"client", account.ID)
}
