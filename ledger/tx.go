package ledger

import (
	"github.com/shopspring/decimal"
)

// Tx is the stored record of an accepted deposit or withdrawal. A positive
// Amount is a deposit, a negative one a withdrawal. The sign convention lets
// dispute, resolve, and chargeback undo the original effect uniformly, while
// the engine forbids disputing a negative (withdrawal) amount.
type Tx struct {
	ID     TxID
	Amount decimal.Decimal
}

// TxStore is the append-only record of accepted deposits and withdrawals,
// keyed by transaction id. Entries are immutable and never deleted, so a
// transaction can be disputed, resolved, and disputed again.
type TxStore struct {
	txs map[TxID]Tx
}

// NewTxStore creates an empty transaction store.
func NewTxStore() *TxStore {
	return &TxStore{txs: make(map[TxID]Tx)}
}

// Insert records a transaction. It fails with ErrorDuplicateTransaction if
// the id is already present, leaving the store unchanged.
func (s *TxStore) Insert(id TxID, amount decimal.Decimal) error {
	if _, ok := s.txs[id]; ok {
		return NewDomainError(ErrorDuplicateTransaction, "tx", "transaction id already recorded")
	}

	s.txs[id] = Tx{ID: id, Amount: amount}

	return nil
}

// Contains reports whether a transaction id is already recorded.
func (s *TxStore) Contains(id TxID) bool {
	_, ok := s.txs[id]
	return ok
}

// Get returns the stored transaction for id if it exists.
func (s *TxStore) Get(id TxID) (Tx, bool) {
	tx, ok := s.txs[id]
	return tx, ok
}

// Len returns the number of recorded transactions.
func (s *TxStore) Len() int {
	return len(s.txs)
}
