// Package ledger implements the in-memory account ledger state machine.
//
// An Engine applies transaction records (deposits, withdrawals, disputes,
// resolutions, chargebacks) one at a time against an AccountStore and a
// TxStore, enforcing fund conservation and the dispute lifecycle. Every
// operation is atomic: it is either fully applied or rejected with a
// DomainError and no state change.
package ledger
