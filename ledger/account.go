package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Account is a client's funds and lock status.
//
// Invariant: Available >= 0 and Held >= 0 at every observable point. Once
// Locked is true it stays true for the remainder of the run.
type Account struct {
	ID        ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// Total returns available plus held funds. It is derived, never stored.
func (a Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// AccountStore maps client ids to mutable account state. It is exclusively
// owned by the Engine driving one run; accounts are created lazily and never
// removed.
type AccountStore struct {
	accounts map[ClientID]*Account
}

// NewAccountStore creates an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[ClientID]*Account)}
}

// GetOrCreate returns the account for id, creating a zero-balance unlocked
// account on first reference.
func (s *AccountStore) GetOrCreate(id ClientID) *Account {
	if account, ok := s.accounts[id]; ok {
		return account
	}

	account := &Account{ID: id}
	s.accounts[id] = account

	return account
}

// Get returns the account for id if it exists.
func (s *AccountStore) Get(id ClientID) (*Account, bool) {
	account, ok := s.accounts[id]
	return account, ok
}

// Len returns the number of accounts ever created.
func (s *AccountStore) Len() int {
	return len(s.accounts)
}

// Sorted returns a snapshot of all accounts in ascending client id order.
func (s *AccountStore) Sorted() []Account {
	accounts := make([]Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, *account)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID < accounts[j].ID
	})

	return accounts
}
