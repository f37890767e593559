package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	constant "github.com/LerianStudio/payments-engine/constants"
	"github.com/LerianStudio/payments-engine/ledger"
)

// fixedLedger serves a canned account snapshot.
type fixedLedger struct {
	accounts []ledger.Account
}

func (l *fixedLedger) Accounts() []ledger.Account {
	return l.accounts
}

func (l *fixedLedger) Account(client ledger.ClientID) (ledger.Account, bool) {
	for _, account := range l.accounts {
		if account.ID == client {
			return account, true
		}
	}

	return ledger.Account{}, false
}

func testLedger() *fixedLedger {
	return &fixedLedger{accounts: []ledger.Account{
		{
			ID:        1,
			Available: decimal.RequireFromString("40.0"),
			Held:      decimal.RequireFromString("0"),
		},
		{
			ID:        2,
			Available: decimal.RequireFromString("0.0"),
			Held:      decimal.RequireFromString("0.0"),
			Locked:    true,
		},
	}}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := NewRouter(nil, testLedger())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(constant.HeaderID))
}

func TestListAccounts(t *testing.T) {
	t.Parallel()

	app := NewRouter(nil, testLedger())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var accounts []AccountResponse
	require.NoError(t, json.Unmarshal(body, &accounts))
	require.Len(t, accounts, 2)

	assert.Equal(t, AccountResponse{
		Client:    1,
		Available: "40.0",
		Held:      "0",
		Total:     "40.0",
		Locked:    false,
	}, accounts[0])
	assert.True(t, accounts[1].Locked)
}

func TestGetAccount(t *testing.T) {
	t.Parallel()

	app := NewRouter(nil, testLedger())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/accounts/2", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var account AccountResponse
	require.NoError(t, json.Unmarshal(body, &account))
	assert.Equal(t, uint16(2), account.Client)
	assert.True(t, account.Locked)
}

func TestGetAccountFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "unknown client", path: "/v1/accounts/99", status: http.StatusNotFound},
		{name: "non-numeric client", path: "/v1/accounts/alice", status: http.StatusBadRequest},
		{name: "client id out of range", path: "/v1/accounts/70000", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := NewRouter(nil, testLedger())

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var response Response
			require.NoError(t, json.Unmarshal(body, &response))
			assert.NotEmpty(t, response.Code)
			assert.NotEmpty(t, response.Message)
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	t.Parallel()

	app := NewRouter(nil, testLedger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(constant.HeaderID, "req-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get(constant.HeaderID))
}
