package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/payments-engine/ledger"
	"github.com/LerianStudio/payments-engine/log"
)

// Ledger is the read-only view of a completed engine run served by the API.
type Ledger interface {
	Accounts() []ledger.Account
	Account(client ledger.ClientID) (ledger.Account, bool)
}

// AccountResponse is the JSON shape of one account row. Decimal values are
// rendered as strings to preserve full precision.
type AccountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

func toAccountResponse(account ledger.Account) AccountResponse {
	return AccountResponse{
		Client:    uint16(account.ID),
		Available: account.Available.String(),
		Held:      account.Held.String(),
		Total:     account.Total().String(),
		Locked:    account.Locked,
	}
}

// AccountHandler serves account snapshots.
type AccountHandler struct {
	ledger Ledger
}

// NewRouter builds the fiber application serving the final ledger.
func NewRouter(logger log.Logger, l Ledger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(WithRequestID())
	app.Use(WithLogging(logger))

	handler := &AccountHandler{ledger: l}

	app.Get("/health", handler.Health)
	app.Get("/v1/accounts", handler.ListAccounts)
	app.Get("/v1/accounts/:client_id", handler.GetAccount)

	return app
}

// Health reports service liveness.
func (h *AccountHandler) Health(c *fiber.Ctx) error {
	return OK(c, fiber.Map{"status": "ok"})
}

// ListAccounts returns every account ever created in the run, in ascending
// client id order.
func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	accounts := h.ledger.Accounts()

	response := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toAccountResponse(account))
	}

	return OK(c, response)
}

// GetAccount returns a single account by client id.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	raw := c.Params("client_id")

	client, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return BadRequest(c,
			string(ledger.ErrorAccountNotFound),
			"Invalid Client ID",
			"The client id must be an unsigned 16-bit integer.",
		)
	}

	account, ok := h.ledger.Account(ledger.ClientID(client))
	if !ok {
		return NotFound(c,
			string(ledger.ErrorAccountNotFound),
			"Account Not Found",
			"The requested client has never transacted in this run.",
		)
	}

	return OK(c, toAccountResponse(account))
}
