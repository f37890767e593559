package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	constant "github.com/LerianStudio/payments-engine/constants"
	"github.com/LerianStudio/payments-engine/ledger"
)

// WriteAccounts renders the final account report.
//
// Rows are emitted in ascending client id order for reproducibility. Decimal
// values keep their full precision; no rounding is applied.
func WriteAccounts(w io.Writer, accounts []ledger.Account) error {
	sorted := make([]ledger.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	writer := csv.NewWriter(w)

	header := []string{
		constant.FieldClient,
		constant.FieldAvailable,
		constant.FieldHeld,
		constant.FieldTotal,
		constant.FieldLocked,
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, account := range sorted {
		row := []string{
			strconv.FormatUint(uint64(account.ID), 10),
			account.Available.String(),
			account.Held.String(),
			account.Total().String(),
			strconv.FormatBool(account.Locked),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write account %d: %w", account.ID, err)
		}
	}

	writer.Flush()

	return writer.Error()
}
