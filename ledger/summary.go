package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-engine/safe"
)

// Summary accumulates per-record outcomes over one run.
type Summary struct {
	Accepted int
	Rejected map[ErrorCode]int
}

// NewSummary creates an empty run summary.
func NewSummary() *Summary {
	return &Summary{Rejected: make(map[ErrorCode]int)}
}

// Observe records the outcome of one applied record. Errors without a domain
// code are counted under the empty code.
func (s *Summary) Observe(err error) {
	if err == nil {
		s.Accepted++
		return
	}

	code, _ := CodeOf(err)
	s.Rejected[code]++
}

// Processed returns the total number of observed records.
func (s *Summary) Processed() int {
	total := s.Accepted
	for _, count := range s.Rejected {
		total += count
	}

	return total
}

// AcceptanceRate returns the accepted share of processed records as a
// percentage. An empty run has a rate of zero.
func (s *Summary) AcceptanceRate() decimal.Decimal {
	return safe.Percent(decimal.NewFromInt(int64(s.Accepted)), decimal.NewFromInt(int64(s.Processed())))
}
