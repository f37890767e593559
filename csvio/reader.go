package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	constant "github.com/LerianStudio/payments-engine/constants"
	"github.com/LerianStudio/payments-engine/ledger"
)

// ErrMissingHeader indicates the input has no header row.
var ErrMissingHeader = errors.New("missing header row")

// columns maps header names to their position in the input.
type columns struct {
	typ    int
	client int
	tx     int
	amount int
}

// ReadRecords decodes an entire transaction record file.
//
// The input must start with a header row naming at least the type, client,
// and tx columns; column order is free and surrounding whitespace is
// trimmed. Any malformed row is a fatal decode error carrying its line
// number: the caller must abort the run before applying any record.
func ReadRecords(r io.Reader) ([]ledger.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}

	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []ledger.Record

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		record, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, record)
	}
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{typ: -1, client: -1, tx: -1, amount: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case constant.FieldType:
			cols.typ = i
		case constant.FieldClient:
			cols.client = i
		case constant.FieldTx:
			cols.tx = i
		case constant.FieldAmount:
			cols.amount = i
		}
	}

	if cols.typ < 0 || cols.client < 0 || cols.tx < 0 {
		return columns{}, fmt.Errorf("header must name %s, %s, and %s columns",
			constant.FieldType, constant.FieldClient, constant.FieldTx)
	}

	return cols, nil
}

func parseRow(cols columns, row []string) (ledger.Record, error) {
	recordType, err := ledger.ParseRecordType(field(row, cols.typ))
	if err != nil {
		return ledger.Record{}, err
	}

	client, err := strconv.ParseUint(field(row, cols.client), 10, 16)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("invalid %s: %w", constant.FieldClient, err)
	}

	tx, err := strconv.ParseUint(field(row, cols.tx), 10, 32)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("invalid %s: %w", constant.FieldTx, err)
	}

	record := ledger.Record{
		Type:   recordType,
		Client: ledger.ClientID(client),
		Tx:     ledger.TxID(tx),
	}

	rawAmount := field(row, cols.amount)

	if recordType.RequiresAmount() {
		if rawAmount == "" {
			return ledger.Record{}, fmt.Errorf("%s record missing required %s", recordType, constant.FieldAmount)
		}

		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return ledger.Record{}, fmt.Errorf("invalid %s: %w", constant.FieldAmount, err)
		}

		record.Amount = amount

		return record, nil
	}

	if rawAmount != "" {
		return ledger.Record{}, fmt.Errorf("%s record must not carry an %s", recordType, constant.FieldAmount)
	}

	return record, nil
}

// field returns the trimmed value at index, or empty when the row is short or
// the column is absent.
func field(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[index])
}
