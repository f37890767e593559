package constant

const (
	// FieldType is the input CSV column holding the record discriminator.
	FieldType = "type"
	// FieldClient is the CSV column holding the client id.
	FieldClient = "client"
	// FieldTx is the CSV column holding the transaction id.
	FieldTx = "tx"
	// FieldAmount is the input CSV column holding the optional amount.
	FieldAmount = "amount"
	// FieldAvailable is the output CSV column holding available funds.
	FieldAvailable = "available"
	// FieldHeld is the output CSV column holding held funds.
	FieldHeld = "held"
	// FieldTotal is the output CSV column holding available plus held funds.
	FieldTotal = "total"
	// FieldLocked is the output CSV column holding the lock status.
	FieldLocked = "locked"
)
