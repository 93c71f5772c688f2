package utils

const (
	// Precision for monetary calculations. COP settles in whole pesos,
	// so amounts round to integer units.
	MoneyPrecision = 1.0

	// Snapshot schema version stamped on every backup export.
	SnapshotVersion = "1.1"

	// Date layouts
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	// HTTP status messages
	ErrInvalidRequest = "Invalid request"
)
