package interfaces

import "errors"

// Sentinel errors every repository backend translates its driver failures
// into. The persistence constraints are the authority of last resort for
// uniqueness and referential integrity: a pre-check can lose a race, and the
// managers re-classify these sentinels instead of surfacing internals.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrNotFound reports a write against a record that vanished between the
	// manager's lookup and the statement.
	ErrNotFound = errors.New("record not found")
)
