package domain

import "errors"

// InvalidID is the identity returned by inserts that did not persist a row.
const InvalidID int64 = -1

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoRowsAffected    = errors.New("no rows affected")
	ErrNoIdentity        = errors.New("no identity obtained")
	ErrUnknownEmployee   = errors.New("employee does not exist")
	ErrUnknownDepartment = errors.New("department does not exist")
)

// Error kinds reported by ErrorKind.
const (
	KindOK               = "ok"
	KindDriver           = "driver"
	KindNoRows           = "no_rows"
	KindMissingReference = "missing_reference"
	KindMissingIdentity  = "missing_identity"
	KindNotFound         = "not_found"
	KindInvalidInput     = "invalid_input"
)

// ErrorKind classifies err for logs and metrics. Errors that match no
// sentinel are treated as driver failures.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrNoRowsAffected):
		return KindNoRows
	case errors.Is(err, ErrUnknownEmployee), errors.Is(err, ErrUnknownDepartment):
		return KindMissingReference
	case errors.Is(err, ErrNoIdentity):
		return KindMissingIdentity
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindDriver
	}
}
